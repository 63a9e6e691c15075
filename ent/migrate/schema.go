// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AmbientNotificationsColumns holds the columns for the "ambient_notifications" table.
	AmbientNotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "target_medium", Type: field.TypeString, Nullable: true},
		{Name: "target_location", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"silent", "ambient", "conversation", "urgent"}, Default: "ambient"},
		{Name: "routing_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "delivered", "failed"}, Default: "pending"},
		{Name: "parent_notification_id", Type: field.TypeString, Nullable: true},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "acknowledged_at", Type: field.TypeTime, Nullable: true},
		{Name: "response_time_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "context_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AmbientNotificationsTable holds the schema information for the "ambient_notifications" table.
	AmbientNotificationsTable = &schema.Table{
		Name:       "ambient_notifications",
		Columns:    AmbientNotificationsColumns,
		PrimaryKey: []*schema.Column{AmbientNotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ambientnotification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AmbientNotificationsColumns[1], AmbientNotificationsColumns[13]},
			},
			{
				Name:    "ambientnotification_user_id_acknowledged",
				Unique:  false,
				Columns: []*schema.Column{AmbientNotificationsColumns[1], AmbientNotificationsColumns[9]},
			},
			{
				Name:    "ambientnotification_status",
				Unique:  false,
				Columns: []*schema.Column{AmbientNotificationsColumns[7]},
			},
		},
	}
	// ContextCacheColumns holds the columns for the "context_cache" table.
	ContextCacheColumns = []*schema.Column{
		{Name: "cache_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "context", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContextCacheTable holds the schema information for the "context_cache" table.
	ContextCacheTable = &schema.Table{
		Name:       "context_cache",
		Columns:    ContextCacheColumns,
		PrimaryKey: []*schema.Column{ContextCacheColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contextcache_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ContextCacheColumns[4]},
			},
		},
	}
	// ContradictionReviewsColumns holds the columns for the "contradiction_reviews" table.
	ContradictionReviewsColumns = []*schema.Column{
		{Name: "review_id", Type: field.TypeString, Unique: true},
		{Name: "new_fact", Type: field.TypeString, Size: 2147483647},
		{Name: "existing_fact_uuid", Type: field.TypeString},
		{Name: "existing_fact", Type: field.TypeString, Size: 2147483647},
		{Name: "similarity", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "entity_names", Type: field.TypeJSON, Nullable: true},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted_new", "kept_old", "kept_both", "dismissed"}, Default: "pending"},
		{Name: "resolution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "resolver", Type: field.TypeString, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContradictionReviewsTable holds the schema information for the "contradiction_reviews" table.
	ContradictionReviewsTable = &schema.Table{
		Name:       "contradiction_reviews",
		Columns:    ContradictionReviewsColumns,
		PrimaryKey: []*schema.Column{ContradictionReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contradictionreview_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContradictionReviewsColumns[10], ContradictionReviewsColumns[14]},
			},
			{
				Name:    "contradictionreview_group_id",
				Unique:  false,
				Columns: []*schema.Column{ContradictionReviewsColumns[9]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "medium", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tool_names", Type: field.TypeJSON, Nullable: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[4]},
			},
			{
				Name:    "conversation_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[6], ConversationsColumns[4]},
			},
			{
				Name:    "conversation_role",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
		},
	}
	// ConversationBlocksColumns holds the columns for the "conversation_blocks" table.
	ConversationBlocksColumns = []*schema.Column{
		{Name: "block_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"text", "tool_use", "tool_result"}},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "tool_use_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_input", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_result", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
	}
	// ConversationBlocksTable holds the schema information for the "conversation_blocks" table.
	ConversationBlocksTable = &schema.Table{
		Name:       "conversation_blocks",
		Columns:    ConversationBlocksColumns,
		PrimaryKey: []*schema.Column{ConversationBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversationblock_conversation_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{ConversationBlocksColumns[1], ConversationBlocksColumns[2]},
			},
		},
	}
	// CoreMemoryBlocksColumns holds the columns for the "core_memory_blocks" table.
	CoreMemoryBlocksColumns = []*schema.Column{
		{Name: "block_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "block_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "char_limit", Type: field.TypeInt, Default: 8192},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CoreMemoryBlocksTable holds the schema information for the "core_memory_blocks" table.
	CoreMemoryBlocksTable = &schema.Table{
		Name:       "core_memory_blocks",
		Columns:    CoreMemoryBlocksColumns,
		PrimaryKey: []*schema.Column{CoreMemoryBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "corememoryblock_user_id_block_type",
				Unique:  false,
				Columns: []*schema.Column{CoreMemoryBlocksColumns[1], CoreMemoryBlocksColumns[3]},
			},
			{
				Name:    "corememoryblock_session_id_block_type",
				Unique:  false,
				Columns: []*schema.Column{CoreMemoryBlocksColumns[2], CoreMemoryBlocksColumns[3]},
			},
		},
	}
	// CoreMemoryVersionsColumns holds the columns for the "core_memory_versions" table.
	CoreMemoryVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "block_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CoreMemoryVersionsTable holds the schema information for the "core_memory_versions" table.
	CoreMemoryVersionsTable = &schema.Table{
		Name:       "core_memory_versions",
		Columns:    CoreMemoryVersionsColumns,
		PrimaryKey: []*schema.Column{CoreMemoryVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "corememoryversion_block_id_version",
				Unique:  true,
				Columns: []*schema.Column{CoreMemoryVersionsColumns[1], CoreMemoryVersionsColumns[2]},
			},
		},
	}
	// DaemonStatesColumns holds the columns for the "daemon_states" table.
	DaemonStatesColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "suppressed_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_proactive_contact_at", Type: field.TypeTime, Nullable: true},
		{Name: "autonomous_work_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DaemonStatesTable holds the schema information for the "daemon_states" table.
	DaemonStatesTable = &schema.Table{
		Name:       "daemon_states",
		Columns:    DaemonStatesColumns,
		PrimaryKey: []*schema.Column{DaemonStatesColumns[0]},
	}
	// EntityMentionsColumns holds the columns for the "entity_mentions" table.
	EntityMentionsColumns = []*schema.Column{
		{Name: "mention_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "raw_value", Type: field.TypeString},
		{Name: "normalized_value", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "span_start", Type: field.TypeInt, Nullable: true},
		{Name: "span_end", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EntityMentionsTable holds the schema information for the "entity_mentions" table.
	EntityMentionsTable = &schema.Table{
		Name:       "entity_mentions",
		Columns:    EntityMentionsColumns,
		PrimaryKey: []*schema.Column{EntityMentionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitymention_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[1]},
			},
			{
				Name:    "entitymention_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[5]},
			},
			{
				Name:    "entitymention_normalized_value",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[4]},
			},
		},
	}
	// ExplorationFindingsColumns holds the columns for the "exploration_findings" table.
	ExplorationFindingsColumns = []*schema.Column{
		{Name: "finding_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "finding", Type: field.TypeString, Size: 2147483647},
		{Name: "source_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.5},
		{Name: "worth_sharing", Type: field.TypeBool, Default: false},
		{Name: "share_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExplorationFindingsTable holds the schema information for the "exploration_findings" table.
	ExplorationFindingsTable = &schema.Table{
		Name:       "exploration_findings",
		Columns:    ExplorationFindingsColumns,
		PrimaryKey: []*schema.Column{ExplorationFindingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "explorationfinding_task_id",
				Unique:  false,
				Columns: []*schema.Column{ExplorationFindingsColumns[1]},
			},
			{
				Name:    "explorationfinding_worth_sharing_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExplorationFindingsColumns[5], ExplorationFindingsColumns[7]},
			},
		},
	}
	// MediumPresencesColumns holds the columns for the "medium_presences" table.
	MediumPresencesColumns = []*schema.Column{
		{Name: "presence_id", Type: field.TypeString, Unique: true},
		{Name: "medium", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "online"},
		{Name: "last_heartbeat", Type: field.TypeTime},
		{Name: "channels", Type: field.TypeJSON, Nullable: true},
	}
	// MediumPresencesTable holds the schema information for the "medium_presences" table.
	MediumPresencesTable = &schema.Table{
		Name:       "medium_presences",
		Columns:    MediumPresencesColumns,
		PrimaryKey: []*schema.Column{MediumPresencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mediumpresence_medium_user_id",
				Unique:  true,
				Columns: []*schema.Column{MediumPresencesColumns[1], MediumPresencesColumns[2]},
			},
			{
				Name:    "mediumpresence_user_id_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{MediumPresencesColumns[2], MediumPresencesColumns[4]},
			},
		},
	}
	// MissionsColumns holds the columns for the "missions" table.
	MissionsColumns = []*schema.Column{
		{Name: "mission_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "schedule", Type: field.TypeString, Nullable: true},
		{Name: "sandbox_policy", Type: field.TypeString, Nullable: true},
		{Name: "personality", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "tools", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "archived", "running_once"}, Default: "active"},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MissionsTable holds the schema information for the "missions" table.
	MissionsTable = &schema.Table{
		Name:       "missions",
		Columns:    MissionsColumns,
		PrimaryKey: []*schema.Column{MissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mission_status",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[8]},
			},
			{
				Name:    "mission_user_id",
				Unique:  false,
				Columns: []*schema.Column{MissionsColumns[9]},
			},
		},
	}
	// MissionExecutionsColumns holds the columns for the "mission_executions" table.
	MissionExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "mission_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "structured_output", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MissionExecutionsTable holds the schema information for the "mission_executions" table.
	MissionExecutionsTable = &schema.Table{
		Name:       "mission_executions",
		Columns:    MissionExecutionsColumns,
		PrimaryKey: []*schema.Column{MissionExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "missionexecution_mission_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MissionExecutionsColumns[1], MissionExecutionsColumns[9]},
			},
			{
				Name:    "missionexecution_status",
				Unique:  false,
				Columns: []*schema.Column{MissionExecutionsColumns[2]},
			},
		},
	}
	// ProjectTasksColumns holds the columns for the "project_tasks" table.
	ProjectTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "working_dir", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "acceptance_criteria", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "scope_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "required_tools", Type: field.TypeJSON, Nullable: true},
		{Name: "task_type", Type: field.TypeString},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"backlog", "ready", "blocked", "in_progress", "done", "cancelled"}, Default: "backlog"},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "claim_session_id", Type: field.TypeString, Nullable: true},
		{Name: "claim_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "blocked_by", Type: field.TypeJSON, Nullable: true},
		{Name: "related_task_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "completion_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "files_changed", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "extra", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_triggered_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjectTasksTable holds the schema information for the "project_tasks" table.
	ProjectTasksTable = &schema.Table{
		Name:       "project_tasks",
		Columns:    ProjectTasksColumns,
		PrimaryKey: []*schema.Column{ProjectTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "projecttask_user_id_task_type_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectTasksColumns[11], ProjectTasksColumns[7], ProjectTasksColumns[10]},
			},
			{
				Name:    "projecttask_status_priority",
				Unique:  false,
				Columns: []*schema.Column{ProjectTasksColumns[10], ProjectTasksColumns[9]},
			},
			{
				Name:    "projecttask_task_type",
				Unique:  false,
				Columns: []*schema.Column{ProjectTasksColumns[7]},
			},
			{
				Name:    "projecttask_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectTasksColumns[23]},
			},
		},
	}
	// TaskQueueColumns holds the columns for the "task_queue" table.
	TaskQueueColumns = []*schema.Column{
		{Name: "queue_task_id", Type: field.TypeString, Unique: true},
		{Name: "task_type", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 50},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// TaskQueueTable holds the schema information for the "task_queue" table.
	TaskQueueTable = &schema.Table{
		Name:       "task_queue",
		Columns:    TaskQueueColumns,
		PrimaryKey: []*schema.Column{TaskQueueColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuetask_status_model_name_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueColumns[6], TaskQueueColumns[2], TaskQueueColumns[5], TaskQueueColumns[10]},
			},
			{
				Name:    "queuetask_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueColumns[6], TaskQueueColumns[11]},
			},
			{
				Name:    "queuetask_session_id",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueColumns[7]},
			},
			{
				Name:    "queuetask_task_type",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "working_dir", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "continued_from", Type: field.TypeString, Nullable: true},
		{Name: "medium", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "personality", Type: field.TypeString, Nullable: true},
		{Name: "sandbox_policy", Type: field.TypeString, Nullable: true},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_updated_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7]},
			},
			{
				Name:    "session_medium",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6]},
			},
			{
				Name:    "session_last_activity",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
			{
				Name:    "session_end_time_last_activity",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[4]},
			},
		},
	}
	// SummaryContextsColumns holds the columns for the "summary_contexts" table.
	SummaryContextsColumns = []*schema.Column{
		{Name: "summary_context_id", Type: field.TypeString, Unique: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "session_ids", Type: field.TypeJSON},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SummaryContextsTable holds the schema information for the "summary_contexts" table.
	SummaryContextsTable = &schema.Table{
		Name:       "summary_contexts",
		Columns:    SummaryContextsColumns,
		PrimaryKey: []*schema.Column{SummaryContextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summarycontext_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SummaryContextsColumns[3], SummaryContextsColumns[4]},
			},
		},
	}
	// SurfacedFindingsColumns holds the columns for the "surfaced_findings" table.
	SurfacedFindingsColumns = []*schema.Column{
		{Name: "surfaced_id", Type: field.TypeString, Unique: true},
		{Name: "finding_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SurfacedFindingsTable holds the schema information for the "surfaced_findings" table.
	SurfacedFindingsTable = &schema.Table{
		Name:       "surfaced_findings",
		Columns:    SurfacedFindingsColumns,
		PrimaryKey: []*schema.Column{SurfacedFindingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "surfacedfinding_finding_id_session_id",
				Unique:  true,
				Columns: []*schema.Column{SurfacedFindingsColumns[1], SurfacedFindingsColumns[2]},
			},
			{
				Name:    "surfacedfinding_session_id",
				Unique:  false,
				Columns: []*schema.Column{SurfacedFindingsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AmbientNotificationsTable,
		ContextCacheTable,
		ContradictionReviewsTable,
		ConversationsTable,
		ConversationBlocksTable,
		CoreMemoryBlocksTable,
		CoreMemoryVersionsTable,
		DaemonStatesTable,
		EntityMentionsTable,
		ExplorationFindingsTable,
		MediumPresencesTable,
		MissionsTable,
		MissionExecutionsTable,
		ProjectTasksTable,
		TaskQueueTable,
		SessionsTable,
		SummaryContextsTable,
		SurfacedFindingsTable,
	}
)

func init() {
	ContextCacheTable.Annotation = &entsql.Annotation{
		Table: "context_cache",
	}
	TaskQueueTable.Annotation = &entsql.Annotation{
		Table: "task_queue",
	}
}
