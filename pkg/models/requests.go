package models

// CreateSessionRequest creates a new session container.
type CreateSessionRequest struct {
	SessionID     string `json:"session_id"`
	WorkingDir    string `json:"working_dir,omitempty"`
	Medium        string `json:"medium,omitempty"`
	UserID        string `json:"user_id,omitempty"`
	Personality   string `json:"personality,omitempty"`
	SandboxPolicy string `json:"sandbox_policy,omitempty"`
	ContinuedFrom string `json:"continued_from,omitempty"`
	MissionID     string `json:"mission_id,omitempty"`
}

// SessionFilters narrows session listings.
type SessionFilters struct {
	UserID     string
	Medium     string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// CaptureRequest is an observed conversation turn entering the pipeline.
type CaptureRequest struct {
	SessionID  string                 `json:"session_id"`
	Prompt     string                 `json:"prompt"`
	Role       string                 `json:"role,omitempty"`
	Medium     string                 `json:"medium,omitempty"`
	UserID     string                 `json:"user_id,omitempty"`
	WorkingDir string                 `json:"working_dir,omitempty"`
	LatencyMs  *int                   `json:"latency_ms,omitempty"`
	ToolNames  []string               `json:"tool_names,omitempty"`
	IsCommand  bool                   `json:"is_command,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// BlockInput is one conversation block to append.
type BlockInput struct {
	Kind       string                 `json:"kind"`
	Text       string                 `json:"text,omitempty"`
	ToolName   string                 `json:"tool_name,omitempty"`
	ToolUseID  string                 `json:"tool_use_id,omitempty"`
	ToolInput  map[string]interface{} `json:"tool_input,omitempty"`
	ToolResult map[string]interface{} `json:"tool_result,omitempty"`
}

// EditMemoryRequest mutates one core memory block.
type EditMemoryRequest struct {
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	BlockType string `json:"block_type"`
	Content   string `json:"content"`
	Reason    string `json:"reason,omitempty"`
}

// CreateMissionRequest creates a reusable mission.
type CreateMissionRequest struct {
	Name          string   `json:"name"`
	Prompt        string   `json:"prompt"`
	Schedule      string   `json:"schedule,omitempty"`
	SandboxPolicy string   `json:"sandbox_policy,omitempty"`
	Personality   string   `json:"personality,omitempty"`
	Model         string   `json:"model,omitempty"`
	Tools         []string `json:"tools,omitempty"`
	UserID        string   `json:"user_id,omitempty"`
}

// UpdateMissionRequest holds optional mission mutations; nil fields are
// left untouched.
type UpdateMissionRequest struct {
	Name     *string   `json:"name,omitempty"`
	Prompt   *string   `json:"prompt,omitempty"`
	Schedule *string   `json:"schedule,omitempty"`
	Model    *string   `json:"model,omitempty"`
	Tools    *[]string `json:"tools,omitempty"`
	Status   *string   `json:"status,omitempty"`
}

// HeartbeatRequest reports a medium as alive for a user.
type HeartbeatRequest struct {
	Medium   string                   `json:"medium"`
	UserID   string                   `json:"user_id"`
	Channels []map[string]interface{} `json:"channels,omitempty"`
}
