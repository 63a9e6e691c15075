package queue

import (
	"context"
	"fmt"

	"github.com/kestrel-ai/kestrel/ent"
)

// Executor runs a claimed queue task. Implementations are registered
// per task type on a Dispatcher.
type Executor interface {
	Execute(ctx context.Context, task *ent.QueueTask) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, task *ent.QueueTask) error

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, task *ent.QueueTask) error {
	return f(ctx, task)
}

// Dispatcher routes tasks to executors by task type.
type Dispatcher struct {
	handlers map[string]Executor
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Executor)}
}

// Register binds an executor to a task type, replacing any previous
// binding. Registration happens before the pool starts; the map is not
// guarded.
func (d *Dispatcher) Register(taskType string, executor Executor) {
	d.handlers[taskType] = executor
}

// Execute dispatches the task to its registered executor.
// An unknown task type is a permanent failure.
func (d *Dispatcher) Execute(ctx context.Context, task *ent.QueueTask) error {
	handler, ok := d.handlers[task.TaskType]
	if !ok {
		return fmt.Errorf("no executor registered for task type %q", task.TaskType)
	}
	return handler.Execute(ctx, task)
}
