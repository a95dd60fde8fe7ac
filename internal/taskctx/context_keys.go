package taskctx

import "context"

type ctxKey string

const TaskIDKey ctxKey = "taskID"

// WithTaskID stashes the ID of the task currently being delivered.
func WithTaskID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TaskIDKey, id)
}

func TaskIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TaskIDKey).(string)
	return id, ok
}
