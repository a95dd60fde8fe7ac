package api

import "context"

type ctxKey string

const VideoURLKey ctxKey = "videoURL"

func VideoURLFromContext(ctx context.Context) (string, bool) {
	url, ok := ctx.Value(VideoURLKey).(string)
	return url, ok
}
