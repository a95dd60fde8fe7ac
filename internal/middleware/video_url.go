package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/adpulse/vidcat-ms-go/internal/handler/api"
	"github.com/adpulse/vidcat-ms-go/internal/validation"
)

// WithVideoURL pulls the video URL from the query string, applies the same
// policy as the intake endpoint and stashes it in the request context.
func WithVideoURL() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			url := r.URL.Query().Get("url")
			if url == "" {
				api.WriteError(w, http.StatusBadRequest, "url query parameter is required", nil)
				return
			}
			if err := validation.CheckVideoURL(url); err != nil {
				if errors.Is(err, validation.ErrInvalidScheme) || errors.Is(err, validation.ErrInvalidExtension) {
					api.WriteError(w, http.StatusBadRequest, err.Error(), nil)
					return
				}
				api.WriteError(w, http.StatusBadRequest, "invalid url", err)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api.VideoURLKey, url)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
