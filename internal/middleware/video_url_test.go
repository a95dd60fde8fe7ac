package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/adpulse/vidcat-ms-go/internal/handler/api"
)

func TestWithVideoURL(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "missing url",
			query:      "",
			wantStatus: http.StatusBadRequest,
			wantBody:   "url query parameter is required",
		},
		{
			name:       "wrong scheme",
			query:      "https://bucket/ad.mp4",
			wantStatus: http.StatusBadRequest,
			wantBody:   "URL must be a GCS path",
		},
		{
			name:       "wrong extension",
			query:      "gs://bucket/ad.mov",
			wantStatus: http.StatusBadRequest,
			wantBody:   "URL must point to an MP4 video file",
		},
		{
			name:       "valid url reaches the handler",
			query:      "gs://bucket/ad.mp4",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var nextCalled bool
			var ctxURL string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				ctxURL, _ = api.VideoURLFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			target := "/classifications"
			if tc.query != "" {
				target += "?url=" + url.QueryEscape(tc.query)
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rr := httptest.NewRecorder()
			WithVideoURL()(next).ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantBody != "" && !strings.Contains(rr.Body.String(), tc.wantBody) {
				t.Errorf("body = %s; want containing %q", rr.Body.String(), tc.wantBody)
			}
			if nextCalled != tc.wantNext {
				t.Errorf("next called = %v; want %v", nextCalled, tc.wantNext)
			}
			if tc.wantNext && ctxURL != tc.query {
				t.Errorf("context URL = %q; want %q", ctxURL, tc.query)
			}
		})
	}
}
