package worker

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/adpulse/vidcat-ms-go/internal/handler/api"
	"github.com/adpulse/vidcat-ms-go/internal/metrics"
	"github.com/adpulse/vidcat-ms-go/internal/port"
)

type classifyTaskRequest struct {
	URL string `json:"url"`
}

// ClassifyVideoHandler is the HTTP callback endpoint the queue delivers to.
// The response status is chosen from the result tag: classification results
// are 200 whether the classifier succeeded or failed internally, because a
// redelivery cannot fix a classifier failure — the failure detail travels in
// the body instead. Only non-classifier errors produce a 500, which the
// queue treats as retryable.
func ClassifyVideoHandler(svc port.VideoClassifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if req.URL == "" {
			api.WriteError(w, http.StatusBadRequest, "No URL provided in request body", nil)
			return
		}

		res, err := svc.ClassifyVideo(r.Context(), port.ClassifyVideoInput{URL: req.URL})
		if err != nil {
			api.WriteError(w, http.StatusInternalServerError,
				fmt.Sprintf("Non-Gemini error for URL: %s. Error: %v", req.URL, err), err)
			return
		}

		if res.Failed() {
			metrics.ClassificationsTotal.WithLabelValues("failed").Inc()
			log.Printf("❌  Classification failed for %q: %s", req.URL, res.Error)
		} else {
			metrics.ClassificationsTotal.WithLabelValues("ok").Inc()
			log.Printf("✅  Classified %q as %q", req.URL, res.IABCategory)
		}
		api.RespondJSON(w, http.StatusOK, res)
	}
}
