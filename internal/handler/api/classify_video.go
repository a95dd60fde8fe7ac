package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/adpulse/vidcat-ms-go/internal/metrics"
	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/validation"
)

type ClassifyVideoRequest struct {
	URL string `json:"url" validate:"required"`
}

func ClassifyVideoHandler(svc port.VideoSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClassifyVideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.SubmitVideo(r.Context(), port.SubmitVideoInput{URL: req.URL})
		if err != nil {
			if errors.Is(err, validation.ErrInvalidScheme) || errors.Is(err, validation.ErrInvalidExtension) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not queue URL %q for processing", req.URL), err)
			return
		}

		metrics.TasksEnqueuedTotal.Inc()
		RespondJSON(w, http.StatusAccepted, out)
		log.Printf("✅  URL queued for processing. Task ID: %s", out.TaskID)
	}
}
