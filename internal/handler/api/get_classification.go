package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/usecase/video"
)

func GetClassificationHandler(renderer port.HTTPRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, ok := VideoURLFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "url is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetClassification(r.Context(), url)
		if err != nil {
			if errors.Is(err, video.ErrClassificationNotFound) {
				WriteError(w, http.StatusNotFound, "Classification not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get classification", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached classification for %q", url)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned classification for %q", url)
	}
}
