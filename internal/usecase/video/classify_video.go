package video

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/adpulse/vidcat-ms-go/internal/model"
	"github.com/adpulse/vidcat-ms-go/internal/port"
)

// resultTTL is how long a classification stays cached. The source object is
// immutable and decoding is deterministic, so the TTL only bounds cache size.
const resultTTL = 24 * time.Hour

type videoClassifierSrv struct {
	clf   port.Classifier
	cache port.Cache
}

func NewVideoClassifier(clf port.Classifier, cache port.Cache) port.VideoClassifier {
	return &videoClassifierSrv{clf, cache}
}

// ClassifyVideo returns the classification for one video. The cache is
// consulted first so that a redelivered task for an already-classified URL
// costs one Redis read instead of a model call. Only successful results are
// cached; failures stay transient.
func (s *videoClassifierSrv) ClassifyVideo(ctx context.Context, in port.ClassifyVideoInput) (model.ClassificationResult, error) {
	if raw, err := s.cache.GetClassification(ctx, in.URL); err == nil && raw != nil {
		var res model.ClassificationResult
		if err := json.Unmarshal(raw, &res); err == nil {
			logger.Debugf(ctx, "classification for %q served from cache", in.URL)
			return res, nil
		}
		logger.Warnf(ctx, "corrupted cache entry for %q, reclassifying", in.URL)
	} else if err != nil {
		logger.Warnf(ctx, "cache lookup failed for %q: %v", in.URL, err)
	}

	res := s.clf.Classify(ctx, in.URL)
	if res.Failed() {
		return res, nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		// The result itself is fine; only caching is lost.
		logger.Warnf(ctx, "could not marshal classification for %q: %v", in.URL, err)
		return res, nil
	}
	validUntil := time.Now().Add(resultTTL)
	etag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(data))
	s.cache.SetClassification(ctx, in.URL, data, validUntil)
	s.cache.SetEtagClassification(ctx, in.URL, etag, validUntil)

	return res, nil
}
