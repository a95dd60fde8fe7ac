package model

// ClassificationResult is the outcome of one classifier call. Exactly one of
// the two fields is set: IABCategory on success, Error on failure. The error
// detail always embeds the video URL so that queue logs stay greppable.
type ClassificationResult struct {
	IABCategory string `json:"IAB_Category,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Failed reports whether the classifier call failed. Callers must check this
// rather than rely on transport status codes: failures are carried inside the
// result on purpose, so that the queue never redelivers errors that retrying
// cannot fix.
func (r ClassificationResult) Failed() bool {
	return r.Error != ""
}
