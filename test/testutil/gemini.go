package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// FakeGemini stands in for the Vertex AI generateContent endpoint so the
// worker path can be exercised without a GCP project.
type FakeGemini struct {
	srv *httptest.Server

	mu    sync.Mutex
	calls int
}

// StartFakeGemini returns a server that classifies every video as category.
func StartFakeGemini(category string) *FakeGemini {
	f := &FakeGemini{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls++
		f.mu.Unlock()

		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{
						"text": fmt.Sprintf(`{"IAB_Category": %q}`, category),
					}},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	return f
}

// StartBrokenGemini returns a server that fails every call.
func StartBrokenGemini() *FakeGemini {
	f := &FakeGemini{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls++
		f.mu.Unlock()

		http.Error(w, "backend overloaded", http.StatusServiceUnavailable)
	}))
	return f
}

func (f *FakeGemini) URL() string { return f.srv.URL }

func (f *FakeGemini) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeGemini) Close() { f.srv.Close() }
