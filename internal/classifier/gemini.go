package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/adpulse/vidcat-ms-go/internal/model"
	"github.com/adpulse/vidcat-ms-go/internal/port"
)

const (
	systemInstruction = "You categorize a video ad into IAB categories. You return the name of only one IAB category which is the most relevant one"
	classifyPrompt    = "Please classify"
	maxOutputTokens   = 8192
)

// GeminiClient calls the Vertex AI generateContent endpoint for a Gemini
// model. One classification is one synchronous call: the video is passed by
// gs:// reference, decoding is deterministic (temperature 0) and the output
// is constrained to a JSON object holding a single IAB_Category string.
type GeminiClient struct {
	httpClient *http.Client
	url        string
	token      string
}

// compile-time check: *GeminiClient must satisfy port.Classifier
var _ port.Classifier = (*GeminiClient)(nil)

// NewGeminiClient builds a client for the given project/location/model.
// endpoint overrides the regional Vertex AI base URL when non-empty.
func NewGeminiClient(projectID, location, geminiModel, token, endpoint string) *GeminiClient {
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s-aiplatform.googleapis.com", location)
	}
	url := fmt.Sprintf("%s/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		endpoint, projectID, location, geminiModel)

	// No local timeout: the request deadline is governed by the caller's
	// context (the queue's delivery deadline on the worker path).
	return &GeminiClient{httpClient: &http.Client{}, url: url, token: token}
}

// --- request/response wire types (Vertex AI REST) ---

type generateRequest struct {
	Contents          []content        `json:"contents"`
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text     string    `json:"text,omitempty"`
	FileData *fileData `json:"fileData,omitempty"`
}

type fileData struct {
	MimeType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

type generationConfig struct {
	Temperature      float64         `json:"temperature"`
	MaxOutputTokens  int             `json:"maxOutputTokens"`
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   *responseSchema `json:"responseSchema,omitempty"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type schemaProperty struct {
	Type string `json:"type"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Classify sends one generateContent call for the video at videoURL and
// returns the parsed result. Every failure — transport, quota, malformed
// response — is caught here and reported inside the result; this method
// never lets an external-service failure escape as an error.
func (c *GeminiClient) Classify(ctx context.Context, videoURL string) model.ClassificationResult {
	logger.Infof(ctx, "URL sent to Gemini: %s", videoURL)

	res, err := c.generateContent(ctx, videoURL)
	if err != nil {
		logger.Errorf(ctx, "Gemini call failed for URL: %s: %v", videoURL, err)
		return model.ClassificationResult{
			Error: fmt.Sprintf("Gemini call failed for URL: %s. Error: %v", videoURL, err),
		}
	}
	return res
}

func (c *GeminiClient) generateContent(ctx context.Context, videoURL string) (model.ClassificationResult, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{FileData: &fileData{MimeType: "video/mp4", FileURI: videoURL}},
				{Text: classifyPrompt},
			},
		}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		GenerationConfig: generationConfig{
			Temperature:      0.0,
			MaxOutputTokens:  maxOutputTokens,
			ResponseMimeType: "application/json",
			ResponseSchema: &responseSchema{
				Type:       "OBJECT",
				Properties: map[string]schemaProperty{"IAB_Category": {Type: "STRING"}},
				Required:   []string{"IAB_Category"},
			},
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ClassificationResult{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return model.ClassificationResult{}, fmt.Errorf("could not read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.ClassificationResult{}, fmt.Errorf("generateContent returned %s: %s", resp.Status, body)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("could not unmarshal response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return model.ClassificationResult{}, fmt.Errorf("response contains no candidates")
	}

	var out model.ClassificationResult
	if err := json.Unmarshal([]byte(gr.Candidates[0].Content.Parts[0].Text), &out); err != nil {
		return model.ClassificationResult{}, fmt.Errorf("could not parse structured output: %w", err)
	}
	if out.IABCategory == "" {
		return model.ClassificationResult{}, fmt.Errorf("structured output is missing IAB_Category")
	}
	return out, nil
}
