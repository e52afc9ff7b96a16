package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	openaiBaseURL      = "https://api.openai.com"
	openaiGeneratePath = "/v1/images/generations"
	openaiHTTPTimeout  = 10 * time.Minute
)

var openaiHTTPClient = &http.Client{
	Timeout: openaiHTTPTimeout,
}

// OpenAIClient implements Generator against OpenAI's image API.
type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAIClient creates a client for the given API key and model
// (e.g. "gpt-image-1").
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: openaiBaseURL,
		client:  openaiHTTPClient,
	}
}

func (c *OpenAIClient) Name() string {
	return "OpenAI"
}

func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	quality := req.Quality
	if quality == "" {
		quality = "auto"
	}

	genReq := openaiGenerateRequest{
		Model:        c.model,
		Prompt:       req.Prompt,
		Size:         req.Size.String(),
		Quality:      quality,
		OutputFormat: "png",
		N:            1,
	}

	if req.Debug {
		fmt.Fprintf(os.Stderr, "Requesting %s at %s (quality %s)\n", c.model, genReq.Size, genReq.Quality)
	}

	jsonBody, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+openaiGeneratePath, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.doRequest(httpReq)
}

func (c *OpenAIClient) doRequest(httpReq *http.Request) (*Result, error) {
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp openaiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if apiResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Data) == 0 {
		return nil, fmt.Errorf("no image data in response")
	}

	// Only inline base64 data is accepted. A URL-only response would require
	// a second fetch with its own failure modes, so it is treated as an error.
	if apiResp.Data[0].B64JSON == "" {
		if apiResp.Data[0].URL != "" {
			return nil, fmt.Errorf("response contained an image URL instead of inline data")
		}
		return nil, fmt.Errorf("no image data in response")
	}

	imageData, err := base64.StdEncoding.DecodeString(apiResp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return &Result{
		Data:     imageData,
		MimeType: "image/png",
	}, nil
}

// OpenAI API types
type openaiGenerateRequest struct {
	Model        string `json:"model"`
	Prompt       string `json:"prompt"`
	Size         string `json:"size"`
	Quality      string `json:"quality"`
	OutputFormat string `json:"output_format"`
	N            int    `json:"n"`
}

type openaiResponse struct {
	Data  []openaiImageData `json:"data"`
	Error *openaiError      `json:"error,omitempty"`
}

type openaiImageData struct {
	B64JSON string `json:"b64_json,omitempty"`
	URL     string `json:"url,omitempty"`
}

type openaiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}
