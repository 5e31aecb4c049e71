package insights

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fitdash/fitdash/internal/telemetry/tracing"
	"github.com/fitdash/fitdash/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour                  = 60 * 60
	generatedTextCacheExpire = oneHour * 1
)

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
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

// Client talks to a Gemini-shaped text generation endpoint. Responses are
// cached by prompt hash, so repeated identical prompts skip the model call.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	cache      *freecache.Cache
}

func NewClient(apiURL, apiKey string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSize),
	}
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsClient.generateText")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := promptCacheKey(prompt)
	if cachedText, err := c.cache.Get(cacheKey); err == nil {
		log.Tracef("found generated text in cache for prompt hash %x", cacheKey)
		return pkg.BytesToString(cachedText), nil
	}

	reqBody, err := json.Marshal(generateRequest{
		Contents: []generateContent{{
			Parts: []generatePart{{Text: prompt}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	// single request, no retry - a failure degrades to the fallback insight
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate response status %d: %s", resp.StatusCode, respBytes)
	}

	var generateResp generateResponse
	if err := json.Unmarshal(respBytes, &generateResp); err != nil {
		return "", fmt.Errorf("unmarshal generate response: %w", err)
	}

	// anything other than candidates[0].content.parts[0].text is a failure
	if len(generateResp.Candidates) == 0 || len(generateResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("malformed generate response: %s", respBytes)
	}

	text := generateResp.Candidates[0].Content.Parts[0].Text
	if err := c.cache.Set(cacheKey, []byte(text), generatedTextCacheExpire); err != nil {
		log.Errorf("failed to cache generated text: %s", err)
	}

	return text, nil
}

func promptCacheKey(prompt string) []byte {
	hash := sha256.Sum256([]byte(prompt))
	return hash[:]
}
