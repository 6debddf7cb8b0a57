// Package worqhat wraps the external generative-text endpoint behind the
// InsightOracle port: one circuit-breaker flag, a bounded conversation
// history, and a local fallback bank for every failure mode.
package worqhat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"covidlens/domain/insight"
	"covidlens/internal/config"
)

// maxHistory bounds the conversation context sent with each call
const maxHistory = 10

// contentPaths are tried in order against the response envelope; the endpoint
// has served all of these shapes at one time or another.
var contentPaths = []string{
	"content",
	"response",
	"data.content",
	"choices.0.message.content",
}

// Client talks to the text-generation endpoint. The circuit flag starts true;
// a 403 trips it for the rest of the process (the endpoint rejects the key,
// retrying cannot help), and only an explicit ResetCircuit re-arms it. Every
// other failure degrades that one call to the fallback bank.
type Client struct {
	cfg  config.OracleConfig
	http *http.Client

	mu             sync.Mutex
	available      bool
	conversationID string
	history        []string
}

// NewClient builds an oracle client from configuration
func NewClient(cfg config.OracleConfig) *Client {
	return &Client{
		cfg:            cfg,
		http:           &http.Client{Timeout: cfg.Timeout},
		available:      true,
		conversationID: "conv_" + uuid.NewString(),
	}
}

type oracleRequest struct {
	Question            string   `json:"question"`
	Model               string   `json:"model"`
	Randomness          float64  `json:"randomness"`
	StreamData          bool     `json:"stream_data"`
	TrainingData        string   `json:"training_data,omitempty"`
	ResponseType        string   `json:"response_type"`
	ConversationID      string   `json:"conversation_id"`
	PreserveHistory     bool     `json:"preserve_history"`
	ConversationHistory []string `json:"conversation_history,omitempty"`
}

// Summarize answers a free-text question, from the endpoint when the circuit
// is closed and from the fallback bank otherwise.
func (c *Client) Summarize(ctx context.Context, question string) insight.OracleResponse {
	return c.callOracle(ctx, question, "")
}

func (c *Client) callOracle(ctx context.Context, question, training string) insight.OracleResponse {
	c.mu.Lock()
	available := c.available
	history := make([]string, len(c.history))
	copy(history, c.history)
	conversationID := c.conversationID
	c.mu.Unlock()

	if !available {
		return fallbackResponse(question)
	}

	if training == "" {
		training = c.cfg.Training
	}
	body := oracleRequest{
		Question:            question,
		Model:               c.cfg.Model,
		Randomness:          c.cfg.Randomness,
		StreamData:          false,
		TrainingData:        training,
		ResponseType:        "text",
		ConversationID:      conversationID,
		PreserveHistory:     true,
		ConversationHistory: history,
	}

	status, payload, err := c.post(ctx, body)
	if err != nil {
		log.Printf("[InsightOracle] request failed, serving fallback: %v", err)
		return fallbackResponse(question)
	}
	if status == http.StatusForbidden {
		log.Printf("[InsightOracle] 403 from oracle, tripping circuit for process lifetime")
		c.mu.Lock()
		c.available = false
		c.mu.Unlock()
		return fallbackResponse(question)
	}
	if status < 200 || status >= 300 {
		log.Printf("[InsightOracle] oracle returned status %d, serving fallback", status)
		return fallbackResponse(question)
	}

	content := extractContent(payload)

	// History grows only on real answers; fallback-served calls never touch it.
	c.mu.Lock()
	c.history = append(c.history, fmt.Sprintf("%s: %s", question, content))
	if len(c.history) > maxHistory {
		c.history = c.history[len(c.history)-maxHistory:]
	}
	c.mu.Unlock()

	return insight.OracleResponse{
		Content:   content,
		Success:   true,
		Timestamp: time.Now().UnixMilli(),
	}
}

func (c *Client) post(ctx context.Context, body oracleRequest) (int, []byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, payload, nil
}

// extractContent pulls the display text out of whichever envelope the
// endpoint used; an unrecognized payload is treated as the text itself.
func extractContent(payload []byte) string {
	for _, path := range contentPaths {
		if v := gjson.GetBytes(payload, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	parsed := gjson.ParseBytes(payload)
	if parsed.Type == gjson.String {
		return parsed.String()
	}
	return string(payload)
}

func fallbackResponse(question string) insight.OracleResponse {
	return insight.OracleResponse{
		Content:   insight.FallbackFor(question),
		Success:   false,
		Timestamp: time.Now().UnixMilli(),
	}
}

// IsAvailable reports the circuit state without network traffic
func (c *Client) IsAvailable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available
}

// ProbeConnection sends a throwaway request and reports reachability. It does
// not modify the circuit: re-arming after a trip is the caller's decision,
// made with ResetCircuit.
func (c *Client) ProbeConnection(ctx context.Context) bool {
	body := oracleRequest{
		Question:        "Test connection",
		Model:           c.cfg.Model,
		Randomness:      c.cfg.Randomness,
		ResponseType:    "text",
		ConversationID:  fmt.Sprintf("test_%d", time.Now().UnixMilli()),
		PreserveHistory: false,
	}
	status, _, err := c.post(ctx, body)
	if err != nil {
		return false
	}
	return status >= 200 && status < 300
}

// ResetCircuit re-arms a tripped circuit
func (c *Client) ResetCircuit() {
	c.mu.Lock()
	c.available = true
	c.mu.Unlock()
}
