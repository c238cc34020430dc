package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/queue"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

const (
	// DefaultRequestTimeout bounds every request to the score service
	DefaultRequestTimeout = 10 * time.Second
)

// APIClient talks to the score service over HTTP.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
	}
}

// ListHighScores fetches the high score list of the score service.
func (c *APIClient) ListHighScores(ctx context.Context) ([]*models.HighScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/highscores", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	list := make([]*models.HighScore, 0)
	if err := c.do(req, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// RefreshHighScores queues the current list of the score service as a hello
// message, the same message the live feed starts with.
func (c *APIClient) RefreshHighScores(ctx context.Context, messageQueue queue.Queue) error {
	list, err := c.ListHighScores(ctx)
	if err != nil {
		return err
	}
	if err := messageQueue.Enqueue(&messages.ServerHello{HighScores: list}); err != nil {
		return fmt.Errorf("failed to enqueue high scores: %v", err)
	}
	return nil
}

// SubmitHighScore posts a finished game to the score service.
func (c *APIClient) SubmitHighScore(ctx context.Context, submission *messages.SubmitHighScoreRequest) (*messages.SubmitHighScoreResponse, error) {
	b, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/highscores", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp := &messages.SubmitHighScoreResponse{}
	if err := c.do(req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// LiveURL returns the websocket address of the live high score feed.
func (c *APIClient) LiveURL() (string, error) {
	u, err := url.Parse(c.baseURL + "/highscores/live")
	if err != nil {
		return "", fmt.Errorf("failed to parse API URL: %v", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported API URL scheme: %s", u.Scheme)
	}
	return u.String(), nil
}

func (c *APIClient) do(req *http.Request, v interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &ErrUnexpectedStatus{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}
