package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lifeverse/dm-frontend/internal/config"
	"github.com/lifeverse/dm-frontend/internal/model"
)

const dataPrefix = "data: "

type TokenStore interface {
	Get() (model.TokenPair, bool)
}

// Client opens the dm/stream event channel. One connection per
// participant pair; opening a new one tears the previous one down. The
// access token is attached at connect time only — a rotated token requires
// a fresh connection.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	logger     logger_lib.LoggerInterface

	mu     sync.Mutex
	active *Subscription
}

// New builds a stream client. The http.Client deliberately carries no
// timeout: the connection is expected to stay open until closed.
func New(cfg *config.Config, tokens TokenStore, logger logger_lib.LoggerInterface) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     logger,
	}
}

// Subscription is a single live connection: a pull-based, cancellable,
// single-consumer event sequence. Events() closes when the connection
// ends; Err() is valid after that and reports nil for a caller-initiated
// Close.
type Subscription struct {
	events chan model.StreamEvent
	cancel context.CancelFunc

	done chan struct{}
	err  error
}

func (s *Subscription) Events() <-chan model.StreamEvent {
	return s.events
}

// Err reports why the stream ended. It blocks until the read loop has
// finished.
func (s *Subscription) Err() error {
	<-s.done
	return s.err
}

// Close aborts the connection and releases the response body. It never
// produces an error on the subscription.
func (s *Subscription) Close() {
	s.cancel()
	<-s.done
}

// Open connects to dm/stream for the given participant pair. Any previous
// subscription of this client is closed first.
func (c *Client) Open(ctx context.Context, sourceUID, targetUID string) (*Subscription, error) {
	c.mu.Lock()
	if c.active != nil {
		c.active.Close()
		c.active = nil
	}
	c.mu.Unlock()

	query := url.Values{}
	query.Set("source_uid", sourceUID)
	query.Set("target_uid", targetUID)

	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dm/stream?"+query.Encode(), nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "text/event-stream")
	if c.tokens != nil {
		if pair, ok := c.tokens.Get(); ok {
			req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to connect stream: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	sub := &Subscription{
		events: make(chan model.StreamEvent, 16),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	c.mu.Lock()
	c.active = sub
	c.mu.Unlock()

	go c.readLoop(ctx, resp.Body, sub)

	return sub, nil
}

// readLoop buffers the response into complete newline-terminated lines; a
// chunk may end mid-line, so only full lines are processed. Lines without
// the event-data prefix are ignored, malformed payloads are logged and
// skipped.
func (c *Client) readLoop(ctx context.Context, body io.ReadCloser, sub *Subscription) {
	defer func() {
		_ = body.Close()
		close(sub.events)
		close(sub.done)
	}()

	reader := bufio.NewReader(body)

	for {
		line, err := reader.ReadString('\n')

		if complete := strings.TrimRight(line, "\r\n"); err == nil && strings.HasPrefix(complete, dataPrefix) {
			var event model.StreamEvent
			if uerr := json.Unmarshal([]byte(complete[len(dataPrefix):]), &event); uerr != nil {
				if c.logger != nil {
					c.logger.Error(fmt.Sprintf("failed to parse stream payload: %v", uerr))
				}
			} else {
				select {
				case sub.events <- event:
				case <-ctx.Done():
					return
				}
			}
		}

		if err != nil {
			// A canceled context means the caller closed the
			// subscription; that is not a stream failure.
			if ctx.Err() == nil {
				sub.err = err
			}
			return
		}
	}
}
