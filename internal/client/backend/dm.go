package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lifeverse/dm-frontend/internal/model"
)

func (c *Client) SendMessage(ctx context.Context, req model.SendMessageRequest) (*model.Message, error) {
	var msg model.Message
	if err := c.do(ctx, http.MethodPost, "dm/send", nil, req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Messages returns one history page, oldest to newest. A non-empty
// beforeUID pages backwards from that message.
func (c *Client) Messages(ctx context.Context, sourceUID, targetUID, beforeUID string, limit int) (*model.MessageHistory, error) {
	query := url.Values{}
	query.Set("source_uid", sourceUID)
	query.Set("target_uid", targetUID)
	query.Set("limit", strconv.Itoa(limit))
	if beforeUID != "" {
		query.Set("before_uid", beforeUID)
	}

	var history model.MessageHistory
	if err := c.do(ctx, http.MethodGet, "dm/messages", query, nil, &history); err != nil {
		return nil, err
	}

	return &history, nil
}

func (c *Client) UpdateTyping(ctx context.Context, req model.TypingRequest) error {
	return c.do(ctx, http.MethodPost, "dm/typing", nil, req, nil)
}
