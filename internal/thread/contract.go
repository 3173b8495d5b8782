//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package thread

import (
	"context"

	"github.com/lifeverse/dm-frontend/internal/model"
)

type Backend interface {
	Messages(ctx context.Context, sourceUID, targetUID, beforeUID string, limit int) (*model.MessageHistory, error)
	SendMessage(ctx context.Context, req model.SendMessageRequest) (*model.Message, error)
	UpdateTyping(ctx context.Context, req model.TypingRequest) error
}

type Streams interface {
	Open(ctx context.Context, sourceUID, targetUID string) (Subscription, error)
}

type Subscription interface {
	Events() <-chan model.StreamEvent
	Err() error
	Close()
}

type Validator interface {
	ValidateMessageContent(content string) error
	ValidateParticipants(sourceUID, targetUID string) error
}
