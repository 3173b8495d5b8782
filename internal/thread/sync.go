package thread

import (
	"context"
	"errors"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"
	"golang.org/x/time/rate"

	"github.com/lifeverse/dm-frontend/internal/model"
)

const historyPageSize = 50

// ErrSendInFlight rejects a second send while one is outstanding, so a
// failed send always restores exactly the content it took.
var ErrSendInFlight = errors.New("a send is already in flight")

// Synchronizer owns the in-memory message list and the derived typing flag
// for exactly one thread between selfUID and characterUID. All mutation
// happens behind one mutex: live events, send responses and history pages
// are serialized, so readers always observe a consistent list.
type Synchronizer struct {
	backend   Backend
	streams   Streams
	validator Validator
	logger    logger_lib.LoggerInterface

	selfUID      string
	characterUID string

	mu         sync.Mutex
	messages   model.MessageList
	known      map[string]struct{}
	typing     bool
	hasMore    bool
	input      string
	sending    bool
	closed     bool
	generation int
	sub        Subscription
	streamErr  error

	typingLimiter *rate.Limiter
	updates       chan struct{}
}

// Snapshot is a consistent copy of the thread state for rendering.
type Snapshot struct {
	Messages  model.MessageList
	Typing    bool
	HasMore   bool
	Input     string
	Sending   bool
	StreamErr error
}

func New(backend Backend, streams Streams, validator Validator, logger logger_lib.LoggerInterface, selfUID, characterUID string) (*Synchronizer, error) {
	if err := validator.ValidateParticipants(selfUID, characterUID); err != nil {
		return nil, err
	}

	return &Synchronizer{
		backend:       backend,
		streams:       streams,
		validator:     validator,
		logger:        logger,
		selfUID:       selfUID,
		characterUID:  characterUID,
		known:         make(map[string]struct{}),
		typingLimiter: rate.NewLimiter(rate.Limit(1), 1),
		updates:       make(chan struct{}, 1),
	}, nil
}

// Start loads the initial history page and only then opens the live
// stream, so the seed ordering is established before any live append.
func (s *Synchronizer) Start(ctx context.Context) error {
	history, err := s.backend.Messages(ctx, s.selfUID, s.characterUID, "", historyPageSize)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	s.mu.Lock()
	for _, msg := range history.Messages {
		if _, ok := s.known[msg.UID]; ok {
			continue
		}
		s.known[msg.UID] = struct{}{}
		s.messages = append(s.messages, msg)
	}
	s.hasMore = history.HasMore
	s.mu.Unlock()

	sub, err := s.streams.Open(ctx, s.selfUID, s.characterUID)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}

	s.mu.Lock()
	s.sub = sub
	generation := s.generation
	s.mu.Unlock()

	go s.consume(generation, sub)

	s.notify()
	return nil
}

// Close tears down the live subscription. Events still in flight from it
// are discarded by the generation gate.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	s.closed = true
	s.generation++
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Close()
	}
}

// Updates signals state changes; the channel coalesces, so a reader that
// drains it and calls Snapshot always sees the latest state.
func (s *Synchronizer) Updates() <-chan struct{} {
	return s.updates
}

func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make(model.MessageList, len(s.messages))
	copy(messages, s.messages)

	return Snapshot{
		Messages:  messages,
		Typing:    s.typing,
		HasMore:   s.hasMore,
		Input:     s.input,
		Sending:   s.sending,
		StreamErr: s.streamErr,
	}
}

// SetInput replaces the draft input buffer.
func (s *Synchronizer) SetInput(value string) {
	s.mu.Lock()
	s.input = value
	s.mu.Unlock()
	s.notify()
}

// Send takes the current input buffer, clears it immediately and issues the
// send call. On failure the captured content is restored so the user can
// retry; nothing is appended to the list. The response message goes through
// the same uid dedup as the live stream, which may echo it as well.
func (s *Synchronizer) Send(ctx context.Context) error {
	s.mu.Lock()
	content := s.input
	if err := s.validator.ValidateMessageContent(content); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.sending {
		s.mu.Unlock()
		return ErrSendInFlight
	}
	s.sending = true
	s.input = ""
	s.mu.Unlock()
	s.notify()

	msg, err := s.backend.SendMessage(ctx, model.SendMessageRequest{
		SourceUID: s.selfUID,
		TargetUID: s.characterUID,
		Content:   content,
	})

	s.mu.Lock()
	s.sending = false
	if err != nil {
		s.input = content
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("failed to send message: %w", err)
	}

	s.appendLocked(*msg)
	s.mu.Unlock()
	s.notify()

	return nil
}

// NotifyTyping reports local input activity to the backend, throttled to at
// most one call per second regardless of keystroke frequency. The call is
// anchored to the most recent message so the receiving side can match it.
func (s *Synchronizer) NotifyTyping(ctx context.Context) error {
	if !s.typingLimiter.Allow() {
		return nil
	}

	s.mu.Lock()
	var anchor string
	if n := len(s.messages); n > 0 {
		anchor = s.messages[n-1].UID
	}
	s.mu.Unlock()

	if err := s.backend.UpdateTyping(ctx, model.TypingRequest{
		SourceUID:  s.selfUID,
		TargetUID:  s.characterUID,
		MessageUID: anchor,
	}); err != nil {
		return fmt.Errorf("failed to send typing notify: %w", err)
	}

	return nil
}

// LoadOlder fetches the page before the oldest known message and prepends
// it. A no-op when the backend already reported the history exhausted.
func (s *Synchronizer) LoadOlder(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMore || len(s.messages) == 0 {
		s.mu.Unlock()
		return nil
	}
	oldest := s.messages[0].UID
	s.mu.Unlock()

	history, err := s.backend.Messages(ctx, s.selfUID, s.characterUID, oldest, historyPageSize)
	if err != nil {
		return fmt.Errorf("failed to load older messages: %w", err)
	}

	s.mu.Lock()
	var page model.MessageList
	for _, msg := range history.Messages {
		if _, ok := s.known[msg.UID]; ok {
			continue
		}
		s.known[msg.UID] = struct{}{}
		page = append(page, msg)
	}
	s.messages = append(page, s.messages...)
	s.hasMore = history.HasMore
	s.mu.Unlock()

	s.notify()
	return nil
}

func (s *Synchronizer) consume(generation int, sub Subscription) {
	for event := range sub.Events() {
		s.handleEvent(generation, event)
	}

	err := sub.Err()

	s.mu.Lock()
	if generation == s.generation && !s.closed {
		s.streamErr = err
		if err != nil && s.logger != nil {
			s.logger.Error(fmt.Sprintf("stream connection lost: %v", err))
		}
	}
	s.mu.Unlock()
	s.notify()
}

// handleEvent applies one live payload. Messages already known by uid are
// never appended twice, tolerating redelivery and the echo of a local send.
func (s *Synchronizer) handleEvent(generation int, event model.StreamEvent) {
	s.mu.Lock()

	if generation != s.generation || s.closed {
		s.mu.Unlock()
		return
	}

	if len(event.Messages) > 0 {
		for _, msg := range event.Messages {
			s.appendLocked(msg)
		}
		// A delivered message is proof that typing ended.
		s.typing = false
	}

	if event.TypingRef.Present {
		switch {
		case event.TypingRef.Value == nil:
			s.typing = false
		case *event.TypingRef.Value == "":
			// Anchorless start is only live before the character has
			// said anything; afterwards it is a stale flag.
			s.typing = s.lastCharacterMessageLocked() == nil
		default:
			last := s.lastCharacterMessageLocked()
			s.typing = last != nil && last.UID == *event.TypingRef.Value
		}
	}

	s.mu.Unlock()
	s.notify()
}

func (s *Synchronizer) appendLocked(msg model.Message) {
	if _, ok := s.known[msg.UID]; ok {
		return
	}
	s.known[msg.UID] = struct{}{}
	s.messages = append(s.messages, msg)
}

func (s *Synchronizer) lastCharacterMessageLocked() *model.Message {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].SourceUID == s.characterUID {
			return &s.messages[i]
		}
	}
	return nil
}

func (s *Synchronizer) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
