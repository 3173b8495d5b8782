package model

import "encoding/json"

// StreamEvent is one decoded payload from the dm/stream event channel.
// Both fields are optional; a payload may carry new messages, a typing
// signal, or both.
type StreamEvent struct {
	Messages  MessageList `json:"messages,omitempty"`
	TypingRef TypingRef   `json:"typing_ref"`
}

// TypingRef is the three-state typing signal: absent (no change), null
// (typing stopped), "" (typing with no anchor message yet) or a message
// uid (typing anchored to the last character message). Absent and null
// must stay distinguishable, hence the explicit Present flag.
type TypingRef struct {
	Present bool
	Value   *string
}

func (t *TypingRef) UnmarshalJSON(data []byte) error {
	t.Present = true
	if string(data) == "null" {
		t.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t.Value = &s
	return nil
}

// MarshalJSON cannot express the absent state; callers that need a payload
// without typing_ref should build the JSON themselves.
func (t TypingRef) MarshalJSON() ([]byte, error) {
	if t.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*t.Value)
}
