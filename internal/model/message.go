package model

type MessageList []Message

// Message is a single direct message as the backend returns it. The uid is
// assigned by the backend and is stable across redelivery; created is the
// backend's timestamp and is treated as opaque on the client side (the
// delivered order is trusted, the client never re-sorts).
type Message struct {
	UID       string `json:"uid"`
	SourceUID string `json:"source_uid"`
	TargetUID string `json:"target_uid"`
	Content   string `json:"content"`
	Created   string `json:"created"`
}

type MessageHistory struct {
	Messages MessageList `json:"messages"`
	HasMore  bool        `json:"has_more"`
}

type SendMessageRequest struct {
	SourceUID string `json:"source_uid"`
	TargetUID string `json:"target_uid"`
	Content   string `json:"content"`
}

type TypingRequest struct {
	SourceUID  string `json:"source_uid"`
	TargetUID  string `json:"target_uid"`
	MessageUID string `json:"message_uid,omitempty"`
}
