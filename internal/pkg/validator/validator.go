package validator

import (
	"fmt"
	"strings"
)

const maxMessageLength = 2000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateMessageContent rejects content before any network call is made.
func (v *Validator) ValidateMessageContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(content)) > maxMessageLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxMessageLength)
	}

	return nil
}

func (v *Validator) ValidateParticipants(sourceUID, targetUID string) error {
	if strings.TrimSpace(sourceUID) == "" {
		return fmt.Errorf("source profile is required")
	}

	if strings.TrimSpace(targetUID) == "" {
		return fmt.Errorf("target profile is required")
	}

	if sourceUID == targetUID {
		return fmt.Errorf("a thread requires two distinct participants")
	}

	return nil
}
