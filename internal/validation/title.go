package validation

import (
	"errors"
	"strings"
)

// ValidateTitle validates board, category and goal titles
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 255 {
		return errors.New("title is too long (max 255 characters)")
	}

	return nil
}

// ValidateCommentText validates goal comment bodies
func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("text is required")
	}

	return nil
}
