package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// BodyValidator sanitizes and bounds user-entered text
// (comment bodies, direct messages, bios).
type BodyValidator struct {
	maxLen int
	policy *bluemonday.Policy
}

func NewBodyValidator(maxLen int) *BodyValidator {
	return &BodyValidator{maxLen: maxLen, policy: bluemonday.StrictPolicy()}
}

// Body strips markup and returns the cleaned text.
func (v *BodyValidator) Body(text string) (string, error) {
	sanitized := strings.TrimSpace(v.policy.Sanitize(text))
	if sanitized == "" {
		return "", errors.BadRequest("Text is too short")
	}
	if utf8.RuneCountInString(sanitized) > v.maxLen {
		return "", errors.BadRequest("Text is too long")
	}
	return sanitized, nil
}

// NameValidator bounds display names and book titles.
type NameValidator struct {
	policy *bluemonday.Policy
}

func NewNameValidator() *NameValidator {
	return &NameValidator{policy: bluemonday.StrictPolicy()}
}

func (v *NameValidator) Name(name string) (string, error) {
	sanitized := strings.TrimSpace(v.policy.Sanitize(name))
	if sanitized == "" {
		return "", errors.BadRequest("Name is too short")
	}
	if utf8.RuneCountInString(sanitized) > 100 {
		return "", errors.BadRequest("Name is too long")
	}
	return sanitized, nil
}

// TagValidator bounds short opaque tags (reaction kinds, genres).
type TagValidator struct{}

func NewTagValidator() *TagValidator {
	return &TagValidator{}
}

func (v *TagValidator) Tag(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", errors.BadRequest("Tag is too short")
	}
	if utf8.RuneCountInString(tag) > 30 {
		return "", errors.BadRequest("Tag is too long")
	}
	return tag, nil
}
