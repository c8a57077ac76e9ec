package domain

import (
	"net/mail"
	"strings"
)

// MaxEmailLength is the longest email address accepted.
const MaxEmailLength = 254

// NormalizeEmail trims and lower-cases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email is a bare address such as "a@b.io".
// Display-name forms like "Bob <bob@b.io>" are rejected.
func ValidEmail(email string) bool {
	if email == "" || len(email) > MaxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// NormalizeCategory prepares a record category for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//   - falls back to DefaultCategory when blank
//
// Case is preserved.
func NormalizeCategory(category string) string {
	category = compressSpaces(strings.TrimSpace(category))
	if category == "" {
		return DefaultCategory
	}
	return category
}

// NormalizeTitle trims a record title and compresses inner whitespace.
func NormalizeTitle(title string) string {
	return compressSpaces(strings.TrimSpace(title))
}

func compressSpaces(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
