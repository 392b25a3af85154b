package clarify

import (
	"strconv"
	"strings"
)

// Resolve interprets the user's reply to an outstanding prompt. Rules are
// tried in priority order and the first hit wins:
//
//	1. the reply parses as a 1-based index into the options list
//	2. the reply equals an option id, case-insensitive
//	3. the reply is a case-insensitive substring of an option label
//
// Returns the resolved option id, or ok=false when no rule matched.
func Resolve(reply string, options []Option) (string, bool) {
	trimmed := strings.TrimSpace(reply)
	lower := strings.ToLower(trimmed)

	if idx, err := strconv.Atoi(trimmed); err == nil {
		if idx >= 1 && idx <= len(options) {
			return options[idx-1].ID, true
		}
	}

	for _, opt := range options {
		if strings.ToLower(opt.ID) == lower {
			return opt.ID, true
		}
	}

	for _, opt := range options {
		if lower != "" && strings.Contains(strings.ToLower(opt.Label), lower) {
			return opt.ID, true
		}
	}

	return "", false
}
