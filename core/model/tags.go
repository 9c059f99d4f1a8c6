package model

import "strings"

// ParseTags splits a comma-separated tag list into trimmed, non-empty tags.
// Tabular sources store skill and capability sets this way.
func ParseTags(raw string) []string {
	if raw == "" || raw == "-" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var tags []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// HasAll reports whether every tag in want is present in have. Tags compare
// case-insensitively.
func HasAll(have, want []string) bool {
	for _, w := range want {
		if !contains(have, w) {
			return false
		}
	}
	return true
}

// Contains reports whether the tag set contains the given tag,
// case-insensitively.
func Contains(tags []string, tag string) bool { return contains(tags, tag) }

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
