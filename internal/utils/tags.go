package utils

import "strings"

// ParseTags splits a comma separated tag string, trimming every entry and
// dropping empty ones. Order is preserved.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// CleanTags applies the ParseTags rules to an already split list.
func CleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTags is the inverse used when a tag list is edited as text.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
