// Package parser extracts the title, tag list, and card preview from raw
// Markdown project documents.
package parser

import (
	"regexp"
	"strings"
)

// previewLines is the number of body lines folded into the card preview.
const previewLines = 4

var headingRe = regexp.MustCompile(`^#+\s*`)

// Result holds the fields extracted from one Markdown document.
type Result struct {
	// Title is the first heading with its # markers stripped. Empty when
	// the document has no heading; callers apply the filename fallback.
	Title string
	// Tags parsed from the first "Tags: a, b, c" line, if any.
	Tags []string
	// Preview is the first few non-blank body lines after the title,
	// excluding the tags line, joined with single spaces.
	Preview string
}

// Parse extracts structured fields from raw Markdown. It is total over
// arbitrary input: degenerate documents yield empty fields, never an error.
func Parse(data []byte) *Result {
	lines := strings.Split(string(data), "\n")

	titleIdx := -1
	title := ""
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			title = strings.TrimSpace(headingRe.ReplaceAllString(trimmed, ""))
			titleIdx = i
			break
		}
	}

	var tags []string
	tagsIdx := -1
	for i, line := range lines {
		if i <= titleIdx {
			continue
		}
		if t, ok := parseTagsLine(line); ok {
			tags = t
			tagsIdx = i
			break
		}
	}

	var preview []string
	for i, line := range lines {
		if i <= titleIdx || i == tagsIdx {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		preview = append(preview, trimmed)
		if len(preview) == previewLines {
			break
		}
	}

	return &Result{
		Title:   title,
		Tags:    tags,
		Preview: strings.Join(preview, " "),
	}
}

// parseTagsLine recognises a case-insensitive "tags:" prefix and splits the
// remainder on commas. Empty tokens are dropped; first match wins.
func parseTagsLine(line string) ([]string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 5 || !strings.EqualFold(trimmed[:5], "tags:") {
		return nil, false
	}
	var out []string
	for _, piece := range strings.Split(trimmed[5:], ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out, true
}

// TitleFallback returns the filename with its extension removed, used when
// a document has no heading.
func TitleFallback(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
