// Package renderer turns captable reports into markdown, ready for the
// terminal or for plain text output.
package renderer

import (
	"fmt"
	"strings"
)

// bullets renders a list of messages as a markdown section, or nothing when
// the list is empty.
func bullets(title string, messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	for _, m := range messages {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return b.String()
}

// RecommendationsMarkdown renders advisory messages.
func RecommendationsMarkdown(recommendations []string) string {
	return bullets("Recommendations", recommendations)
}

// ViolationsMarkdown renders validation violations.
func ViolationsMarkdown(violations []string) string {
	return bullets("Validation issues", violations)
}
