package insights

import (
	"errors"
	"strings"
)

var ErrNoInsights = errors.New("no insights in generated text")

// ParseInsights splits generated text into discrete insights: one per
// line, blank lines dropped. Text with no non-blank lines is a failure.
func ParseInsights(text string) ([]string, error) {
	lines := strings.Split(text, "\n")
	insights := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		insights = append(insights, line)
	}
	if len(insights) == 0 {
		return nil, ErrNoInsights
	}
	return insights, nil
}
