package wards

import (
	"regexp"
	"strings"
)

var (
	codeFencePattern = regexp.MustCompile("(?s)```.*?```")

	markdownPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^#{1,6}\s+\S`),
		regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`),
		regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`),
		regexp.MustCompile(`\*\*[^*\n]+\*\*`),
		regexp.MustCompile(`(?m)^\s*\|.+\|\s*$`),
	}

	errorMarkerPattern = regexp.MustCompile(`(?i)\b(error|exception|traceback|panic|fatal)\b`)
)

// runBuiltin executes one of the always-available checks.
func runBuiltin(name, content string) Verdict {
	switch name {
	case "non_empty":
		if strings.TrimSpace(content) != "" {
			return Verdict{Valid: true}
		}
		return Verdict{Reason: "output is empty"}

	case "has_json":
		if _, ok := ExtractJSON(content); ok {
			return Verdict{Valid: true}
		}
		return Verdict{Reason: "output contains no parseable JSON"}

	case "has_code":
		if codeFencePattern.MatchString(content) {
			return Verdict{Valid: true}
		}
		return Verdict{Reason: "output contains no fenced code block"}

	case "has_markdown":
		for _, p := range markdownPatterns {
			if p.MatchString(content) {
				return Verdict{Valid: true}
			}
		}
		return Verdict{Reason: "output contains no markdown structure"}

	case "no_error":
		if m := errorMarkerPattern.FindString(content); m != "" {
			return Verdict{Reason: "output contains error marker " + strings.ToLower(m)}
		}
		return Verdict{Valid: true}

	default:
		return Verdict{Reason: "unknown builtin validator " + name}
	}
}
