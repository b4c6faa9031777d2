package wards

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?[ \t]*\n?(.*?)```")

// ExtractJSON pulls a JSON value out of model output: direct parse first,
// then fenced blocks, then a greedy scan for the outermost object or array.
// Returns the decoded value and whether anything parseable was found.
func ExtractJSON(content string) (any, bool) {
	text := strings.TrimSpace(content)
	if v, ok := tryParse(text); ok {
		return v, true
	}

	for _, match := range fencedJSONPattern.FindAllStringSubmatch(text, -1) {
		if v, ok := tryParse(strings.TrimSpace(match[1])); ok {
			return v, true
		}
	}

	if v, ok := greedyScan(text, '{', '}'); ok {
		return v, true
	}
	return greedyScan(text, '[', ']')
}

func tryParse(text string) (any, bool) {
	if text == "" {
		return nil, false
	}
	if text[0] != '{' && text[0] != '[' {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// greedyScan parses from the first opening bracket to the last closing one,
// shrinking from the right until something decodes.
func greedyScan(text string, open, closeCh byte) (any, bool) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return nil, false
	}
	for end := strings.LastIndexByte(text, closeCh); end > start; end = strings.LastIndexByte(text[:end], closeCh) {
		if v, ok := tryParse(text[start : end+1]); ok {
			return v, true
		}
	}
	return nil, false
}
