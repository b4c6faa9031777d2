package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Compiled once.
var (
	fencePattern = regexp.MustCompile("(?s)```([\\w-]*)[ \\t]*\\n?(.*?)```")

	// RE2 has no backreferences; closing tags are spelled out per tag.
	tagPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<tool_call>(.*?)</tool_call>`),
		regexp.MustCompile(`(?s)<function_call>(.*?)</function_call>`),
		regexp.MustCompile(`(?s)<tools>(.*?)</tools>`),
	}

	invokeNamePattern = regexp.MustCompile(`(?s)<invoke\s+name="([^"]+)"\s*>(.*?)</invoke>`)
	parameterPattern  = regexp.MustCompile(`(?s)<parameter\s+name="([^"]+)"\s*>(.*?)</parameter>`)

	xmlNameAttrPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<function_call\s+name="([^"]+)"\s*>(.*?)</function_call>`),
		regexp.MustCompile(`(?s)<tool\s+name="([^"]+)"\s*>(.*?)</tool>`),
		regexp.MustCompile(`(?s)<action\s+name="([^"]+)"\s*>(.*?)</action>`),
	}
	xmlSelfClosingPattern = regexp.MustCompile(`<(?:function_call|tool|action)\s+name="([^"]+)"\s*/>`)

	specialTokenPattern = regexp.MustCompile(`(?s)<\|tool_call\|>(.*?)<\|/tool_call\|>`)
	bracketTokenPattern = regexp.MustCompile(`(?s)\[TOOL_CALL\](.*?)\[/TOOL_CALL\]`)
	mistralPattern      = regexp.MustCompile(`(?s)\[TOOL_CALLS\]\s*(\[.*)`)
	wrappedArrayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<tool_calls>(.*?)</tool_calls>`),
		regexp.MustCompile(`(?s)<function_calls>(.*?)</function_calls>`),
	}

	reactActionPattern = regexp.MustCompile(`(?m)^Action:[ \t]*(.+)$`)
	reactInputPattern  = regexp.MustCompile(`(?m)^Action Input:[ \t]*`)

	directivePattern = regexp.MustCompile(`(?m)^(?:Use|Call|Execute|Run):[ \t]*([\w.\-]+)[ \t]*$`)
	directiveWith    = regexp.MustCompile(`(?m)^With:[ \t]*`)

	markdownToolPattern = regexp.MustCompile(`(?m)^##[ \t]*Tool:[ \t]*(.+)$`)
	markdownArgsPattern = regexp.MustCompile(`(?m)^###[ \t]*Arguments:[ \t]*$`)

	funcCallPattern = regexp.MustCompile(`\b([A-Za-z_][\w.]*)\s*\(\s*\{`)

	kvLinePattern  = regexp.MustCompile(`^([A-Za-z_][\w]*):[ \t]*(.*)$`)
	toolNameIdent  = regexp.MustCompile(`^[\w.\-]+$`)
	jsonToolMarker = regexp.MustCompile(`"(tool|tool_name|function|function_call|name)"\s*:`)
)

// knownLanguages are fence identifiers that never name a tool (format 2) and
// whose fenced bodies are excluded from text-level scanning.
var knownLanguages = map[string]bool{
	"json": true, "yaml": true, "yml": true, "xml": true, "toml": true,
	"python": true, "py": true, "go": true, "golang": true,
	"javascript": true, "js": true, "typescript": true, "ts": true,
	"bash": true, "sh": true, "shell": true, "zsh": true, "console": true,
	"sql": true, "html": true, "css": true, "c": true, "cpp": true, "c++": true,
	"java": true, "rust": true, "ruby": true, "php": true, "swift": true,
	"kotlin": true, "scala": true, "r": true, "perl": true, "lua": true,
	"text": true, "txt": true, "plaintext": true, "markdown": true, "md": true,
	"diff": true, "dockerfile": true, "makefile": true, "ini": true, "csv": true,
}

// builtinNames are function-call names excluded from format 5; common
// language builtins the model writes in prose or pseudo-code.
var builtinNames = map[string]bool{
	"print": true, "println": true, "printf": true, "len": true, "str": true,
	"int": true, "float": true, "bool": true, "list": true, "dict": true,
	"set": true, "range": true, "type": true, "format": true, "input": true,
	"open": true, "main": true, "func": true, "function": true, "return": true,
	"if": true, "for": true, "while": true, "switch": true, "make": true,
	"new": true, "append": true, "map": true, "filter": true, "sorted": true,
	"json.dumps": true, "json.loads": true, "json.parse": true,
	"json.stringify": true, "console.log": true, "fmt.println": true,
}

type fencedBlock struct {
	lang string
	body string
}

func fencedBlocks(text string) []fencedBlock {
	var blocks []fencedBlock
	for _, m := range fencePattern.FindAllStringSubmatch(text, -1) {
		blocks = append(blocks, fencedBlock{
			lang: strings.ToLower(strings.TrimSpace(m[1])),
			body: strings.TrimSpace(m[2]),
		})
	}
	return blocks
}

// stripFences removes fenced code blocks so text-level extractors do not scan
// code samples.
func stripFences(text string) string {
	return fencePattern.ReplaceAllString(text, "")
}

// 1. Fenced JSON: ```json {"tool": N, "arguments": A} ```
func extractFencedJSON(text string) ([]candidate, error) {
	var out []candidate
	for _, block := range fencedBlocks(text) {
		if block.lang != "json" && block.lang != "" {
			continue
		}
		body := block.body
		if !strings.HasPrefix(body, "{") && !strings.HasPrefix(body, "[") {
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(body), &decoded); err != nil {
			if jsonToolMarker.MatchString(body) {
				return nil, fmt.Errorf("malformed JSON in fenced tool call block: %w", err)
			}
			continue
		}
		found, err := normalizeAny(decoded)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

// 2. Fenced block whose language identifier is a tool name rather than a
// known programming language; the body is the JSON args.
func extractFencedToolName(text string) ([]candidate, error) {
	var out []candidate
	for _, block := range fencedBlocks(text) {
		if block.lang == "" || knownLanguages[block.lang] || !toolNameIdent.MatchString(block.lang) {
			continue
		}
		if !strings.HasPrefix(block.body, "{") {
			continue
		}
		var args map[string]any
		if err := json.Unmarshal([]byte(block.body), &args); err != nil {
			return nil, fmt.Errorf("malformed JSON arguments in fenced block for tool %s: %w", block.lang, err)
		}
		out = append(out, candidate{name: block.lang, args: args})
	}
	return out, nil
}

// 3 & 8. <tool_call>…</tool_call>, <function_call>…</function_call>,
// <tools>…</tools> wrapping a JSON object or array (Hermes/ChatML included).
func extractTaggedCalls(text string) ([]candidate, error) {
	var out []candidate
	for _, pattern := range tagPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			body := strings.TrimSpace(m[1])
			if body == "" {
				continue
			}
			var decoded any
			if err := json.Unmarshal([]byte(body), &decoded); err != nil {
				return nil, fmt.Errorf("malformed JSON in tool call tag block: %w", err)
			}
			found, err := normalizeAny(decoded)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		}
	}
	return out, nil
}

// 4. <invoke name="N">{…}</invoke>, with JSON body or <parameter> children.
func extractInvokeTags(text string) ([]candidate, error) {
	var out []candidate
	for _, m := range invokeNamePattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		body := strings.TrimSpace(m[2])

		args := map[string]any{}
		switch {
		case strings.HasPrefix(body, "{"):
			if err := json.Unmarshal([]byte(body), &args); err != nil {
				return nil, fmt.Errorf("malformed JSON in <invoke> block for tool %s: %w", name, err)
			}
		default:
			for _, p := range parameterPattern.FindAllStringSubmatch(body, -1) {
				args[p[1]] = parseScalar(strings.TrimSpace(p[2]))
			}
		}
		out = append(out, candidate{name: name, args: args})
	}
	return out, nil
}

// 5. Function-call syntax N({…}) where N is not a language builtin.
// Scans fence-stripped text; malformed payloads here are treated as prose.
func extractFunctionSyntax(text string) ([]candidate, error) {
	stripped := stripFences(text)
	var out []candidate
	for _, loc := range funcCallPattern.FindAllStringSubmatchIndex(stripped, -1) {
		name := stripped[loc[2]:loc[3]]
		if builtinNames[strings.ToLower(name)] {
			continue
		}
		braceStart := strings.IndexByte(stripped[loc[0]:], '{') + loc[0]
		body, ok := balancedBraces(stripped, braceStart)
		if !ok {
			continue
		}
		var args map[string]any
		if err := json.Unmarshal([]byte(body), &args); err != nil {
			continue
		}
		out = append(out, candidate{name: name, args: args})
	}
	return out, nil
}

// 6. ReAct: Action: N / Action Input: {…}. Thought/Observation lines are
// ignored. A JSON-looking input that fails to parse is a hard error so the
// runner can retry the attempt.
func extractReAct(text string) ([]candidate, error) {
	stripped := stripFences(text)
	actionMatch := reactActionPattern.FindStringSubmatch(stripped)
	if actionMatch == nil {
		return nil, nil
	}
	name := strings.TrimSpace(actionMatch[1])
	if name == "" || !toolNameIdent.MatchString(name) {
		return nil, nil
	}

	inputLoc := reactInputPattern.FindStringIndex(stripped)
	if inputLoc == nil {
		return nil, nil
	}
	raw := stripped[inputLoc[1]:]
	if end := strings.Index(raw, "\nObservation:"); end != -1 {
		raw = raw[:end]
	}
	raw = strings.TrimSpace(raw)

	args := map[string]any{}
	switch {
	case raw == "":
	case strings.HasPrefix(raw, "{"):
		body, ok := balancedBraces(raw, 0)
		if !ok {
			return nil, fmt.Errorf("malformed JSON in Action Input for tool %s: unbalanced braces", name)
		}
		if err := json.Unmarshal([]byte(body), &args); err != nil {
			return nil, fmt.Errorf("malformed JSON in Action Input for tool %s: %w", name, err)
		}
	default:
		args["input"] = strings.SplitN(raw, "\n", 2)[0]
	}
	return []candidate{{name: name, args: args}}, nil
}

// 7. Mistral: [TOOL_CALLS] [{…}]
func extractMistral(text string) ([]candidate, error) {
	m := mistralPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	body, ok := balancedBrackets(m[1], 0)
	if !ok {
		return nil, fmt.Errorf("malformed JSON array after [TOOL_CALLS]: unbalanced brackets")
	}
	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, fmt.Errorf("malformed JSON array after [TOOL_CALLS]: %w", err)
	}
	return normalizeAny(decoded)
}

// 9. Bare single-line JSON containing a tool-ish key.
func extractBareJSON(text string) ([]candidate, error) {
	stripped := stripFences(text)
	var out []candidate
	for _, rawLine := range strings.Split(stripped, "\n") {
		line := strings.TrimSpace(rawLine)
		if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
			continue
		}
		if !jsonToolMarker.MatchString(line) {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return nil, fmt.Errorf("malformed single-line JSON tool call: %w", err)
		}
		c, ok, err := normalizeCallObject(obj)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// 10. XML with a name attribute: <function_call name="N">…, <tool name=…>,
// <action name=…>.
func extractXMLNameAttr(text string) ([]candidate, error) {
	var out []candidate
	for _, pattern := range xmlNameAttrPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			name := m[1]
			body := strings.TrimSpace(m[2])

			args := map[string]any{}
			switch {
			case strings.HasPrefix(body, "{"):
				if err := json.Unmarshal([]byte(body), &args); err != nil {
					return nil, fmt.Errorf("malformed JSON in tool call block for %s: %w", name, err)
				}
			case body != "":
				for _, p := range parameterPattern.FindAllStringSubmatch(body, -1) {
					args[p[1]] = parseScalar(strings.TrimSpace(p[2]))
				}
			}
			out = append(out, candidate{name: name, args: args})
		}
	}
	for _, m := range xmlSelfClosingPattern.FindAllStringSubmatch(text, -1) {
		out = append(out, candidate{name: m[1], args: map[string]any{}})
	}
	return out, nil
}

// 11. YAML fenced blocks with a tool:/function:/action: key.
func extractYAMLFenced(text string) ([]candidate, error) {
	var out []candidate
	for _, block := range fencedBlocks(text) {
		if block.lang != "yaml" && block.lang != "yml" {
			continue
		}
		var doc map[string]any
		if err := yaml.Unmarshal([]byte(block.body), &doc); err != nil {
			continue
		}
		c, ok := yamlToCandidate(doc)
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func yamlToCandidate(doc map[string]any) (candidate, bool) {
	var name string
	var nameKey string
	for _, key := range []string{"tool", "function", "action"} {
		if v, ok := doc[key].(string); ok && v != "" {
			name, nameKey = v, key
			break
		}
	}
	if name == "" {
		return candidate{}, false
	}

	for _, key := range []string{"arguments", "args", "parameters", "input"} {
		if v, ok := doc[key].(map[string]any); ok {
			return candidate{name: name, args: v}, true
		}
	}

	// Remaining top-level keys are the args
	args := map[string]any{}
	for k, v := range doc {
		if k == nameKey {
			continue
		}
		args[k] = v
	}
	return candidate{name: name, args: args}, true
}

// 15. Wrapped arrays and raw top-of-line JSON arrays.
func extractWrappedArrays(text string) ([]candidate, error) {
	var out []candidate
	for _, pattern := range wrappedArrayPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			body := strings.TrimSpace(m[1])
			var decoded any
			if err := json.Unmarshal([]byte(body), &decoded); err != nil {
				return nil, fmt.Errorf("malformed JSON in tool calls array block: %w", err)
			}
			found, err := normalizeAny(decoded)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		}
	}

	// Raw array starting a line at column zero
	stripped := stripFences(text)
	for _, line := range strings.Split(stripped, "\n") {
		if !strings.HasPrefix(line, "[") {
			continue
		}
		body, ok := balancedBrackets(stripped[strings.Index(stripped, line):], 0)
		if !ok {
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(body), &decoded); err != nil {
			continue
		}
		found, err := normalizeAny(decoded)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
		break
	}
	return out, nil
}

// 16. Special tokens: <|tool_call|>{…}<|/tool_call|> and
// [TOOL_CALL]…[/TOOL_CALL].
func extractSpecialTokens(text string) ([]candidate, error) {
	var out []candidate
	for _, pattern := range []*regexp.Regexp{specialTokenPattern, bracketTokenPattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			body := strings.TrimSpace(m[1])
			if body == "" {
				continue
			}
			var decoded any
			if err := json.Unmarshal([]byte(body), &decoded); err != nil {
				return nil, fmt.Errorf("malformed JSON in tool call token block: %w", err)
			}
			found, err := normalizeAny(decoded)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		}
	}
	return out, nil
}

// 17. Directive: Use: N / With: {…} (also Call/Execute/Run).
func extractDirective(text string) ([]candidate, error) {
	stripped := stripFences(text)
	m := directivePattern.FindStringSubmatch(stripped)
	if m == nil {
		return nil, nil
	}
	name := m[1]

	args := map[string]any{}
	if loc := directiveWith.FindStringIndex(stripped); loc != nil {
		raw := strings.TrimSpace(stripped[loc[1]:])
		if strings.HasPrefix(raw, "{") {
			body, ok := balancedBraces(raw, 0)
			if !ok {
				return nil, fmt.Errorf("malformed JSON in With: block for tool %s: unbalanced braces", name)
			}
			if err := json.Unmarshal([]byte(body), &args); err != nil {
				return nil, fmt.Errorf("malformed JSON in With: block for tool %s: %w", name, err)
			}
		}
	}
	return []candidate{{name: name, args: args}}, nil
}

// 18. Markdown: ## Tool: N followed by ### Arguments: and a fenced block.
func extractMarkdownTool(text string) ([]candidate, error) {
	toolMatch := markdownToolPattern.FindStringSubmatchIndex(text)
	if toolMatch == nil {
		return nil, nil
	}
	name := strings.TrimSpace(text[toolMatch[2]:toolMatch[3]])
	rest := text[toolMatch[1]:]

	args := map[string]any{}
	if argsLoc := markdownArgsPattern.FindStringIndex(rest); argsLoc != nil {
		blocks := fencedBlocks(rest[argsLoc[1]:])
		if len(blocks) > 0 && strings.HasPrefix(blocks[0].body, "{") {
			if err := json.Unmarshal([]byte(blocks[0].body), &args); err != nil {
				return nil, fmt.Errorf("malformed JSON arguments for tool %s: %w", name, err)
			}
		}
	}
	return []candidate{{name: name, args: args}}, nil
}

// 19. Simple KV: the whole message is `tool: N` followed by `k: v` lines.
func extractSimpleKV(text string) ([]candidate, error) {
	lines := strings.Split(strings.TrimSpace(stripFences(text)), "\n")
	if len(lines) == 0 {
		return nil, nil
	}

	first := kvLinePattern.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if first == nil || first[1] != "tool" || strings.TrimSpace(first[2]) == "" {
		return nil, nil
	}
	name := strings.TrimSpace(first[2])
	if !toolNameIdent.MatchString(name) {
		return nil, nil
	}

	args := map[string]any{}
	for _, rawLine := range lines[1:] {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		kv := kvLinePattern.FindStringSubmatch(line)
		if kv == nil {
			// Prose after the block means this is not KV format
			return nil, nil
		}
		args[kv[1]] = parseScalar(strings.TrimSpace(kv[2]))
	}
	return []candidate{{name: name, args: args}}, nil
}

// parseScalar decodes a scalar value the way JSON would, falling back to the
// raw string.
func parseScalar(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

// balancedBraces returns the balanced {…} substring starting at start,
// respecting JSON string literals.
func balancedBraces(s string, start int) (string, bool) {
	return balanced(s, start, '{', '}')
}

func balancedBrackets(s string, start int) (string, bool) {
	return balanced(s, start, '[', ']')
}

func balanced(s string, start int, openCh, closeCh byte) (string, bool) {
	if start < 0 || start >= len(s) || s[start] != openCh {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
