package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables in config content using Go
// template syntax, {{.VAR_NAME}}, rather than $VAR. Cascade files are full of
// literal dollar signs (regex anchors like ^secret.*$, shell snippets in
// instructions, prices in prompts) that $-style expansion would mangle.
//
//	{{.WINDLASS_PROVIDER_API_KEY}}      -> the variable's value
//	{{.DB_HOST}}:{{.DB_PORT}}           -> both expanded
//	pattern: "user_${USER_ID}_.*"       -> left untouched
//
// An unset variable expands to the empty string; validation downstream flags
// required fields that end up empty. Content that fails to parse or execute
// as a template is returned unchanged so plain YAML always passes through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		// Split on the first = only; values may contain = themselves.
		if idx := strings.IndexByte(kv, '='); idx > 0 {
			env[kv[:idx]] = kv[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
