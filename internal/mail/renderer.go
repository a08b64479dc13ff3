package mail

import "strings"

// NotSpecified substitutes for declared variables that carry no value.
const NotSpecified = "not specified"

// Render substitutes {{name}} tokens in body. Every occurrence of a token
// with a supplied value is replaced (case-sensitive). Declared variables
// without a value become NotSpecified. Tokens that are neither supplied nor
// declared are left verbatim.
func Render(body string, values map[string]string, declared []string) string {
	out := body
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	for _, name := range declared {
		if _, ok := values[name]; ok {
			continue
		}
		out = strings.ReplaceAll(out, "{{"+name+"}}", NotSpecified)
	}
	return out
}

// ToHTML converts plain-text line breaks to <br> markup for HTML delivery.
// The result contains no newlines, so re-applying it is a no-op.
func ToHTML(body string) string {
	return strings.ReplaceAll(body, "\n", "<br>")
}
