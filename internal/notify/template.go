// Package notify renders and delivers booking confirmations.
package notify

import "strings"

// Tokens the confirmation template may carry. Substitution is literal:
// a token with no matching variable stays verbatim in the output.
var templateTokens = []string{
	"name",
	"service",
	"stylist",
	"date",
	"time",
	"salon_phone",
	"salon_location",
}

// DefaultSubject is used when no subject is configured.
const DefaultSubject = "Your appointment is confirmed"

// DefaultTemplate is the baked-in confirmation body used when no
// template is configured externally.
const DefaultTemplate = `Hi {{name}},

Your {{service}} appointment with {{stylist}} is confirmed for {{date}} at {{time}}.

If you need to reschedule, call us at {{salon_phone}}.
See you at {{salon_location}}!
`

// Render substitutes the fixed template tokens with the given
// variables. Every occurrence of a matched token is replaced, repeats
// included; unmatched tokens are left unchanged and unknown variable
// keys are ignored.
func Render(template string, vars map[string]string) string {
	out := template
	for _, token := range templateTokens {
		value, ok := vars[token]
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, "{{"+token+"}}", value)
	}
	return out
}
