package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesKnownTokens(t *testing.T) {
	out := Render("Hi {{name}}, your {{service}} is on {{date}} at {{time}}.", map[string]string{
		"name":    "Jess",
		"service": "Haircut",
		"date":    "2026-03-02",
		"time":    "10:00",
	})
	assert.Equal(t, "Hi Jess, your Haircut is on 2026-03-02 at 10:00.", out)
}

func TestRender_UnmatchedTokenStaysVerbatim(t *testing.T) {
	out := Render("Call {{salon_phone}} to change {{date}}.", map[string]string{
		"date": "2026-03-02",
	})
	assert.Equal(t, "Call {{salon_phone}} to change 2026-03-02.", out)
}

func TestRender_RepeatedTokenReplacedEverywhere(t *testing.T) {
	out := Render("{{name}} {{name}} {{name}}", map[string]string{"name": "Jess"})
	assert.Equal(t, "Jess Jess Jess", out)
}

func TestRender_UnknownVariableIgnored(t *testing.T) {
	out := Render("Hi {{name}}.", map[string]string{
		"name":     "Jess",
		"nickname": "JJ",
	})
	assert.Equal(t, "Hi Jess.", out)
}

func TestRender_DefaultTemplateFullyResolves(t *testing.T) {
	out := Render(DefaultTemplate, map[string]string{
		"name":           "Jess",
		"service":        "Haircut",
		"stylist":        "Ana",
		"date":           "2026-03-02",
		"time":           "10:00",
		"salon_phone":    "+1 555 0134",
		"salon_location": "12 High Street",
	})
	assert.NotContains(t, out, "{{")
	assert.Contains(t, out, "Hi Jess,")
	assert.Contains(t, out, "call us at +1 555 0134")
}
