package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestEscapeTagForLike pins the literal-match escaping of the tag lookup.
Normalized artist tags contain underscores, which raw LIKE treats as a
single-character wildcard.
*/
func TestEscapeTagForLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "touhou", "touhou"},
		{"underscores", "hakurei_reimu", `hakurei\_reimu`},
		{"percent", "100%_orange", `100\%\_orange`},
		{"backslash", `a\b`, `a\\b`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeTagForLike(tc.in))
		})
	}
}
