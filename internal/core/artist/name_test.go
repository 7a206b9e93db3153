package artist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestNormalizeNames covers alias canonicalization: normalization,
deduplication with insertion order, removal of the canonical name, and the
alias cap.
*/
func TestNormalizeNames(t *testing.T) {
	t.Run("normalizes_and_dedupes", func(t *testing.T) {
		a := &Artist{
			Name:       "Hakurei Reimu",
			OtherNames: []string{"Miko", "miko", "shrine maiden", ""},
		}
		a.normalizeNames()

		assert.Equal(t, "hakurei_reimu", a.Name)
		assert.Equal(t, []string{"miko", "shrine_maiden"}, a.OtherNames)
	})

	t.Run("drops_canonical_name_from_aliases", func(t *testing.T) {
		a := &Artist{
			Name:       "reimu",
			OtherNames: []string{"Reimu", "miko"},
		}
		a.normalizeNames()

		assert.Equal(t, []string{"miko"}, a.OtherNames)
	})

	t.Run("caps_alias_count", func(t *testing.T) {
		var aliases []string
		for i := 0; i < 40; i++ {
			aliases = append(aliases, fmt.Sprintf("alias_%d", i))
		}

		a := &Artist{Name: "x", OtherNames: aliases}
		a.normalizeNames()

		assert.Len(t, a.OtherNames, 26)
	})
}

/*
TestStatus checks the derived display status for every flag combination.
*/
func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		isActive bool
		isBanned bool
		want     string
	}{
		{"active", true, false, "Active"},
		{"deleted", false, false, "Deleted"},
		{"banned", true, true, "Banned"},
		{"banned_deleted", false, true, "Banned Deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Artist{IsActive: tt.isActive, IsBanned: tt.isBanned}
			assert.Equal(t, tt.want, a.Status())
		})
	}
}
