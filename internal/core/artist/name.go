package artist

import (
	"slices"

	"github.com/taibuivan/atelier/pkg/naming"
	"github.com/taibuivan/atelier/internal/platform/constants"
)

// normalizeNames canonicalizes the artist's name and alias list in place.
// Runs before validation on every save.
//
// After normalization the alias list is deduplicated (insertion order
// preserved), has the canonical name removed, and is capped at
// [constants.MaxOtherNames] entries.
func (a *Artist) normalizeNames() {
	a.Name = naming.Normalize(a.Name)

	normalized := make([]string, 0, len(a.OtherNames))
	for _, other := range a.OtherNames {
		candidate := naming.Normalize(other)
		if candidate == "" || candidate == a.Name {
			continue
		}
		if slices.Contains(normalized, candidate) {
			continue
		}
		normalized = append(normalized, candidate)
	}

	if len(normalized) > constants.MaxOtherNames {
		normalized = normalized[:constants.MaxOtherNames]
	}
	a.OtherNames = normalized
}
