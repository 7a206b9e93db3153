package artist

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestFindArtists covers resolver behavior: direct prefix hits, progressive
truncation toward the site root, the denylist stop, deduplication, and the
result cap.
*/
func TestFindArtists(t *testing.T) {
	t.Run("direct_prefix_match", func(t *testing.T) {
		f := newFixture(t)
		reimu := f.repo.seed(&Artist{Name: "reimu", IsActive: true})
		f.repo.prefixMatches["http://artistsite.example/gallery/%"] = []*Artist{reimu}

		found, err := f.service.FindArtists(context.Background(), "https://ArtistSite.example/gallery")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "reimu", found[0].Name)
	})

	t.Run("truncates_to_parent_path", func(t *testing.T) {
		f := newFixture(t)
		marisa := f.repo.seed(&Artist{Name: "marisa", IsActive: true})
		f.repo.prefixMatches["http://artistsite.example/users/99/%"] = []*Artist{marisa}

		found, err := f.service.FindArtists(context.Background(), "http://artistsite.example/users/99/artworks/12345")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "marisa", found[0].Name)

		// The deepest probe runs first, then its parents.
		require.GreaterOrEqual(t, len(f.repo.prefixQueries), 2)
		assert.Equal(t, "http://artistsite.example/users/99/artworks/12345/%", f.repo.prefixQueries[0])
	})

	t.Run("stops_at_denylisted_domain", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.FindArtists(context.Background(), "https://www.pixiv.net/member.php?id=123")
		require.NoError(t, err)

		// Probes walk up the path but never query the bare pixiv.net root.
		for _, pattern := range f.repo.prefixQueries {
			assert.NotEqual(t, `http://www.pixiv.net/%`, pattern)
		}
	})

	t.Run("deep_path_on_denylisted_domain_still_matches", func(t *testing.T) {
		f := newFixture(t)
		zun := f.repo.seed(&Artist{Name: "zun", IsActive: true})
		f.repo.prefixMatches["http://www.pixiv.net/member.php?id=123/%"] = []*Artist{zun}

		// The denylist only stops truncation; a stored URL on a shared
		// hosting domain is matched at full depth first.
		found, err := f.service.FindArtists(context.Background(), "https://www.pixiv.net/member.php?id=123")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "zun", found[0].Name)
	})

	t.Run("no_match_returns_empty", func(t *testing.T) {
		f := newFixture(t)

		found, err := f.service.FindArtists(context.Background(), "http://unknown.example/someone")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("dedupes_and_sorts_by_name", func(t *testing.T) {
		f := newFixture(t)
		zun := f.repo.seed(&Artist{Name: "zun", IsActive: true})
		alice := f.repo.seed(&Artist{Name: "alice", IsActive: true})
		f.repo.prefixMatches["http://artistsite.example/shared/%"] = []*Artist{zun, alice, zun}

		found, err := f.service.FindArtists(context.Background(), "http://artistsite.example/shared")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "alice", found[0].Name)
		assert.Equal(t, "zun", found[1].Name)
	})

}

/*
TestDedupeByName checks name-level deduplication, the result cap, and the
final name ordering.
*/
func TestDedupeByName(t *testing.T) {
	var crowd []*Artist
	for i := 0; i < 30; i++ {
		crowd = append(crowd, &Artist{Name: fmt.Sprintf("artist_%02d", i)})
	}
	crowd = append(crowd, crowd[0])

	distinct := dedupeByName(crowd, 20)
	assert.Len(t, distinct, 20)
	assert.Equal(t, "artist_00", distinct[0].Name)
	assert.Equal(t, "artist_19", distinct[19].Name)
}

/*
TestParentPath checks single-step path truncation.
*/
func TestParentPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"http://a.example/b/c/", "http://a.example/b/"},
		{"http://a.example/b/", "http://a.example/"},
		{"http://a.example/", "http://"},
		{"nohost", "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parentPath(tt.input), "input %q", tt.input)
	}
}

/*
TestEscapeForLike verifies LIKE metacharacters are matched literally.
*/
func TestEscapeForLike(t *testing.T) {
	assert.Equal(t, `http://a.example/100\%/`, escapeForLike("http://a.example/100%/"))
	assert.Equal(t, `http://a.example/a\_b/`, escapeForLike("http://a.example/a_b/"))
	assert.Equal(t, `c:\\dir`, escapeForLike(`c:\dir`))
}
