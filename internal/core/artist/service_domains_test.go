package artist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/atelier/internal/core/post"
)

/*
TestDomainHistogram covers the cache read-through and the histogram
computation over work sources.
*/
func TestDomainHistogram(t *testing.T) {
	t.Run("computes_and_caches", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "reimu", IsActive: true})
		f.posts.works = []*post.Work{
			{ID: 1, TagString: "reimu", Source: "https://www.pixiv.net/artworks/1"},
			{ID: 2, TagString: "reimu", Source: "https://www.pixiv.net/artworks/2\nhttps://twitter.com/reimu/status/9"},
			{ID: 3, TagString: "reimu", Source: "https://twitter.com/reimu/status/10"},
		}

		counts, err := f.service.DomainHistogram(context.Background(), a.ID)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, DomainCount{Domain: "pixiv.net", Count: 2}, counts[0])
		assert.Equal(t, DomainCount{Domain: "twitter.com", Count: 2}, counts[1])

		assert.Equal(t, 1, f.domains.sets, "result written to the cache")
	})

	t.Run("cache_hit_skips_recompute", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "reimu", IsActive: true})
		cached := []DomainCount{{Domain: "cached.example", Count: 7}}
		f.domains.entries[a.ID] = cached

		counts, err := f.service.DomainHistogram(context.Background(), a.ID)
		require.NoError(t, err)
		assert.Equal(t, cached, counts)
		assert.Equal(t, 0, f.domains.sets)
	})

	t.Run("cache_read_failure_falls_through", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "reimu", IsActive: true})
		f.domains.getErr = errFake("redis down")
		f.posts.works = []*post.Work{{ID: 1, TagString: "reimu", Source: "https://www.pixiv.net/artworks/1"}}

		counts, err := f.service.DomainHistogram(context.Background(), a.ID)
		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, "pixiv.net", counts[0].Domain)
	})
}

/*
TestCountSourceDomains checks per-work domain uniqueness, media file
exclusion, and ordering.
*/
func TestCountSourceDomains(t *testing.T) {
	t.Run("per_work_uniqueness", func(t *testing.T) {
		works := []*post.Work{
			{ID: 1, Source: "https://www.pixiv.net/a\nhttps://www.pixiv.net/b"},
		}
		counts := countSourceDomains(works)
		require.Len(t, counts, 1)
		assert.Equal(t, DomainCount{Domain: "pixiv.net", Count: 1}, counts[0])
	})

	t.Run("media_files_excluded", func(t *testing.T) {
		works := []*post.Work{
			{ID: 1, Source: "https://cdn.example.com/image.png\nhttps://cdn.example.com/clip.mp4\nhttps://gallery.example.com/view/1"},
		}
		counts := countSourceDomains(works)
		require.Len(t, counts, 1)
		assert.Equal(t, "example.com", counts[0].Domain)
	})

	t.Run("garbage_lines_skipped", func(t *testing.T) {
		works := []*post.Work{
			{ID: 1, Source: "not a url\n\n  \nhttps://site.example.org/x"},
		}
		counts := countSourceDomains(works)
		require.Len(t, counts, 1)
	})

	t.Run("ordering_count_desc_then_domain", func(t *testing.T) {
		works := []*post.Work{
			{ID: 1, Source: "https://bbb.example/x"},
			{ID: 2, Source: "https://bbb.example/y"},
			{ID: 3, Source: "https://aaa.example/x"},
			{ID: 4, Source: "https://ccc.example/x"},
		}
		counts := countSourceDomains(works)
		require.Len(t, counts, 3)
		assert.Equal(t, "bbb.example", counts[0].Domain)
		assert.Equal(t, "aaa.example", counts[1].Domain)
		assert.Equal(t, "ccc.example", counts[2].Domain)
	})
}
