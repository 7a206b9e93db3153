package artist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/atelier/internal/core/implication"
	"github.com/taibuivan/atelier/internal/core/modaction"
	"github.com/taibuivan/atelier/internal/core/post"
	"github.com/taibuivan/atelier/internal/platform/constants"
)

/*
TestBanArtist verifies the ban workflow: the avoid_posting implication is
created and approved, the flag is force-set, and the action is logged —
all through the transaction runner.
*/
func TestBanArtist(t *testing.T) {
	t.Run("creates_approved_implication_and_sets_flag", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "bad_actor", IsActive: true})

		require.NoError(t, f.service.BanArtist(context.Background(), a.ID, janitor()))

		record, err := f.implications.Find(context.Background(), "bad_actor", constants.AvoidPostingTag)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, implication.StatusActive, record.Status)
		require.NotNil(t, record.ApproverID)
		assert.Equal(t, janitor().UserID, *record.ApproverID)

		assert.True(t, a.IsBanned)
		assert.Equal(t, 1, f.tx.runs)
		assert.Contains(t, f.modlog.kinds(), modaction.KindArtistBan)
	})

	t.Run("existing_implication_reused", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "bad_actor", IsActive: true})
		existing, err := f.implications.Create(context.Background(), "bad_actor", constants.AvoidPostingTag)
		require.NoError(t, err)

		require.NoError(t, f.service.BanArtist(context.Background(), a.ID, janitor()))

		record, _ := f.implications.Find(context.Background(), "bad_actor", constants.AvoidPostingTag)
		require.NotNil(t, record)
		assert.Equal(t, existing.ID, record.ID, "no second implication created")
		assert.True(t, a.IsBanned)
	})

	t.Run("ban_is_idempotent", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "bad_actor", IsActive: true, IsBanned: true})

		require.NoError(t, f.service.BanArtist(context.Background(), a.ID, janitor()))
		assert.True(t, a.IsBanned)
	})
}

/*
TestUnbanArtist verifies the unban workflow: the implication is removed,
the avoid_posting token is stripped from tagged works, and the flag is
cleared. Tag-strip failures never block the flag flip.
*/
func TestUnbanArtist(t *testing.T) {
	t.Run("removes_implication_and_strips_tags", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "redeemed", IsActive: true, IsBanned: true})
		record, err := f.implications.Create(context.Background(), "redeemed", constants.AvoidPostingTag)
		require.NoError(t, err)

		f.posts.works = []*post.Work{
			{ID: 1, TagString: "redeemed avoid_posting landscape"},
			{ID: 2, TagString: "redeemed landscape"},
			{ID: 3, TagString: "someone_else avoid_posting"},
		}

		require.NoError(t, f.service.UnbanArtist(context.Background(), a.ID, janitor()))

		gone, _ := f.implications.Find(context.Background(), "redeemed", constants.AvoidPostingTag)
		assert.Nil(t, gone)
		assert.Contains(t, f.implications.deleted, record.ID)

		assert.Equal(t, "redeemed landscape", f.posts.works[0].TagString)
		assert.Equal(t, "redeemed landscape", f.posts.works[1].TagString)
		assert.Equal(t, "someone_else avoid_posting", f.posts.works[2].TagString, "untagged works untouched")
		assert.Len(t, f.posts.tagWrites, 1, "only the work that changed is rewritten")

		assert.False(t, a.IsBanned)
		assert.Contains(t, f.modlog.kinds(), modaction.KindArtistUnban)
	})

	t.Run("unban_without_implication_succeeds", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "redeemed", IsActive: true, IsBanned: true})

		require.NoError(t, f.service.UnbanArtist(context.Background(), a.ID, janitor()))
		assert.False(t, a.IsBanned)
	})

	t.Run("tag_lookup_failure_is_swallowed", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "redeemed", IsActive: true, IsBanned: true})
		f.posts.findErr = errFake("post store down")

		require.NoError(t, f.service.UnbanArtist(context.Background(), a.ID, janitor()))
		assert.False(t, a.IsBanned, "flag flip proceeds despite the strip failure")
	})

	t.Run("tag_write_failure_is_swallowed", func(t *testing.T) {
		f := newFixture(t)
		a := f.repo.seed(&Artist{Name: "redeemed", IsActive: true, IsBanned: true})
		f.posts.works = []*post.Work{{ID: 1, TagString: "redeemed avoid_posting"}}
		f.posts.updateErr = errFake("write refused")

		require.NoError(t, f.service.UnbanArtist(context.Background(), a.ID, janitor()))
		assert.False(t, a.IsBanned)
	})
}

/*
TestStripTagToken checks literal token removal from a tag string.
*/
func TestStripTagToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"removes_token", "a avoid_posting b", "a b"},
		{"token_absent", "a b", "a b"},
		{"no_partial_match", "avoid_posting2 a", "avoid_posting2 a"},
		{"repeated_token", "avoid_posting a avoid_posting", "a"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripTagToken(tt.input, "avoid_posting"))
		})
	}
}
