package artist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestNotes checks the notes accessor: pending value wins, then the page
body, then empty.
*/
func TestNotes(t *testing.T) {
	f := newFixture(t)

	a := &Artist{Name: "reimu"}
	notes, err := f.service.Notes(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "", notes, "no page, no notes")

	f.wikis.seed("reimu", "Shrine maiden.")
	notes, err = f.service.Notes(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "Shrine maiden.", notes)

	pending := "Unsaved draft."
	a.pendingNotes = &pending
	notes, err = f.service.Notes(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "Unsaved draft.", notes, "pending write shadows the page")
}

/*
TestSyncWiki_RenameMerge covers the rename collision: when a page already
exists under the new name, pending notes are merged into it instead of
clobbering its body.
*/
func TestSyncWiki_RenameMerge(t *testing.T) {
	f := newFixture(t)
	a := f.repo.seed(&Artist{Name: "reimu", IsActive: true})
	f.wikis.seed("reimu", "Old page.")
	f.wikis.seed("hakurei_reimu", "Existing target page.")

	_, err := f.service.UpdateArtist(context.Background(), a.ID, UpdateInput{
		Name:  strPtr("hakurei_reimu"),
		Notes: strPtr("Merged notes."),
	}, janitor())
	require.NoError(t, err)

	target, _ := f.wikis.FindByTitle(context.Background(), "hakurei_reimu")
	require.NotNil(t, target)
	assert.Equal(t, "Existing target page.\n\nMerged notes.", target.Body)

	// The old page stays where it was; only the body merge happened.
	old, _ := f.wikis.FindByTitle(context.Background(), "reimu")
	assert.NotNil(t, old)
}

/*
TestSyncWiki_EmptyNotes verifies that an empty notes write on an artist
without a page does not create one.
*/
func TestSyncWiki_EmptyNotes(t *testing.T) {
	f := newFixture(t)
	a := f.repo.seed(&Artist{Name: "reimu", IsActive: true})

	_, err := f.service.UpdateArtist(context.Background(), a.ID, UpdateInput{
		Notes: strPtr(""),
	}, member())
	require.NoError(t, err)

	assert.Empty(t, f.wikis.creates)
	assert.Empty(t, f.repo.createdVersions, "writing empty notes to nothing is a no-op")
}

/*
TestSyncWiki_FailureIsSwallowed verifies that a wiki storage failure never
fails the save that triggered it.
*/
func TestSyncWiki_FailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	a := f.repo.seed(&Artist{Name: "reimu", IsActive: true})
	f.wikis.seed("reimu", "Old notes.")
	f.wikis.updateErr = errFake("wiki store down")

	_, err := f.service.UpdateArtist(context.Background(), a.ID, UpdateInput{
		Notes: strPtr("New notes."),
	}, member())
	require.NoError(t, err)
	require.Len(t, f.repo.createdVersions, 1, "the save committed with its snapshot")
}
