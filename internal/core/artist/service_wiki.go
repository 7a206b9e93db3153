package artist

import (
	"context"
	"log/slog"

	"github.com/taibuivan/atelier/internal/core/wiki"
)

// Notes returns the artist's notes: the pending unsaved value when an edit
// is in flight, otherwise the body of the linked wiki page. An artist
// without a page has empty notes.
func (service *Service) Notes(context context.Context, a *Artist) (string, error) {
	if a.pendingNotes != nil {
		return *a.pendingNotes, nil
	}
	page, err := service.wikis.FindByTitle(context, a.Name)
	if err != nil {
		return "", err
	}
	if page == nil {
		return "", nil
	}
	return page.Body, nil
}

// stageNotes records a pending notes write on the artist and reports
// whether the notes actually changed. A write equal to the live page body,
// or an empty write with no page to back it, is a no-op.
func (service *Service) stageNotes(context context.Context, a *Artist, notes *string) bool {
	if notes == nil {
		return false
	}

	page, err := service.wikis.FindByTitle(context, a.Name)
	if err != nil {
		// If the page lookup fails we still honor the write; the sync
		// step will surface any persistent storage problem.
		service.logger.Warn("notes_lookup_failed", slog.Any("error", err))
		a.pendingNotes = notes
		return true
	}

	if page == nil && *notes == "" {
		return false
	}
	if page != nil && page.Body == *notes {
		return false
	}

	a.pendingNotes = notes
	return true
}

// syncWiki reconciles the artist's notes and name against the linked wiki
// page after a save. Best-effort: failures are logged, never raised, and
// the committed artist state is unaffected.
//
// The decision table, first match wins:
//
//  1. Renamed and a page titled with the old name exists: merge pending
//     notes into an existing new-name page, or retitle the old page.
//  2. No page for the current name: create one if there are pending notes.
//  3. A page exists but its body or title is out of date: update it.
func (service *Service) syncWiki(context context.Context, a *Artist, oldName string, pendingNotes *string) {
	renamed := oldName != "" && oldName != a.Name

	if renamed {
		oldPage, err := service.wikis.FindByTitle(context, oldName)
		if err != nil {
			service.wikiSyncFailed(context, a, err)
			return
		}
		if oldPage != nil {
			newPage, err := service.wikis.FindByTitle(context, a.Name)
			if err != nil {
				service.wikiSyncFailed(context, a, err)
				return
			}
			if newPage != nil {
				// A page already exists under the new name; merge the
				// pending notes into its body rather than clobbering it.
				merged := newPage.Body
				if pendingNotes != nil {
					merged = merged + "\n\n" + *pendingNotes
				}
				err = service.wikis.Update(context, newPage.ID, wiki.UpdateFields{Body: &merged})
			} else {
				// Carry the old page over to the new name.
				err = service.wikis.Update(context, oldPage.ID, wiki.UpdateFields{Title: &a.Name, Body: pendingNotes})
			}
			if err != nil {
				service.wikiSyncFailed(context, a, err)
			}
			return
		}
	}

	page, err := service.wikis.FindByTitle(context, a.Name)
	if err != nil {
		service.wikiSyncFailed(context, a, err)
		return
	}

	if page == nil {
		if pendingNotes != nil && *pendingNotes != "" {
			if _, err := service.wikis.Create(context, a.Name, *pendingNotes); err != nil {
				service.wikiSyncFailed(context, a, err)
			}
		}
		return
	}

	bodyStale := pendingNotes != nil && page.Body != *pendingNotes
	if bodyStale || page.Title != a.Name {
		fields := wiki.UpdateFields{Title: &a.Name}
		if pendingNotes != nil {
			fields.Body = pendingNotes
		}
		if err := service.wikis.Update(context, page.ID, fields); err != nil {
			service.wikiSyncFailed(context, a, err)
		}
	}
}

// propagateLocked pushes the artist's lock flag onto the linked wiki page.
// No-op when no page exists; best-effort otherwise.
func (service *Service) propagateLocked(context context.Context, a *Artist) {
	page, err := service.wikis.FindByTitle(context, a.Name)
	if err != nil {
		service.wikiSyncFailed(context, a, err)
		return
	}
	if page == nil {
		return
	}

	locked := a.IsLocked
	if err := service.wikis.Update(context, page.ID, wiki.UpdateFields{IsLocked: &locked}); err != nil {
		service.wikiSyncFailed(context, a, err)
	}
}

func (service *Service) wikiSyncFailed(context context.Context, a *Artist, err error) {
	service.logger.Error("wiki_sync_failed",
		slog.Int("artist_id", a.ID),
		slog.String("name", a.Name),
		slog.Any("error", err),
	)
}
