package artist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/atelier/internal/core/modaction"
	"github.com/taibuivan/atelier/internal/platform/constants"
	"github.com/taibuivan/atelier/internal/platform/sec"
)

// BanArtist bans an artist: within one transaction it ensures the forward
// implication (artist name -> avoid_posting) exists and is approved, then
// force-sets the banned flag.
//
// The existence check and the create are not serialized against concurrent
// bans; two racing bans may both pass the check. This is an accepted,
// documented race, kept narrow by the surrounding transaction.
func (service *Service) BanArtist(ctx context.Context, id int, actor *sec.AuthClaims) error {
	a, err := service.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	err = service.tx.RunInTx(ctx, func(ctx context.Context, repos TxRepos) error {
		existing, err := repos.Implications.Find(ctx, a.Name, constants.AvoidPostingTag)
		if err != nil {
			return err
		}
		if existing == nil {
			record, err := repos.Implications.Create(ctx, a.Name, constants.AvoidPostingTag)
			if err != nil {
				return err
			}
			if err := repos.Implications.Approve(ctx, record.ID, actor.UserID); err != nil {
				return err
			}
		}

		if err := repos.Artists.SetBanned(ctx, a.ID, true); err != nil {
			return err
		}

		repos.ModLog.Record(ctx, actor.UserID, modaction.KindArtistBan, map[string]any{"artist_id": a.ID})
		return nil
	})
	if err != nil {
		return err
	}

	service.logger.Info("artist_banned", slog.Int("artist_id", a.ID), slog.String("name", a.Name))
	return nil
}

// UnbanArtist reverses a ban: within one transaction it removes the
// avoid_posting implication, strips the avoid_posting token from every
// work tagged with the artist's name, and force-clears the banned flag.
//
// The work lookup and per-work tag rewrites are tolerated partial
// failures: an error there is logged and swallowed so the flag flip still
// commits. This is deliberate policy, not an oversight.
func (service *Service) UnbanArtist(ctx context.Context, id int, actor *sec.AuthClaims) error {
	a, err := service.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	err = service.tx.RunInTx(ctx, func(ctx context.Context, repos TxRepos) error {
		existing, err := repos.Implications.Find(ctx, a.Name, constants.AvoidPostingTag)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := repos.Implications.Delete(ctx, existing.ID); err != nil {
				return err
			}
		}

		service.stripAvoidPosting(ctx, repos, a.Name)

		if err := repos.Artists.SetBanned(ctx, a.ID, false); err != nil {
			return err
		}

		repos.ModLog.Record(ctx, actor.UserID, modaction.KindArtistUnban, map[string]any{"artist_id": a.ID})
		return nil
	})
	if err != nil {
		return err
	}

	service.logger.Info("artist_unbanned", slog.Int("artist_id", a.ID), slog.String("name", a.Name))
	return nil
}

// stripAvoidPosting removes the avoid_posting token from every work
// carrying the artist's tag. Errors are swallowed after logging.
func (service *Service) stripAvoidPosting(ctx context.Context, repos TxRepos, name string) {
	works, err := repos.Posts.FindByTag(ctx, name, 0)
	if err != nil {
		service.logger.Warn("unban_tag_strip_skipped",
			slog.String("name", name),
			slog.Any("error", err),
		)
		return
	}

	for _, work := range works {
		fixed := stripTagToken(work.TagString, constants.AvoidPostingTag)
		if fixed == work.TagString {
			continue
		}
		if err := repos.Posts.UpdateTags(ctx, work.ID, fixed); err != nil {
			service.logger.Warn("unban_tag_strip_failed",
				slog.Int("work_id", work.ID),
				slog.Any("error", err),
			)
		}
	}
}

// stripTagToken removes every occurrence of the literal token from a space
// separated tag string.
func stripTagToken(tagString, token string) string {
	fields := strings.Fields(tagString)
	kept := fields[:0]
	for _, field := range fields {
		if field != token {
			kept = append(kept, field)
		}
	}
	return strings.Join(kept, " ")
}
