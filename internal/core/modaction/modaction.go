// Package modaction records moderation events for the audit trail.
//
// Writes are fire-and-forget: a failed log entry is itself logged but never
// fails the moderation action that produced it.
package modaction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/taibuivan/atelier/internal/platform/database/schema"
	"github.com/taibuivan/atelier/internal/platform/postgres"
)

// Event kinds recorded by the artist registry.
const (
	KindArtistBan        = "artist_ban"
	KindArtistUnban      = "artist_unban"
	KindArtistPageRename = "artist_page_rename"
	KindArtistPageLock   = "artist_page_lock"
	KindArtistPageUnlock = "artist_page_unlock"
)

// Recorder is the narrow interface consumed by domain services.
type Recorder interface {
	Record(context context.Context, actorID, kind string, payload map[string]any)
}

// Logger writes moderation events to the system.modaction table.
type Logger struct {
	db     postgres.Querier
	logger *slog.Logger
}

func NewLogger(db postgres.Querier, logger *slog.Logger) *Logger {
	return &Logger{db: db, logger: logger}
}

// WithDB returns a copy of the logger bound to the given querier.
func (l *Logger) WithDB(db postgres.Querier) *Logger {
	return &Logger{db: db, logger: l.logger}
}

// Record inserts one moderation event. Failures are logged and swallowed.
func (l *Logger) Record(context context.Context, actorID, kind string, payload map[string]any) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		payloadJSON = []byte("{}")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
	`,
		schema.SystemModAction.Table,
		schema.SystemModAction.ActorID, schema.SystemModAction.Kind,
		schema.SystemModAction.Payload, schema.SystemModAction.CreatedAt,
	)

	if _, err := l.db.Exec(context, query, actorID, kind, payloadJSON); err != nil {
		l.logger.Error("modaction_write_failed",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}
}
