package artist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/atelier/internal/core/implication"
	"github.com/taibuivan/atelier/internal/core/modaction"
	"github.com/taibuivan/atelier/internal/core/post"
	"github.com/taibuivan/atelier/internal/platform/database/schema"
	"github.com/taibuivan/atelier/internal/platform/dberr"
	"github.com/taibuivan/atelier/internal/platform/postgres"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var artistColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.GroupName,
	schema.CoreArtist.OtherNames, schema.CoreArtist.IsActive, schema.CoreArtist.IsBanned,
	schema.CoreArtist.IsLocked, schema.CoreArtist.CreatorID,
	schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
)

func scanArtist(row pgx.Row) (*Artist, error) {
	a := &Artist{}
	err := row.Scan(
		&a.ID, &a.Name, &a.GroupName, &a.OtherNames,
		&a.IsActive, &a.IsBanned, &a.IsLocked, &a.CreatorID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		artistColumns, schema.CoreArtist.Table, schema.CoreArtist.ID,
	)

	a, err := scanArtist(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}

	if err := repository.loadURLs(context, repository.pool, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) GetByName(context context.Context, name string) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		artistColumns, schema.CoreArtist.Table, schema.CoreArtist.Name,
	)

	a, err := scanArtist(repository.pool.QueryRow(context, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist_by_name")
	}

	if err := repository.loadURLs(context, repository.pool, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) loadURLs(context context.Context, db postgres.Querier, a *Artist) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s ASC
	`,
		schema.CoreArtistURL.ID, schema.CoreArtistURL.ArtistID, schema.CoreArtistURL.URL,
		schema.CoreArtistURL.NormalizedURL, schema.CoreArtistURL.IsActive,
		schema.CoreArtistURL.Priority, schema.CoreArtistURL.CreatedAt,
		schema.CoreArtistURL.Table, schema.CoreArtistURL.ArtistID,
		schema.CoreArtistURL.Priority, schema.CoreArtistURL.URL,
	)

	rows, err := db.Query(context, query, a.ID)
	if err != nil {
		return dberr.Wrap(err, "load_artist_urls")
	}
	defer rows.Close()

	a.URLs = nil
	for rows.Next() {
		u := &URL{}
		if err := rows.Scan(&u.ID, &u.ArtistID, &u.URL, &u.NormalizedURL, &u.IsActive, &u.Priority, &u.CreatedAt); err != nil {
			return dberr.Wrap(err, "scan_artist_url")
		}
		a.URLs = append(a.URLs, u)
	}
	return rows.Err()
}

// Create inserts the artist row, its URL collection, and the initial
// version snapshot as one transaction.
func (repository *PostgresRepository) Create(context context.Context, a *Artist, version *Version) error {
	err := pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			RETURNING %s, %s, %s
		`,
			schema.CoreArtist.Table,
			schema.CoreArtist.Name, schema.CoreArtist.GroupName, schema.CoreArtist.OtherNames,
			schema.CoreArtist.IsActive, schema.CoreArtist.IsBanned, schema.CoreArtist.IsLocked,
			schema.CoreArtist.CreatorID, schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
			schema.CoreArtist.ID, schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
		)

		err := tx.QueryRow(context, query,
			a.Name, a.GroupName, a.OtherNames, a.IsActive, a.IsBanned, a.IsLocked, a.CreatorID,
		).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return err
		}

		if err := replaceURLs(context, tx, a); err != nil {
			return err
		}
		if version != nil {
			version.ArtistID = a.ID
			return insertVersion(context, tx, version)
		}
		return nil
	})
	return dberr.Wrap(err, "create_artist")
}

// Update rewrites the artist row, replaces its URL collection wholesale,
// and appends the version snapshot when one is due — all in one
// transaction, so the snapshot commits or aborts with the primary change.
func (repository *PostgresRepository) Update(context context.Context, a *Artist, version *Version) error {
	err := pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
			WHERE %s = $1
			RETURNING %s
		`,
			schema.CoreArtist.Table,
			schema.CoreArtist.Name, schema.CoreArtist.GroupName, schema.CoreArtist.OtherNames,
			schema.CoreArtist.IsActive, schema.CoreArtist.IsBanned, schema.CoreArtist.IsLocked,
			schema.CoreArtist.UpdatedAt,
			schema.CoreArtist.ID, schema.CoreArtist.UpdatedAt,
		)

		err := tx.QueryRow(context, query,
			a.ID, a.Name, a.GroupName, a.OtherNames, a.IsActive, a.IsBanned, a.IsLocked,
		).Scan(&a.UpdatedAt)
		if err != nil {
			return err
		}

		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
			schema.CoreArtistURL.Table, schema.CoreArtistURL.ArtistID,
		)
		if _, err := tx.Exec(context, deleteQuery, a.ID); err != nil {
			return err
		}

		if err := replaceURLs(context, tx, a); err != nil {
			return err
		}
		if version != nil {
			return insertVersion(context, tx, version)
		}
		return nil
	})
	return dberr.Wrap(err, "update_artist")
}

func replaceURLs(context context.Context, tx pgx.Tx, a *Artist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		schema.CoreArtistURL.Table,
		schema.CoreArtistURL.ArtistID, schema.CoreArtistURL.URL, schema.CoreArtistURL.NormalizedURL,
		schema.CoreArtistURL.IsActive, schema.CoreArtistURL.Priority,
		schema.CoreArtistURL.CreatedAt,
		schema.CoreArtistURL.ID, schema.CoreArtistURL.CreatedAt,
	)

	for _, u := range a.URLs {
		u.ArtistID = a.ID
		err := tx.QueryRow(context, query, a.ID, u.URL, u.NormalizedURL, u.IsActive, u.Priority).
			Scan(&u.ID, &u.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertVersion(context context.Context, tx pgx.Tx, version *Version) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING %s, %s
	`,
		schema.CoreArtistVersion.Table,
		schema.CoreArtistVersion.ArtistID, schema.CoreArtistVersion.Name, schema.CoreArtistVersion.UpdaterID,
		schema.CoreArtistVersion.URLs, schema.CoreArtistVersion.IsActive, schema.CoreArtistVersion.IsBanned,
		schema.CoreArtistVersion.OtherNames, schema.CoreArtistVersion.GroupName, schema.CoreArtistVersion.NotesChanged,
		schema.CoreArtistVersion.CreatedAt,
		schema.CoreArtistVersion.ID, schema.CoreArtistVersion.CreatedAt,
	)

	return tx.QueryRow(context, query,
		version.ArtistID, version.Name, version.UpdaterID, version.URLs,
		version.IsActive, version.IsBanned, version.OtherNames, version.GroupName, version.NotesChanged,
	).Scan(&version.ID, &version.CreatedAt)
}

func (repository *PostgresRepository) FindActiveByURLPrefix(context context.Context, pattern string, limit int) ([]*Artist, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s u ON u.%s = a.%s
		WHERE a.%s = TRUE AND u.%s LIKE $1 ESCAPE '\'
		ORDER BY a.%s
		LIMIT $2
	`,
		schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.GroupName,
		schema.CoreArtist.OtherNames, schema.CoreArtist.IsActive, schema.CoreArtist.IsBanned,
		schema.CoreArtist.IsLocked, schema.CoreArtist.CreatorID,
		schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
		schema.CoreArtist.Table,
		schema.CoreArtistURL.Table, schema.CoreArtistURL.ArtistID, schema.CoreArtist.ID,
		schema.CoreArtist.IsActive, schema.CoreArtistURL.NormalizedURL,
		schema.CoreArtist.Name,
	)

	rows, err := repository.pool.Query(context, query, pattern, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "find_artists_by_url_prefix")
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a := &Artist{}
		err := rows.Scan(
			&a.ID, &a.Name, &a.GroupName, &a.OtherNames,
			&a.IsActive, &a.IsBanned, &a.IsLocked, &a.CreatorID,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

var versionColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
	schema.CoreArtistVersion.ID, schema.CoreArtistVersion.ArtistID, schema.CoreArtistVersion.Name,
	schema.CoreArtistVersion.UpdaterID, schema.CoreArtistVersion.URLs,
	schema.CoreArtistVersion.IsActive, schema.CoreArtistVersion.IsBanned,
	schema.CoreArtistVersion.OtherNames, schema.CoreArtistVersion.GroupName,
	schema.CoreArtistVersion.NotesChanged, schema.CoreArtistVersion.CreatedAt,
)

func scanVersion(row pgx.Row) (*Version, error) {
	version := &Version{}
	err := row.Scan(
		&version.ID, &version.ArtistID, &version.Name, &version.UpdaterID, &version.URLs,
		&version.IsActive, &version.IsBanned, &version.OtherNames, &version.GroupName,
		&version.NotesChanged, &version.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return version, nil
}

func (repository *PostgresRepository) GetVersion(context context.Context, versionID int) (*Version, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		versionColumns, schema.CoreArtistVersion.Table, schema.CoreArtistVersion.ID,
	)

	version, err := scanVersion(repository.pool.QueryRow(context, query, versionID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist_version")
	}
	return version, nil
}

func (repository *PostgresRepository) ListVersions(context context.Context, artistID, limit, offset int) ([]*Version, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.CoreArtistVersion.Table, schema.CoreArtistVersion.ArtistID,
	)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, artistID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artist_versions")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT $2 OFFSET $3`,
		versionColumns, schema.CoreArtistVersion.Table,
		schema.CoreArtistVersion.ArtistID, schema.CoreArtistVersion.ID,
	)

	rows, err := repository.pool.Query(context, query, artistID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artist_versions")
	}
	defer rows.Close()

	var versions []*Version
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artist_version")
		}
		versions = append(versions, version)
	}
	return versions, total, rows.Err()
}

func (repository *PostgresRepository) SetBanned(context context.Context, id int, banned bool) error {
	return setBanned(context, repository.pool, id, banned)
}

// setBanned force-writes the banned flag through whatever querier it is
// given, bypassing the normal save path.
func setBanned(context context.Context, db postgres.Querier, id int, banned bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.CoreArtist.Table, schema.CoreArtist.IsBanned,
		schema.CoreArtist.UpdatedAt, schema.CoreArtist.ID,
	)

	cmd, err := db.Exec(context, query, id, banned)
	if err != nil {
		return dberr.Wrap(err, "set_artist_banned")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// txBanWriter is the transaction-scoped [BanWriter].
type txBanWriter struct {
	tx pgx.Tx
}

func (w txBanWriter) SetBanned(context context.Context, id int, banned bool) error {
	return setBanned(context, w.tx, id, banned)
}

// PostgresTxRunner materializes [TxRunner] over a pgx transaction,
// handing the callback repositories bound to that transaction.
type PostgresTxRunner struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresTxRunner(pool *pgxpool.Pool, logger *slog.Logger) *PostgresTxRunner {
	return &PostgresTxRunner{pool: pool, logger: logger}
}

func (runner *PostgresTxRunner) RunInTx(context context.Context, fn func(context context.Context, repos TxRepos) error) error {
	return pgx.BeginFunc(context, runner.pool, func(tx pgx.Tx) error {
		repos := TxRepos{
			Artists:      txBanWriter{tx: tx},
			Implications: implication.NewPostgresRepository(tx),
			Posts:        post.NewPostgresRepository(tx),
			ModLog:       modaction.NewLogger(tx, runner.logger),
		}
		return fn(context, repos)
	})
}
