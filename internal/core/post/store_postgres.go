package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/atelier/internal/platform/database/schema"
	"github.com/taibuivan/atelier/internal/platform/dberr"
	"github.com/taibuivan/atelier/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// WithDB returns a copy of the repository bound to the given querier.
func (repository *PostgresRepository) WithDB(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// escapeTagForLike escapes LIKE metacharacters so the tag matches
// literally. Normalized tags routinely contain underscores, which LIKE
// would otherwise treat as single-character wildcards.
func escapeTagForLike(tag string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(tag)
}

func (repository *PostgresRepository) FindByTag(context context.Context, tag string, limit int) ([]*Work, error) {
	// Tag strings are space separated; padding both sides turns tag
	// membership into a plain substring match.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE ' ' || %s || ' ' LIKE '%% ' || $1 || ' %%' ESCAPE '\'
		ORDER BY %s DESC
	`,
		schema.CorePost.ID, schema.CorePost.Source, schema.CorePost.TagString,
		schema.CorePost.Table, schema.CorePost.TagString, schema.CorePost.ID,
	)

	args := []any{escapeTagForLike(tag)}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_works_by_tag")
	}
	defer rows.Close()

	var works []*Work
	for rows.Next() {
		work := &Work{}
		if err := rows.Scan(&work.ID, &work.Source, &work.TagString); err != nil {
			return nil, dberr.Wrap(err, "scan_work")
		}
		works = append(works, work)
	}

	return works, rows.Err()
}

func (repository *PostgresRepository) UpdateTags(context context.Context, id int, tagString string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.CorePost.Table, schema.CorePost.TagString, schema.CorePost.UpdatedAt, schema.CorePost.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, tagString)
	if err != nil {
		return dberr.Wrap(err, "update_work_tags")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
