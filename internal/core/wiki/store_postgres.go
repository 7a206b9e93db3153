package wiki

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

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

func (repository *PostgresRepository) FindByTitle(context context.Context, title string) (*Page, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CoreWikiPage.ID, schema.CoreWikiPage.Title, schema.CoreWikiPage.Body,
		schema.CoreWikiPage.IsLocked, schema.CoreWikiPage.CreatedAt, schema.CoreWikiPage.UpdatedAt,
		schema.CoreWikiPage.Table, schema.CoreWikiPage.Title,
	)

	p := &Page{}
	err := repository.db.QueryRow(context, query, title).Scan(
		&p.ID, &p.Title, &p.Body, &p.IsLocked, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Absence is an ordinary outcome of the soft name reference.
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_wiki_page")
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, title, body string) (*Page, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, FALSE, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreWikiPage.Table, schema.CoreWikiPage.Title, schema.CoreWikiPage.Body,
		schema.CoreWikiPage.IsLocked, schema.CoreWikiPage.CreatedAt, schema.CoreWikiPage.UpdatedAt,
		schema.CoreWikiPage.ID, schema.CoreWikiPage.CreatedAt, schema.CoreWikiPage.UpdatedAt,
	)

	p := &Page{Title: title, Body: body}
	err := repository.db.QueryRow(context, query, title, body).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_wiki_page")
	}
	return p, nil
}

func (repository *PostgresRepository) Update(context context.Context, id int, fields UpdateFields) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = NOW()
		WHERE %s = $1
	`,
		schema.CoreWikiPage.Table,
		schema.CoreWikiPage.Title, schema.CoreWikiPage.Title,
		schema.CoreWikiPage.Body, schema.CoreWikiPage.Body,
		schema.CoreWikiPage.IsLocked, schema.CoreWikiPage.IsLocked,
		schema.CoreWikiPage.UpdatedAt,
		schema.CoreWikiPage.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, fields.Title, fields.Body, fields.IsLocked)
	if err != nil {
		return dberr.Wrap(err, "update_wiki_page")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
