package implication

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

// WithDB returns a copy of the repository bound to the given querier.
// Used to run implication writes inside an enclosing transaction.
func (repository *PostgresRepository) WithDB(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Find(context context.Context, antecedent, consequent string) (*Record, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
	`,
		schema.CoreTagImplication.ID, schema.CoreTagImplication.AntecedentName, schema.CoreTagImplication.ConsequentName,
		schema.CoreTagImplication.Status, schema.CoreTagImplication.ApproverID,
		schema.CoreTagImplication.CreatedAt, schema.CoreTagImplication.UpdatedAt,
		schema.CoreTagImplication.Table,
		schema.CoreTagImplication.AntecedentName, schema.CoreTagImplication.ConsequentName,
	)

	record := &Record{}
	err := repository.db.QueryRow(context, query, antecedent, consequent).Scan(
		&record.ID, &record.AntecedentName, &record.ConsequentName,
		&record.Status, &record.ApproverID, &record.CreatedAt, &record.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_implication")
	}
	return record, nil
}

func (repository *PostgresRepository) Create(context context.Context, antecedent, consequent string) (*Record, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreTagImplication.Table,
		schema.CoreTagImplication.AntecedentName, schema.CoreTagImplication.ConsequentName,
		schema.CoreTagImplication.Status, schema.CoreTagImplication.CreatedAt, schema.CoreTagImplication.UpdatedAt,
		schema.CoreTagImplication.ID, schema.CoreTagImplication.CreatedAt, schema.CoreTagImplication.UpdatedAt,
	)

	record := &Record{AntecedentName: antecedent, ConsequentName: consequent, Status: StatusPending}
	err := repository.db.QueryRow(context, query, antecedent, consequent, StatusPending).Scan(
		&record.ID, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "create_implication")
	}
	return record, nil
}

func (repository *PostgresRepository) Approve(context context.Context, id int, approverID string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = NOW() WHERE %s = $1
	`,
		schema.CoreTagImplication.Table,
		schema.CoreTagImplication.Status, schema.CoreTagImplication.ApproverID,
		schema.CoreTagImplication.UpdatedAt, schema.CoreTagImplication.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, StatusActive, approverID)
	if err != nil {
		return dberr.Wrap(err, "approve_implication")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreTagImplication.Table, schema.CoreTagImplication.ID,
	)

	if _, err := repository.db.Exec(context, query, id); err != nil {
		return dberr.Wrap(err, "delete_implication")
	}
	return nil
}
