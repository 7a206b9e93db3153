// Copyright (c) 2026 Atelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations shared by [*pgxpool.Pool] and
// [pgx.Tx].
//
// # Why an interface?
//
// Repositories accept a Querier instead of a concrete pool so that the same
// repository code runs standalone (pool) or inside a transaction (tx). The
// artist ban/unban workflows rely on this to group writes across several
// repositories into one atomic commit.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
