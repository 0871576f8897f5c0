package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ctxKey string

// CtxConnKey carries the request-scoped *pgxpool.Conn.
const CtxConnKey ctxKey = "dbConn"

// WithConn returns a copy of ctx carrying conn.
func WithConn(ctx context.Context, conn *pgxpool.Conn) context.Context {
	return context.WithValue(ctx, CtxConnKey, conn)
}

func ConnFromContext(ctx context.Context) (*pgxpool.Conn, bool) {
	v := ctx.Value(CtxConnKey)
	if v == nil {
		return nil, false
	}
	conn, ok := v.(*pgxpool.Conn)
	return conn, ok && conn != nil
}
