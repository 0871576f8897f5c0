//go:build unit

package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestConnFromContext_Absent(t *testing.T) {
	conn, ok := ConnFromContext(context.Background())

	assert.False(t, ok)
	assert.Nil(t, conn)
}

func TestConnFromContext_NilConn(t *testing.T) {
	ctx := WithConn(context.Background(), nil)

	conn, ok := ConnFromContext(ctx)

	assert.False(t, ok)
	assert.Nil(t, conn)
}

func TestConnFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CtxConnKey, "not a conn")

	_, ok := ConnFromContext(ctx)

	assert.False(t, ok)
}

func TestConnFromContext_Present(t *testing.T) {
	// A zero Conn is enough to check the round trip; it is never used for I/O.
	want := &pgxpool.Conn{}
	ctx := WithConn(context.Background(), want)

	got, ok := ConnFromContext(ctx)

	assert.True(t, ok)
	assert.Same(t, want, got)
}
