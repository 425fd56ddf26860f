package storage

import (
	"context"
	"fmt"

	"fyyur/internal/domain/artists"
	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/venues"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	Venues  venues.Store
	Artists artists.Store
	Shows   shows.Store

	runTx func(ctx context.Context, fn func(tx *Tx) error) error
}

// Tx is a temporary, tx-scoped set of repos for one atomic write.
type Tx struct {
	Venues  venues.Store
	Artists artists.Store
	Shows   shows.Store
}

func NewContainer(pool *pgxpool.Pool) *Container {
	c := &Container{
		Venues:  venues.NewRepository(pool),
		Artists: artists.NewRepository(pool),
		Shows:   shows.NewRepository(pool),
	}
	c.runTx = func(ctx context.Context, fn func(tx *Tx) error) error {
		return runPgxTx(ctx, pool, fn)
	}
	return c
}

// NewStaticContainer wires already-built stores together. WithTx hands fn the
// same stores, so writes are only as atomic as the stores themselves.
func NewStaticContainer(v venues.Store, a artists.Store, s shows.Store) *Container {
	c := &Container{Venues: v, Artists: a, Shows: s}
	c.runTx = func(_ context.Context, fn func(tx *Tx) error) error {
		return fn(&Tx{Venues: v, Artists: a, Shows: s})
	}
	return c
}

// WithTx runs fn as one all-or-nothing unit of work: committed when fn returns
// nil, rolled back otherwise. There are no retries.
func (c *Container) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	if c.runTx == nil {
		return fmt.Errorf("storage container has no transaction runner (use NewContainer)")
	}
	return c.runTx(ctx, fn)
}

func runPgxTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx *Tx) error) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	scoped := &Tx{
		Venues:  venues.NewRepository(tx),
		Artists: artists.NewRepository(tx),
		Shows:   shows.NewRepository(tx),
	}

	if err := fn(scoped); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
