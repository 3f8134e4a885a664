package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/habipet/backend/internal/error_values"
	"github.com/habipet/backend/pkg/cleanup"
)

type DBConfig interface {
	ConnString() string
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// Querier is the query subset shared by pgxpool.Pool, pgx.Tx and pgxmock,
// so every repository works both standalone and inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Store struct {
	conn PgConnection
}

func NewStore(cfg DBConfig) *Store {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for store error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for store: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &Store{
		conn: pool,
	}
}

func NewStoreWithConn(conn PgConnection) *Store {
	return &Store{
		conn: conn,
	}
}

// Repos returns repositories bound to the shared pool, for read paths that
// don't need transactional consistency.
func (s *Store) Repos() *Repositories {
	return bundle(s.conn)
}

// WithinTx runs fn with repositories bound to a single transaction. Commit
// happens only when fn returns nil; every other exit path rolls back. Begin
// and commit failures surface as ErrStoreUnavailable so callers can retry.
func (s *Store) WithinTx(ctx context.Context, fn func(r *Repositories) error) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return errorvalues.ErrStoreUnavailable
	}
	defer tx.Rollback(ctx)
	if err := fn(bundle(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errorvalues.ErrStoreUnavailable
	}
	return nil
}

func bundle(q Querier) *Repositories {
	return &Repositories{
		Habits:        NewHabitsRepoWithConn(q),
		Pets:          NewPetsRepoWithConn(q),
		Stats:         NewUserStatsRepoWithConn(q),
		Achievements:  NewAchievementsRepoWithConn(q),
		Notifications: NewNotificationsRepoWithConn(q),
	}
}
