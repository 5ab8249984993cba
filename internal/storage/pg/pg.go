package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/forumapi/internal/config"
	"github.com/itchan-dev/forumapi/internal/logger"

	_ "github.com/lib/pq"
)

// dateLayout matches JavaScript's Date.toISOString, so stored dates sort
// lexicographically in time order.
const dateLayout = "2006-01-02T15:04:05.000Z"

type Storage struct {
	db *sql.DB

	newId func() string
	now   func() time.Time
}

// New connects to postgres and, if configured, applies pending migrations.
func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := Connect(ctx, cfg.Public.Pg, cfg.PgPassword())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	if cfg.Public.Pg.MigrateOnStart {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an open connection pool.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{
		db:    db,
		newId: uuid.NewString,
		now:   time.Now,
	}
}

func Connect(ctx context.Context, cfg config.Pg, password string) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, password, cfg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	return db, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) id(prefix string) string {
	return prefix + "-" + s.newId()
}

func (s *Storage) date() string {
	return s.now().UTC().Format(dateLayout)
}
