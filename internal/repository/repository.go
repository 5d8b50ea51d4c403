package repository

import (
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register postgres dialect
)

type Repository struct {
	DB            *sql.DB
	GoquDBWrapper *goqu.Database
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB:            db,
		GoquDBWrapper: goqu.New("postgres", db),
	}
}

// RunInTransaction is the instance form of WithTransaction; services depend
// on it through their own narrow interfaces so tests can substitute it.
func (r *Repository) RunInTransaction(fn func(tx *goqu.TxDatabase) error) error {
	return WithTransaction(r.GoquDBWrapper, fn)
}

// WithTransaction runs fn inside a single database transaction, rolling back
// on error or panic.
func WithTransaction(db *goqu.Database, fn func(tx *goqu.TxDatabase) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return
}
