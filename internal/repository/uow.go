package repository

import (
	"context"

	"gorm.io/gorm"
)

// UnitOfWork groups repository calls into one database transaction.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do runs fn within a transaction. The transaction travels in the context
// under TxKey, so repositories called from fn join it. A non-nil error from
// fn rolls everything back.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, TxKey, tx))
	})
}
