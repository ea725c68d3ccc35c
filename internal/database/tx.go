package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transaction runs fn in a gorm transaction bound to the context it
// receives. Repositories that resolve their handle with Conn join it, so
// work done by event subscribers commits or rolls back with the caller.
func Transaction(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(context.WithValue(ctx, txKey{}, tx))
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Conn returns the transaction carried by ctx, or db.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
