package database

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Per-unit wall-clock limits. Exceeding one aborts the transaction with a
// rollback; retrying is the caller's decision, never this layer's.
const (
	serializableTimeout   = 5 * time.Second
	repeatableReadTimeout = 3 * time.Second
)

type (
	// TransactionManager runs a sequence of store operations as one atomic
	// unit at a fixed isolation level. Any error inside the closure rolls
	// back every effect and is returned unchanged.
	TransactionManager interface {
		Serializable(ctx context.Context, fn func(tx *gorm.DB) error) error
		RepeatableRead(ctx context.Context, fn func(tx *gorm.DB) error) error
	}

	transactionManager struct {
		db *gorm.DB
	}
)

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

func (m *transactionManager) Serializable(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.run(ctx, sql.LevelSerializable, serializableTimeout, fn)
}

func (m *transactionManager) RepeatableRead(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.run(ctx, sql.LevelRepeatableRead, repeatableReadTimeout, fn)
}

func (m *transactionManager) run(ctx context.Context, level sql.IsolationLevel, timeout time.Duration, fn func(tx *gorm.DB) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return m.db.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: level})
}
