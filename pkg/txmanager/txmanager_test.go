package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

type txStub struct {
	commitErr error
	committed int
	rolledBak int
}

func (t *txStub) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *txStub) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *txStub) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *txStub) Commit() error {
	t.committed++
	return t.commitErr
}

func (t *txStub) Rollback() error {
	t.rolledBak++
	return nil
}

type beginnerStub struct {
	tx     *txStub
	begins int
}

func (b *beginnerStub) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return b.tx, nil
}

func serializationFailure() *pq.Error {
	return &pq.Error{Code: pq.ErrorCode(serializationFailureCode)}
}

func TestDoSerializable_RetriesOnCommitConflict(t *testing.T) {
	beginner := &beginnerStub{tx: &txStub{commitErr: serializationFailure()}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.True(t, isSerializationFailure(err))
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.Equal(t, maxRetries, beginner.begins)
}

func TestDoSerializable_RetriesOnStatementConflict(t *testing.T) {
	// Конфликт внутри транзакции приходит обёрнутым слоями репозитория и usecase
	beginner := &beginnerStub{tx: &txStub{}}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("internal error: failed to insert slots: %w",
			fmt.Errorf("repository: execute insert: %w", serializationFailure()))
	})

	require.Error(t, err)
	assert.Equal(t, maxRetries, attempts)
	assert.Equal(t, maxRetries, beginner.tx.rolledBak)
	assert.Zero(t, beginner.tx.committed)
}

func TestDoSerializable_NoRetryOnOtherError(t *testing.T) {
	beginner := &beginnerStub{tx: &txStub{}}
	m := NewTransactionManager(beginner)

	wantErr := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_Success(t *testing.T) {
	beginner := &beginnerStub{tx: &txStub{}}
	m := NewTransactionManager(beginner)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.begins)
	assert.Equal(t, 1, beginner.tx.committed)
}
