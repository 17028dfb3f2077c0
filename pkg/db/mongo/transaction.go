package mongo

import (
	"context"
	"time"

	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionFunc func(ctx mongo.SessionContext) error

type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

type mongoTransactionManager struct {
	client  *mongo.Client
	timeout time.Duration
}

func NewTransactionManager(client *mongo.Client, timeout time.Duration) TransactionManager {
	return &mongoTransactionManager{
		client:  client,
		timeout: timeout,
	}
}

// ExecuteTransaction runs fn inside a single Mongo transaction: every write
// fn performs through the session context commits or aborts as one unit.
//
// The transaction runs detached from the caller's cancellation, under its
// own deadline. A client that disconnects mid-commit must not be able to
// leave half-applied state behind, and a hung store must surface as a
// transaction failure rather than block forever.
func (m *mongoTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return apperrors.Transaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})

	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Transaction(err)
	}

	return nil
}
