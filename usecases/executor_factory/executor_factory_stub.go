package executor_factory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/sitepress/sitepress-backend/repositories"
)

// ExecutorFactoryStub hands out executors backed by a pgxmock pool, for tests.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

type TransactionFactoryStub struct {
	ExecutorFactory ExecutorFactoryStub
}

func NewTransactionFactoryStub(executorFactory ExecutorFactoryStub) TransactionFactoryStub {
	return TransactionFactoryStub{ExecutorFactory: executorFactory}
}

type pgTxStub struct {
	PgExecutorStub
}

func (pgTxStub) RawTx() pgx.Tx { return nil }

// Transaction runs the callback on the mock pool without BEGIN/COMMIT expectations.
func (stub TransactionFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	return fn(pgTxStub{PgExecutorStub{stub.ExecutorFactory.Mock}})
}
