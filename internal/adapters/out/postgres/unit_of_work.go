// Package postgres implements the unit of work on top of GORM.
//
// Every unit of work runs one REPEATABLE READ transaction. Repositories
// obtained after Begin share it, so an operation that touches orders and
// requests either commits as a whole or leaves no trace.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ShopperOrderRequestRepository().CompareAndSetStatus(ctx, id, edge); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// A unit of work must not be shared between goroutines.
package postgres

import (
	"context"
	"database/sql"

	"errands/internal/adapters/out/postgres/pgerrs"
	"errands/internal/adapters/out/postgres/runnerorderrepo"
	"errands/internal/adapters/out/postgres/shopperorderrepo"
	"errands/internal/core/ports"

	"gorm.io/gorm"
)

const uowEntity = "transaction"

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction open yet.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens a REPEATABLE READ transaction. Calling it twice on the same
// instance keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if tx.Error != nil {
		return pgerrs.Translate(uowEntity, "begin", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. A serialization failure at commit time
// surfaces as an InvalidStatusTransitionError.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return pgerrs.Translate(uowEntity, "commit", err)
	}
	return nil
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// none is open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ShopperOrderRepository() ports.ShopperOrderRepository {
	return shopperorderrepo.NewGormShopperOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) ShopperOrderRequestRepository() ports.ShopperOrderRequestRepository {
	return shopperorderrepo.NewGormShopperOrderRequestRepository(uow.conn())
}

func (uow *GormUnitOfWork) RunnerOrderRepository() ports.RunnerOrderRepository {
	return runnerorderrepo.NewGormRunnerOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) RunnerOrderRequestRepository() ports.RunnerOrderRequestRepository {
	return runnerorderrepo.NewGormRunnerOrderRequestRepository(uow.conn())
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
