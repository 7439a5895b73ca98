// Package runnerorderrepo stores runner orders and the shopper requests filed
// against them. Each request anchors a sub-order kept in shopper_orders.
package runnerorderrepo

import (
	"context"
	"errors"
	"time"

	"errands/internal/adapters/out/postgres/pgerrs"
	"errands/internal/adapters/out/postgres/shopperorderrepo"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderEntity = "runner order"

// GormRunnerOrderRepository implements ports.RunnerOrderRepository.
type GormRunnerOrderRepository struct {
	db *gorm.DB
}

func NewGormRunnerOrderRepository(db *gorm.DB) *GormRunnerOrderRepository {
	return &GormRunnerOrderRepository{db: db}
}

func (r *GormRunnerOrderRepository) Add(ctx context.Context, aggregate *runnerorder.RunnerOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Translate(orderEntity, "insert", err)
	}

	return nil
}

func (r *GormRunnerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*runnerorder.RunnerOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RunnerOrderDTO
	err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, pgerrs.Translate(orderEntity, "select", err)
	}

	return toDomain(dto)
}

// Delete removes the offer when ownerID published it. Sub-orders anchored by
// its requests are deleted first; the requests themselves go by cascade.
func (r *GormRunnerOrderRepository) Delete(ctx context.Context, ownerID, id kernel.UUID) (bool, error) {
	if err := errors.Join(ownerID.Validate(), id.Validate()); err != nil {
		return false, err
	}

	db := r.db.WithContext(ctx)

	var owned int64
	err := db.Model(&RunnerOrderDTO{}).
		Where("order_id = ? AND runner_id = ?", id.Bytes(), ownerID.Bytes()).
		Count(&owned).Error
	if err != nil {
		return false, pgerrs.Translate(orderEntity, "select", err)
	}
	if owned == 0 {
		return false, nil
	}

	subOrders := db.Model(&RequestDTO{}).
		Select("shopper_order_id").
		Where("order_id = ?", id.Bytes())
	err = db.Where("order_id IN (?)", subOrders).
		Delete(&shopperorderrepo.ShopperOrderDTO{}).Error
	if err != nil {
		return false, pgerrs.Translate("shopper order", "delete", err)
	}

	result := db.Where("order_id = ? AND runner_id = ?", id.Bytes(), ownerID.Bytes()).
		Delete(&RunnerOrderDTO{})
	if result.Error != nil {
		return false, pgerrs.Translate(orderEntity, "delete", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Touch bumps updated_at. Returns an ObjectNotFoundError when the offer is gone.
func (r *GormRunnerOrderRepository) Touch(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RunnerOrderDTO{}).
		Where("order_id = ?", id.Bytes()).
		Update("updated_at", time.Now().UTC())
	if result.Error != nil {
		return pgerrs.Translate(orderEntity, "update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}
