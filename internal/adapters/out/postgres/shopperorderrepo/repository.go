// Package shopperorderrepo stores shopper orders, their items and images, and
// the runner requests filed against them.
package shopperorderrepo

import (
	"context"
	"errors"
	"time"

	"errands/internal/adapters/out/postgres/pgerrs"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderEntity = "shopper order"

// GormShopperOrderRepository implements ports.ShopperOrderRepository.
// It runs on whatever *gorm.DB it was built with, normally the unit of work's transaction.
type GormShopperOrderRepository struct {
	db *gorm.DB
}

func NewGormShopperOrderRepository(db *gorm.DB) *GormShopperOrderRepository {
	return &GormShopperOrderRepository{db: db}
}

// Add writes the order row first, then every item and image row. Any failure
// is returned as is so the enclosing unit of work rolls the whole order back.
func (r *GormShopperOrderRepository) Add(ctx context.Context, aggregate *shopperorder.ShopperOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Translate(orderEntity, "insert", err)
	}

	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return pgerrs.Translate("shopper order item", "insert", err)
		}
	}

	if len(dto.Images) > 0 {
		if err := db.Create(&dto.Images).Error; err != nil {
			return pgerrs.Translate("shopper order image", "insert", err)
		}
	}

	return nil
}

func (r *GormShopperOrderRepository) Get(ctx context.Context, id kernel.UUID) (*shopperorder.ShopperOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopperOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Images").
		First(&dto, "order_id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, pgerrs.Translate(orderEntity, "select", err)
	}

	return toDomain(dto)
}

// Delete removes the order owned by ownerID. Items, images and requests go
// with it through ON DELETE CASCADE.
func (r *GormShopperOrderRepository) Delete(ctx context.Context, ownerID, id kernel.UUID) (bool, error) {
	if err := errors.Join(ownerID.Validate(), id.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Where("order_id = ? AND shopper_id = ?", id.Bytes(), ownerID.Bytes()).
		Delete(&ShopperOrderDTO{})
	if result.Error != nil {
		return false, pgerrs.Translate(orderEntity, "delete", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// CompareAndSetStatus updates the status only while it still equals edge.From.
// A guard edge (From == To) still bumps updated_at, which makes concurrent
// writers on the same order conflict.
func (r *GormShopperOrderRepository) CompareAndSetStatus(
	ctx context.Context,
	id kernel.UUID,
	edge workflow.OrderEdge,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShopperOrderDTO{}).
		Where("order_id = ? AND status = ?", id.Bytes(), edge.From.String()).
		Updates(map[string]any{
			"status":     edge.To.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return pgerrs.Translate(orderEntity, "update", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidStatusTransitionError(orderEntity, edge.From.String(), edge.To.String())
	}

	return nil
}
