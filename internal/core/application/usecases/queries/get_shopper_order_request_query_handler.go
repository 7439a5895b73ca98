package queries

import (
	"context"
	"errors"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetShopperOrderRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetShopperOrderRequestQueryHandler(db *gorm.DB) GetShopperOrderRequestQueryHandler {
	return GetShopperOrderRequestQueryHandler{db: db}
}

func (h GetShopperOrderRequestQueryHandler) Handle(
	ctx context.Context,
	query GetShopperOrderRequestQuery,
) (*ShopperOrderRequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row shopperRequestRow
	err := h.db.WithContext(ctx).
		Preload("Runner").
		Preload("Order").
		Preload("Order.Shopper").
		Preload("Order.Items").
		Preload("Order.Images").
		First(&row, "request_id = ?", query.RequestID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestId", query.RequestID().String())
		}
		return nil, errs.NewStorageError("get shopper order request", err)
	}

	return shopperRequestView(&row), nil
}
