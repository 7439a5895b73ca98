package queries

import (
	"context"
	"errors"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShopperOrderQueryHandler returns NOT_FOUND when the order does not exist.
// Requests that ended in MATCH_FAIL are left out.
type GetShopperOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetShopperOrderQueryHandler(db *gorm.DB) GetShopperOrderQueryHandler {
	return GetShopperOrderQueryHandler{db: db}
}

func (h GetShopperOrderQueryHandler) Handle(ctx context.Context, query GetShopperOrderQuery) (*ShopperOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row shopperOrderRow
	err := h.db.WithContext(ctx).
		Preload("Shopper").
		Preload("Items").
		Preload("Images").
		Preload("Requests", liveRequests).
		Preload("Requests.Runner").
		First(&row, "order_id = ?", query.OrderID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return nil, errs.NewStorageError("get shopper order", err)
	}

	return shopperOrderView(&row), nil
}
