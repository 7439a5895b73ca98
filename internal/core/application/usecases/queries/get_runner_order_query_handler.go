package queries

import (
	"context"
	"errors"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRunnerOrderQueryHandler loads a runner order with its live requests. Each
// request carries the shopper and the sub-order with its items.
type GetRunnerOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetRunnerOrderQueryHandler(db *gorm.DB) GetRunnerOrderQueryHandler {
	return GetRunnerOrderQueryHandler{db: db}
}

func (h GetRunnerOrderQueryHandler) Handle(ctx context.Context, query GetRunnerOrderQuery) (*RunnerOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row runnerOrderRow
	err := h.db.WithContext(ctx).
		Preload("Runner").
		Preload("Requests", liveRequests).
		Preload("Requests.Shopper").
		Preload("Requests.SubOrder").
		Preload("Requests.SubOrder.Items").
		Preload("Requests.SubOrder.Images").
		First(&row, "order_id = ?", query.OrderID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return nil, errs.NewStorageError("get runner order", err)
	}

	return runnerOrderView(&row), nil
}
