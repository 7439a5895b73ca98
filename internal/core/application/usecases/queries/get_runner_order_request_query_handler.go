package queries

import (
	"context"
	"errors"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRunnerOrderRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetRunnerOrderRequestQueryHandler(db *gorm.DB) GetRunnerOrderRequestQueryHandler {
	return GetRunnerOrderRequestQueryHandler{db: db}
}

func (h GetRunnerOrderRequestQueryHandler) Handle(
	ctx context.Context,
	query GetRunnerOrderRequestQuery,
) (*RunnerOrderRequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row runnerRequestRow
	err := h.db.WithContext(ctx).
		Preload("Shopper").
		Preload("SubOrder").
		Preload("SubOrder.Items").
		Preload("SubOrder.Images").
		Preload("Order").
		Preload("Order.Runner").
		First(&row, "request_id = ?", query.RequestID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestId", query.RequestID().String())
		}
		return nil, errs.NewStorageError("get runner order request", err)
	}

	return runnerRequestView(&row), nil
}
