package queries

import (
	"context"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListRunnerOrderRequestsQueryHandler always includes the sub-order and its
// items. Listing by shopper adds the runner order and its owner.
type ListRunnerOrderRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListRunnerOrderRequestsQueryHandler(db *gorm.DB) ListRunnerOrderRequestsQueryHandler {
	return ListRunnerOrderRequestsQueryHandler{db: db}
}

func (h ListRunnerOrderRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListRunnerOrderRequestsQuery,
) (Page[RunnerOrderRequestView], error) {
	if err := query.Validate(); err != nil {
		return Page[RunnerOrderRequestView]{}, err
	}

	filter := func(db *gorm.DB) *gorm.DB {
		if orderID := query.OrderID(); orderID != nil {
			db = db.Where("order_id = ?", orderID.Bytes())
		}
		if shopperID := query.ShopperID(); shopperID != nil {
			db = db.Where("shopper_id = ?", shopperID.Bytes())
		}
		return db.Scopes(requestStatusScope(query.Status()))
	}

	page := query.Page()
	result := Page[RunnerOrderRequestView]{Offset: page.Offset(), Limit: page.Limit()}

	err := h.db.WithContext(ctx).Model(&runnerRequestRow{}).Scopes(filter).Count(&result.Total).Error
	if err != nil {
		return Page[RunnerOrderRequestView]{}, errs.NewStorageError("count runner order requests", err)
	}

	find := h.db.WithContext(ctx).
		Scopes(filter, createdFirst, pageScope(page.Offset(), page.Limit())).
		Preload("Shopper").
		Preload("SubOrder").
		Preload("SubOrder.Items").
		Preload("SubOrder.Images")
	if query.ShopperID() != nil {
		find = find.Preload("Order").Preload("Order.Runner")
	}

	var rows []runnerRequestRow
	if err = find.Find(&rows).Error; err != nil {
		return Page[RunnerOrderRequestView]{}, errs.NewStorageError("list runner order requests", err)
	}

	result.Items = make([]RunnerOrderRequestView, 0, len(rows))
	for i := range rows {
		result.Items = append(result.Items, *runnerRequestView(&rows[i]))
	}

	return result, nil
}
