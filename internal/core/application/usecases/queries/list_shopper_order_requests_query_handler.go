package queries

import (
	"context"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListShopperOrderRequestsQueryHandler orders requests by creation time, newest
// first. Listing by order includes each runner's profile; listing by runner
// includes the targeted order instead.
type ListShopperOrderRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListShopperOrderRequestsQueryHandler(db *gorm.DB) ListShopperOrderRequestsQueryHandler {
	return ListShopperOrderRequestsQueryHandler{db: db}
}

func (h ListShopperOrderRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListShopperOrderRequestsQuery,
) (Page[ShopperOrderRequestView], error) {
	if err := query.Validate(); err != nil {
		return Page[ShopperOrderRequestView]{}, err
	}

	filter := func(db *gorm.DB) *gorm.DB {
		if orderID := query.OrderID(); orderID != nil {
			db = db.Where("order_id = ?", orderID.Bytes())
		}
		if runnerID := query.RunnerID(); runnerID != nil {
			db = db.Where("runner_id = ?", runnerID.Bytes())
		}
		return db.Scopes(requestStatusScope(query.Status()))
	}

	page := query.Page()
	result := Page[ShopperOrderRequestView]{Offset: page.Offset(), Limit: page.Limit()}

	err := h.db.WithContext(ctx).Model(&shopperRequestRow{}).Scopes(filter).Count(&result.Total).Error
	if err != nil {
		return Page[ShopperOrderRequestView]{}, errs.NewStorageError("count shopper order requests", err)
	}

	find := h.db.WithContext(ctx).
		Scopes(filter, createdFirst, pageScope(page.Offset(), page.Limit())).
		Preload("Runner")
	if query.RunnerID() != nil {
		find = find.Preload("Order").Preload("Order.Shopper").Preload("Order.Items")
	}

	var rows []shopperRequestRow
	if err = find.Find(&rows).Error; err != nil {
		return Page[ShopperOrderRequestView]{}, errs.NewStorageError("list shopper order requests", err)
	}

	result.Items = make([]ShopperOrderRequestView, 0, len(rows))
	for i := range rows {
		result.Items = append(result.Items, *shopperRequestView(&rows[i]))
	}

	return result, nil
}
