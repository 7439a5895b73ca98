package queries

import (
	"context"

	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListShopperOrdersQueryHandler hides sub-orders that still sit in REQUESTING:
// they belong to a pending runner-order request, not to the public board.
type ListShopperOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListShopperOrdersQueryHandler(db *gorm.DB) ListShopperOrdersQueryHandler {
	return ListShopperOrdersQueryHandler{db: db}
}

func (h ListShopperOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListShopperOrdersQuery,
) (Page[ShopperOrderView], error) {
	if err := query.Validate(); err != nil {
		return Page[ShopperOrderView]{}, err
	}

	filter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("status <> ?", workflow.OrderRequesting.String())
		if owner := query.OwnerID(); owner != nil {
			db = db.Where("shopper_id = ?", owner.Bytes())
		}
		return db
	}

	page := query.Page()
	result := Page[ShopperOrderView]{Offset: page.Offset(), Limit: page.Limit()}

	if err := h.db.WithContext(ctx).Model(&shopperOrderRow{}).Scopes(filter).Count(&result.Total).Error; err != nil {
		return Page[ShopperOrderView]{}, errs.NewStorageError("count shopper orders", err)
	}

	var rows []shopperOrderRow
	err := h.db.WithContext(ctx).
		Scopes(filter, newestFirst("order_id"), pageScope(page.Offset(), page.Limit())).
		Preload("Shopper").
		Preload("Items").
		Preload("Images").
		Find(&rows).Error
	if err != nil {
		return Page[ShopperOrderView]{}, errs.NewStorageError("list shopper orders", err)
	}

	result.Items = make([]ShopperOrderView, 0, len(rows))
	for i := range rows {
		result.Items = append(result.Items, *shopperOrderView(&rows[i]))
	}

	return result, nil
}
