package queries

import (
	"context"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListRunnerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListRunnerOrdersQueryHandler(db *gorm.DB) ListRunnerOrdersQueryHandler {
	return ListRunnerOrdersQueryHandler{db: db}
}

func (h ListRunnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRunnerOrdersQuery,
) (Page[RunnerOrderView], error) {
	if err := query.Validate(); err != nil {
		return Page[RunnerOrderView]{}, err
	}

	filter := func(db *gorm.DB) *gorm.DB {
		if owner := query.OwnerID(); owner != nil {
			return db.Where("runner_id = ?", owner.Bytes())
		}
		return db
	}

	page := query.Page()
	result := Page[RunnerOrderView]{Offset: page.Offset(), Limit: page.Limit()}

	if err := h.db.WithContext(ctx).Model(&runnerOrderRow{}).Scopes(filter).Count(&result.Total).Error; err != nil {
		return Page[RunnerOrderView]{}, errs.NewStorageError("count runner orders", err)
	}

	var rows []runnerOrderRow
	err := h.db.WithContext(ctx).
		Scopes(filter, newestFirst("order_id"), pageScope(page.Offset(), page.Limit())).
		Preload("Runner").
		Find(&rows).Error
	if err != nil {
		return Page[RunnerOrderView]{}, errs.NewStorageError("list runner orders", err)
	}

	result.Items = make([]RunnerOrderView, 0, len(rows))
	for i := range rows {
		result.Items = append(result.Items, *runnerOrderView(&rows[i]))
	}

	return result, nil
}
