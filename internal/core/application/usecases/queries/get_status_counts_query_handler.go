package queries

import (
	"context"

	"errands/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetStatusCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusCountsQueryHandler(db *gorm.DB) GetStatusCountsQueryHandler {
	return GetStatusCountsQueryHandler{db: db}
}

func (h GetStatusCountsQueryHandler) Handle(ctx context.Context, query GetStatusCountsQuery) (StatusCounts, error) {
	if err := query.Validate(); err != nil {
		return StatusCounts{}, err
	}

	shopperOrders, err := h.countBy(ctx, &shopperOrderRow{}, "status")
	if err != nil {
		return StatusCounts{}, err
	}

	shopperRequests, err := h.countBy(ctx, &shopperRequestRow{}, "request_status")
	if err != nil {
		return StatusCounts{}, err
	}

	runnerRequests, err := h.countBy(ctx, &runnerRequestRow{}, "request_status")
	if err != nil {
		return StatusCounts{}, err
	}

	return StatusCounts{
		ShopperOrders:   shopperOrders,
		ShopperRequests: shopperRequests,
		RunnerRequests:  runnerRequests,
	}, nil
}

func (h GetStatusCountsQueryHandler) countBy(ctx context.Context, model any, column string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}

	err := h.db.WithContext(ctx).
		Model(model).
		Select(column + " AS status, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStorageError("count by "+column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
