package queries

import (
	"errors"

	"errands/internal/pkg/guard"
)

var ErrGetStatusCountsQueryIsNotConstructed = errors.New(
	"GetStatusCountsQuery must be created via NewGetStatusCountsQuery constructor",
)

// GetStatusCountsQuery counts shopper orders and requests of both orientations
// grouped by status. It feeds the status gauges refreshed by the metrics job.
//
// Example:
//
//	handler := NewGetStatusCountsQueryHandler(db)
//
//	counts, err := handler.Handle(ctx, NewGetStatusCountsQuery())
//	if err != nil {
//	    return err
//	}
//
//	for status, n := range counts.ShopperRequests {
//	    fmt.Printf("%s: %d\n", status, n)
//	}
type GetStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusCountsQuery() GetStatusCountsQuery {
	return GetStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusCountsQueryIsNotConstructed)
}

// StatusCounts maps a status to the number of rows in it. Statuses with no
// rows are absent.
type StatusCounts struct {
	ShopperOrders   map[string]int64
	ShopperRequests map[string]int64
	RunnerRequests  map[string]int64
}
