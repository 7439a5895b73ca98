package queries_test

import (
	"testing"

	"errands/internal/core/application/usecases/queries"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		want     error
	}{
		{"get shopper order", queries.GetShopperOrderQuery{}.Validate, queries.ErrGetShopperOrderQueryIsNotConstructed},
		{"list shopper orders", queries.ListShopperOrdersQuery{}.Validate, queries.ErrListShopperOrdersQueryIsNotConstructed},
		{
			"get shopper order request",
			queries.GetShopperOrderRequestQuery{}.Validate,
			queries.ErrGetShopperOrderRequestQueryIsNotConstructed,
		},
		{
			"list shopper order requests",
			queries.ListShopperOrderRequestsQuery{}.Validate,
			queries.ErrListShopperOrderRequestsQueryIsNotConstructed,
		},
		{"get runner order", queries.GetRunnerOrderQuery{}.Validate, queries.ErrGetRunnerOrderQueryIsNotConstructed},
		{"list runner orders", queries.ListRunnerOrdersQuery{}.Validate, queries.ErrListRunnerOrdersQueryIsNotConstructed},
		{
			"get runner order request",
			queries.GetRunnerOrderRequestQuery{}.Validate,
			queries.ErrGetRunnerOrderRequestQueryIsNotConstructed,
		},
		{
			"list runner order requests",
			queries.ListRunnerOrderRequestsQuery{}.Validate,
			queries.ErrListRunnerOrderRequestsQueryIsNotConstructed,
		},
		{"status counts", queries.GetStatusCountsQuery{}.Validate, queries.ErrGetStatusCountsQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestNewGetShopperOrderQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetShopperOrderQuery(kernel.UUID{})

	require.Error(t, err)
	assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
}

func TestNewListShopperOrderRequestsQuery_StatusFilter(t *testing.T) {
	orderID := kernel.NewUUID()

	q, err := queries.NewListShopperOrderRequestsQuery(orderID, kernel.DefaultPage(), "")
	require.NoError(t, err)
	assert.Nil(t, q.Status())
	assert.Equal(t, orderID, *q.OrderID())
	assert.Nil(t, q.RunnerID())

	q, err = queries.NewListShopperOrderRequestsQuery(orderID, kernel.DefaultPage(), "MATCH_FAIL")
	require.NoError(t, err)
	require.NotNil(t, q.Status())
	assert.Equal(t, workflow.RequestMatchFail, *q.Status())
}

func TestNewListShopperOrderRequestsQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListShopperOrderRequestsQuery(kernel.NewUUID(), kernel.DefaultPage(), "SHIPPED")

	require.Error(t, err)
	assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
}

func TestNewListRunnerOrderRequestsByShopperQuery(t *testing.T) {
	shopperID := kernel.NewUUID()

	q, err := queries.NewListRunnerOrderRequestsByShopperQuery(shopperID, kernel.DefaultPage(), "MATCHED")

	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Nil(t, q.OrderID())
	assert.Equal(t, shopperID, *q.ShopperID())
	assert.Equal(t, workflow.RequestMatched, *q.Status())
}

func TestNewListRunnerOrdersQuery_InvalidOwner(t *testing.T) {
	owner := kernel.UUID{}

	_, err := queries.NewListRunnerOrdersQuery(kernel.DefaultPage(), &owner)

	require.Error(t, err)
}
