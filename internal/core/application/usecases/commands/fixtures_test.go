package commands_test

import (
	"testing"
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/require"
)

func newShopperOrder(t *testing.T, shopperID kernel.UUID, status workflow.OrderStatus) *shopperorder.ShopperOrder {
	t.Helper()
	now := time.Now().UTC()
	o, err := shopperorder.RestoreShopperOrder(
		kernel.NewUUID(), shopperID,
		shopperorder.Details{Title: "groceries"},
		status, nil, nil, now, now,
	)
	require.NoError(t, err)
	return o
}

func newShopperRequest(
	t *testing.T,
	orderID, runnerID kernel.UUID,
	status workflow.RequestStatus,
) *shopperorder.Request {
	t.Helper()
	now := time.Now().UTC()
	r, err := shopperorder.RestoreRequest(kernel.NewUUID(), orderID, runnerID, status, now, now)
	require.NoError(t, err)
	return r
}

func newRunnerOrder(t *testing.T, runnerID kernel.UUID) *runnerorder.RunnerOrder {
	t.Helper()
	o, err := runnerorder.NewRunnerOrder(kernel.NewUUID(), runnerID, runnerorder.Details{Message: "on my bike all afternoon"})
	require.NoError(t, err)
	return o
}

func newRunnerRequest(
	t *testing.T,
	orderID, shopperID kernel.UUID,
	status workflow.RequestStatus,
) *runnerorder.Request {
	t.Helper()
	now := time.Now().UTC()
	r, err := runnerorder.RestoreRequest(kernel.NewUUID(), orderID, shopperID, kernel.NewUUID(), status, now, now)
	require.NoError(t, err)
	return r
}
