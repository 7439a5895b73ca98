package runnerorder_test

import (
	"testing"
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnerOrder(t *testing.T) {
	runnerID := kernel.NewUUID()
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	window, err := kernel.NewTimeWindow(&start, &end)
	require.NoError(t, err)

	o, err := runnerorder.NewRunnerOrder(kernel.NewUUID(), runnerID, runnerorder.Details{
		Message:          " heading to the market ",
		EstimatedMinutes: 45,
		DistanceMeters:   1200,
		ContactWindow:    window,
		Payments:         []string{"card", " CASH", "Card"},
	})

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.True(t, o.IsOwnedBy(runnerID))
	assert.Equal(t, "heading to the market", o.Details().Message)
	assert.Equal(t, []string{"CARD", "CASH"}, o.Details().Payments)
	assert.Equal(t, start, *o.Details().ContactWindow.Start())
}

func TestNewRunnerOrder_Validation(t *testing.T) {
	tests := []struct {
		name      string
		runnerID  kernel.UUID
		details   runnerorder.Details
		wantErrIs error
	}{
		{"missing runner", kernel.UUID{}, runnerorder.Details{Message: "m"}, errs.ErrValueIsRequired},
		{"missing message", kernel.NewUUID(), runnerorder.Details{}, errs.ErrValueIsRequired},
		{"negative minutes", kernel.NewUUID(), runnerorder.Details{Message: "m", EstimatedMinutes: -1}, errs.ErrValueIsOutOfRange},
		{"negative distance", kernel.NewUUID(), runnerorder.Details{Message: "m", DistanceMeters: -1}, errs.ErrValueIsOutOfRange},
		{"blank payment", kernel.NewUUID(), runnerorder.Details{Message: "m", Payments: []string{" "}}, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runnerorder.NewRunnerOrder(kernel.NewUUID(), tt.runnerID, tt.details)
			require.ErrorIs(t, err, tt.wantErrIs)
		})
	}
}

func TestRunnerOrder_DetailsReturnsCopy(t *testing.T) {
	o, err := runnerorder.NewRunnerOrder(kernel.NewUUID(), kernel.NewUUID(), runnerorder.Details{
		Message:  "m",
		Payments: []string{"CASH"},
	})
	require.NoError(t, err)

	d := o.Details()
	d.Payments[0] = "CRYPTO"

	assert.Equal(t, []string{"CASH"}, o.Details().Payments)
}

func TestRequest(t *testing.T) {
	shopperID := kernel.NewUUID()
	subOrderID := kernel.NewUUID()

	r, err := runnerorder.NewRequest(kernel.NewUUID(), kernel.NewUUID(), shopperID, subOrderID)
	require.NoError(t, err)
	assert.True(t, r.IsCreatedBy(shopperID))
	assert.True(t, r.ShopperOrderID().IsEqual(subOrderID))
	require.NoError(t, r.ValidateWithdraw())

	_, err = runnerorder.NewRequest(kernel.NewUUID(), kernel.NewUUID(), shopperID, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero *runnerorder.Request
	require.ErrorIs(t, zero.Validate(), runnerorder.ErrRequestIsNotConstructed)
}
