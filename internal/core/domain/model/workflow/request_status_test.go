package workflow_test

import (
	"testing"

	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestStatus(t *testing.T) {
	for _, s := range []string{
		"REQUESTING", "MATCHED", "MATCH_FAIL", "DELIVERED_REQUEST", "DELIVERED", "REVIEW_REQUEST", "REVIEWED",
	} {
		status, err := workflow.ParseRequestStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, status.String())
	}

	for _, s := range []string{"", "MATCHING", "matched", "SHIPPED"} {
		_, err := workflow.ParseRequestStatus(s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
	}
}

func TestRequestStatus_Predecessor(t *testing.T) {
	tests := []struct {
		status workflow.RequestStatus
		want   workflow.RequestStatus
		ok     bool
	}{
		{workflow.RequestRequesting, "", false},
		{workflow.RequestMatched, workflow.RequestRequesting, true},
		{workflow.RequestMatchFail, workflow.RequestRequesting, true},
		{workflow.RequestDeliveredRequest, workflow.RequestMatched, true},
		{workflow.RequestDelivered, workflow.RequestDeliveredRequest, true},
		{workflow.RequestReviewRequest, workflow.RequestDelivered, true},
		{workflow.RequestReviewed, workflow.RequestReviewRequest, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			got, ok := tt.status.Predecessor()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestStatus_Flags(t *testing.T) {
	assert.True(t, workflow.RequestMatchFail.IsTerminal())
	assert.True(t, workflow.RequestReviewed.IsTerminal())
	assert.False(t, workflow.RequestMatched.IsTerminal())

	assert.True(t, workflow.RequestRequesting.IsDeletable())
	assert.True(t, workflow.RequestMatchFail.IsDeletable())
	assert.False(t, workflow.RequestMatched.IsDeletable())
	assert.False(t, workflow.RequestDelivered.IsDeletable())
}

func TestOrderStatus(t *testing.T) {
	_, err := workflow.ParseOrderStatus("MATCHING")
	require.NoError(t, err)
	_, err = workflow.ParseOrderStatus("DONE")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.True(t, workflow.OrderMatching.IsPreMatch())
	assert.True(t, workflow.OrderRequesting.IsPreMatch())
	assert.False(t, workflow.OrderMatched.IsPreMatch())

	assert.Equal(t, workflow.OrderMatching, workflow.ShopperOrientation.InitialOrderStatus())
	assert.Equal(t, workflow.OrderRequesting, workflow.RunnerOrientation.InitialOrderStatus())
}
