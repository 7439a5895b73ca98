package workflow

import (
	"errands/internal/pkg/errs"
)

// RequestEdge is a compare-and-set on a request status.
type RequestEdge struct {
	From RequestStatus
	To   RequestStatus
}

// OrderEdge is a compare-and-set on an order status. From == To is a guard
// that only asserts the order is still in From.
type OrderEdge struct {
	From OrderStatus
	To   OrderStatus
}

// TransitionPlan lists every write one transition performs, in order.
type TransitionPlan struct {
	Orientation    Orientation
	Request        RequestEdge
	Order          OrderEdge
	RejectSiblings bool
}

var transitionTables = map[Orientation]map[RequestStatus]TransitionPlan{
	ShopperOrientation: {
		RequestMatched: {
			Request:        RequestEdge{RequestRequesting, RequestMatched},
			Order:          OrderEdge{OrderMatching, OrderMatched},
			RejectSiblings: true,
		},
		// Declining one runner leaves the order open for the others.
		RequestMatchFail: {
			Request: RequestEdge{RequestRequesting, RequestMatchFail},
			Order:   OrderEdge{OrderMatching, OrderMatching},
		},
		RequestDeliveredRequest: {
			Request: RequestEdge{RequestMatched, RequestDeliveredRequest},
			Order:   OrderEdge{OrderMatched, OrderDeliveredRequest},
		},
		RequestDelivered: {
			Request: RequestEdge{RequestDeliveredRequest, RequestDelivered},
			Order:   OrderEdge{OrderDeliveredRequest, OrderDelivered},
		},
		RequestReviewRequest: {
			Request: RequestEdge{RequestDelivered, RequestReviewRequest},
			Order:   OrderEdge{OrderDelivered, OrderReviewRequest},
		},
		RequestReviewed: {
			Request: RequestEdge{RequestReviewRequest, RequestReviewed},
			Order:   OrderEdge{OrderReviewRequest, OrderReviewed},
		},
	},
	RunnerOrientation: {
		RequestMatched: {
			Request:        RequestEdge{RequestRequesting, RequestMatched},
			Order:          OrderEdge{OrderRequesting, OrderMatched},
			RejectSiblings: true,
		},
		RequestMatchFail: {
			Request: RequestEdge{RequestRequesting, RequestMatchFail},
			Order:   OrderEdge{OrderRequesting, OrderMatchFail},
		},
		RequestDeliveredRequest: {
			Request: RequestEdge{RequestMatched, RequestDeliveredRequest},
			Order:   OrderEdge{OrderMatched, OrderDeliveredRequest},
		},
		RequestDelivered: {
			Request: RequestEdge{RequestDeliveredRequest, RequestDelivered},
			Order:   OrderEdge{OrderDeliveredRequest, OrderDelivered},
		},
		RequestReviewRequest: {
			Request: RequestEdge{RequestDelivered, RequestReviewRequest},
			Order:   OrderEdge{OrderDelivered, OrderReviewRequest},
		},
		RequestReviewed: {
			Request: RequestEdge{RequestReviewRequest, RequestReviewed},
			Order:   OrderEdge{OrderReviewRequest, OrderReviewed},
		},
	},
}

// Plan resolves the writes needed to move a request of the given orientation
// to target. Targets without a predecessor (REQUESTING, MATCHING, anything
// unknown) fail with an UnknownTargetStatusError.
func Plan(orientation Orientation, target RequestStatus) (TransitionPlan, error) {
	table, ok := transitionTables[orientation]
	if !ok {
		return TransitionPlan{}, errs.NewValueIsInvalidError("orientation " + orientation.String())
	}

	plan, ok := table[target]
	if !ok {
		return TransitionPlan{}, errs.NewUnknownTargetStatusError(target.String())
	}

	plan.Orientation = orientation
	return plan, nil
}

// PlanFromString is Plan for a raw boundary value.
func PlanFromString(orientation Orientation, target string) (TransitionPlan, error) {
	return Plan(orientation, RequestStatus(target))
}
