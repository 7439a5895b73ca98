package workflow

import (
	"fmt"

	"errands/internal/pkg/errs"
)

// OrderStatus is the lifecycle state of a shopper order. Runner orders carry no status.
type OrderStatus string

const (
	// OrderMatching is the pre-match state of an order published by a shopper.
	OrderMatching OrderStatus = "MATCHING"
	// OrderRequesting is the pre-match state of a sub-order anchored by a runner-order request.
	OrderRequesting       OrderStatus = "REQUESTING"
	OrderMatched          OrderStatus = "MATCHED"
	OrderMatchFail        OrderStatus = "MATCH_FAIL"
	OrderDeliveredRequest OrderStatus = "DELIVERED_REQUEST"
	OrderDelivered        OrderStatus = "DELIVERED"
	OrderReviewRequest    OrderStatus = "REVIEW_REQUEST"
	OrderReviewed         OrderStatus = "REVIEWED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s OrderStatus) Validate() error {
	switch s {
	case OrderMatching, OrderRequesting, OrderMatched, OrderMatchFail,
		OrderDeliveredRequest, OrderDelivered, OrderReviewRequest, OrderReviewed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not an order status", s))
	}
}

// IsPreMatch reports whether no request has been matched yet.
func (s OrderStatus) IsPreMatch() bool {
	return s == OrderMatching || s == OrderRequesting
}

func (s OrderStatus) String() string {
	return string(s)
}
