package workflow

import (
	"fmt"

	"errands/internal/pkg/errs"
)

// RequestStatus is the lifecycle state of a request.
type RequestStatus string

const (
	RequestRequesting       RequestStatus = "REQUESTING"
	RequestMatched          RequestStatus = "MATCHED"
	RequestMatchFail        RequestStatus = "MATCH_FAIL"
	RequestDeliveredRequest RequestStatus = "DELIVERED_REQUEST"
	RequestDelivered        RequestStatus = "DELIVERED"
	RequestReviewRequest    RequestStatus = "REVIEW_REQUEST"
	RequestReviewed         RequestStatus = "REVIEWED"
)

// requestPredecessors holds the single legal predecessor of every reachable state.
// REQUESTING is the initial state and has none.
//
//nolint:exhaustive // REQUESTING has no predecessor
var requestPredecessors = map[RequestStatus]RequestStatus{
	RequestMatched:          RequestRequesting,
	RequestMatchFail:        RequestRequesting,
	RequestDeliveredRequest: RequestMatched,
	RequestDelivered:        RequestDeliveredRequest,
	RequestReviewRequest:    RequestDelivered,
	RequestReviewed:         RequestReviewRequest,
}

// ParseRequestStatus validates a boundary string.
func ParseRequestStatus(s string) (RequestStatus, error) {
	status := RequestStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s RequestStatus) Validate() error {
	if s == RequestRequesting {
		return nil
	}
	if _, ok := requestPredecessors[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("request status", fmt.Errorf("%q is not a request status", s))
	}
	return nil
}

// Predecessor returns the state a request must be in to move to s.
func (s RequestStatus) Predecessor() (RequestStatus, bool) {
	p, ok := requestPredecessors[s]
	return p, ok
}

// IsTerminal reports whether no transition leaves s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestMatchFail || s == RequestReviewed
}

// IsDeletable reports whether the creator may still withdraw a request in s.
func (s RequestStatus) IsDeletable() bool {
	return s == RequestRequesting || s == RequestMatchFail
}

func (s RequestStatus) String() string {
	return string(s)
}
