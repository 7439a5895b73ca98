// Package runnerorder models the job offer a runner publishes and the Request a
// shopper files against it. Runner orders have no status of their own: the
// workflow state lives on each request and on the sub-order it anchors.
package runnerorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
)

const (
	maxMessageLength    = 500
	maxEstimatedMinutes = 24 * 60
	maxPayments         = 10
)

var ErrRunnerOrderIsNotConstructed = errors.New(
	"RunnerOrder must be created via NewRunnerOrder or RestoreRunnerOrder constructor",
)

// Details describe the offer. Message is required.
type Details struct {
	Message          string
	EstimatedMinutes int
	Introduce        string
	DistanceMeters   int
	ContactWindow    kernel.TimeWindow
	Address          string
	Payments         []string
}

// RunnerOrder is a runner's published offer.
type RunnerOrder struct {
	id        kernel.UUID
	runnerID  kernel.UUID
	details   Details
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func NewRunnerOrder(id, runnerID kernel.UUID, details Details) (*RunnerOrder, error) {
	order := &RunnerOrder{isConstructed: true}

	if err := errors.Join(
		order.setID(id),
		order.setRunnerID(runnerID),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	return order, nil
}

func RestoreRunnerOrder(
	id, runnerID kernel.UUID,
	details Details,
	createdAt, updatedAt time.Time,
) (*RunnerOrder, error) {
	order, err := NewRunnerOrder(id, runnerID, details)
	if err != nil {
		return nil, err
	}

	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

func (o *RunnerOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrRunnerOrderIsNotConstructed
	}
	return nil
}

func (o *RunnerOrder) IsEqual(other *RunnerOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *RunnerOrder) ID() kernel.UUID {
	return o.id
}

func (o *RunnerOrder) RunnerID() kernel.UUID {
	return o.runnerID
}

func (o *RunnerOrder) Details() Details {
	d := o.details
	d.Payments = append([]string(nil), o.details.Payments...)
	return d
}

func (o *RunnerOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *RunnerOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *RunnerOrder) IsOwnedBy(actorID kernel.UUID) bool {
	return o.runnerID.IsEqual(actorID)
}

func (o *RunnerOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *RunnerOrder) setRunnerID(runnerID kernel.UUID) error {
	if err := runnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("runner id", err)
	}
	o.runnerID = runnerID
	return nil
}

func (o *RunnerOrder) setDetails(details Details) error {
	details.Message = strings.TrimSpace(details.Message)
	if details.Message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if len([]rune(details.Message)) > maxMessageLength {
		return errs.NewValueIsInvalidErrorWithCause("message", fmt.Errorf("longer than %d characters", maxMessageLength))
	}
	if details.EstimatedMinutes < 0 || details.EstimatedMinutes > maxEstimatedMinutes {
		return errs.NewValueIsOutOfRangeError("estimated minutes", details.EstimatedMinutes, 0, maxEstimatedMinutes)
	}
	if details.DistanceMeters < 0 {
		return errs.NewValueIsOutOfRangeError("distance", details.DistanceMeters, 0, "unbounded")
	}

	payments, err := normalizePayments(details.Payments)
	if err != nil {
		return err
	}
	details.Payments = payments

	o.details = details
	return nil
}

// normalizePayments upper-cases, trims and de-duplicates payment methods,
// keeping their first-seen order.
func normalizePayments(payments []string) ([]string, error) {
	if len(payments) > maxPayments {
		return nil, errs.NewValueIsOutOfRangeError("payments", len(payments), 0, maxPayments)
	}

	seen := make(map[string]struct{}, len(payments))
	out := make([]string, 0, len(payments))
	for _, p := range payments {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			return nil, errs.NewValueIsInvalidError("payment method")
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
