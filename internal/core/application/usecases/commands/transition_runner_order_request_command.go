package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/guard"
)

var ErrTransitionRunnerOrderRequestCommandIsNotConstructed = errors.New(
	"TransitionRunnerOrderRequestCommand must be created via NewTransitionRunnerOrderRequestCommand constructor",
)

// TransitionRunnerOrderRequestCommand moves a shopper's request on a runner
// offer, and the sub-order it anchors, to TargetStatus.
type TransitionRunnerOrderRequestCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	targetStatus string

	guard guard.ConstructorGuard
}

func NewTransitionRunnerOrderRequestCommand(
	requestID kernel.UUID,
	targetStatus string,
) (TransitionRunnerOrderRequestCommand, error) {
	cmd := TransitionRunnerOrderRequestCommand{
		targetStatus: targetStatus,
		guard:        guard.NewConstructorGuard(),
	}

	if err := requiredID("request id", requestID, &cmd.requestID); err != nil {
		return TransitionRunnerOrderRequestCommand{}, err
	}

	return cmd, nil
}

func (c TransitionRunnerOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrTransitionRunnerOrderRequestCommandIsNotConstructed)
}

func (c TransitionRunnerOrderRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c TransitionRunnerOrderRequestCommand) TargetStatus() string {
	return c.targetStatus
}
