package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/guard"
)

var ErrTransitionShopperOrderRequestCommandIsNotConstructed = errors.New(
	"TransitionShopperOrderRequestCommand must be created via NewTransitionShopperOrderRequestCommand constructor",
)

// TransitionShopperOrderRequestCommand moves a runner's request on a shopper
// order, and the order with it, to TargetStatus. The target is kept as the
// raw boundary string and resolved by the handler.
type TransitionShopperOrderRequestCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	targetStatus string

	guard guard.ConstructorGuard
}

func NewTransitionShopperOrderRequestCommand(
	requestID kernel.UUID,
	targetStatus string,
) (TransitionShopperOrderRequestCommand, error) {
	cmd := TransitionShopperOrderRequestCommand{
		targetStatus: targetStatus,
		guard:        guard.NewConstructorGuard(),
	}

	if err := requiredID("request id", requestID, &cmd.requestID); err != nil {
		return TransitionShopperOrderRequestCommand{}, err
	}

	return cmd, nil
}

func (c TransitionShopperOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShopperOrderRequestCommandIsNotConstructed)
}

func (c TransitionShopperOrderRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c TransitionShopperOrderRequestCommand) TargetStatus() string {
	return c.targetStatus
}
