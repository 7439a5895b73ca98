package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrCreateShopperOrderRequestCommandIsNotConstructed = errors.New(
	"CreateShopperOrderRequestCommand must be created via NewCreateShopperOrderRequestCommand constructor",
)

// CreateShopperOrderRequestCommand files a runner's request to take a shopper order.
type CreateShopperOrderRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	orderID   kernel.UUID
	runnerID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateShopperOrderRequestCommand(
	requestID, orderID, runnerID kernel.UUID,
) (CreateShopperOrderRequestCommand, error) {
	cmd := CreateShopperOrderRequestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requiredID("request id", requestID, &cmd.requestID),
		requiredID("order id", orderID, &cmd.orderID),
		requiredID("runner id", runnerID, &cmd.runnerID),
	); err != nil {
		return CreateShopperOrderRequestCommand{}, err
	}

	return cmd, nil
}

func (c CreateShopperOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateShopperOrderRequestCommandIsNotConstructed)
}

func (c CreateShopperOrderRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateShopperOrderRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateShopperOrderRequestCommand) RunnerID() kernel.UUID {
	return c.runnerID
}

// requiredID validates id and stores it in dst.
func requiredID(name string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}
