package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrDeleteShopperOrderCommandIsNotConstructed = errors.New(
	"DeleteShopperOrderCommand must be created via NewDeleteShopperOrderCommand constructor",
)

// DeleteShopperOrderCommand removes an order on behalf of the shopper who published it.
type DeleteShopperOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShopperOrderCommand(actorID, orderID kernel.UUID) (DeleteShopperOrderCommand, error) {
	cmd := DeleteShopperOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setOrderID(orderID),
	); err != nil {
		return DeleteShopperOrderCommand{}, err
	}

	return cmd, nil
}

func (c DeleteShopperOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShopperOrderCommandIsNotConstructed)
}

func (c DeleteShopperOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteShopperOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeleteShopperOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor id", err)
	}
	c.actorID = actorID
	return nil
}

func (c *DeleteShopperOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}
