package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/guard"
)

var ErrDeleteShopperOrderRequestCommandIsNotConstructed = errors.New(
	"DeleteShopperOrderRequestCommand must be created via NewDeleteShopperOrderRequestCommand constructor",
)

// DeleteShopperOrderRequestCommand withdraws a runner's request.
type DeleteShopperOrderRequestCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShopperOrderRequestCommand(actorID, requestID kernel.UUID) (DeleteShopperOrderRequestCommand, error) {
	cmd := DeleteShopperOrderRequestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requiredID("actor id", actorID, &cmd.actorID),
		requiredID("request id", requestID, &cmd.requestID),
	); err != nil {
		return DeleteShopperOrderRequestCommand{}, err
	}

	return cmd, nil
}

func (c DeleteShopperOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShopperOrderRequestCommandIsNotConstructed)
}

func (c DeleteShopperOrderRequestCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteShopperOrderRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}
