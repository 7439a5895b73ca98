package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/guard"
)

var ErrDeleteRunnerOrderCommandIsNotConstructed = errors.New(
	"DeleteRunnerOrderCommand must be created via NewDeleteRunnerOrderCommand constructor",
)

type DeleteRunnerOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRunnerOrderCommand(actorID, orderID kernel.UUID) (DeleteRunnerOrderCommand, error) {
	cmd := DeleteRunnerOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requiredID("actor id", actorID, &cmd.actorID),
		requiredID("order id", orderID, &cmd.orderID),
	); err != nil {
		return DeleteRunnerOrderCommand{}, err
	}

	return cmd, nil
}

func (c DeleteRunnerOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRunnerOrderCommandIsNotConstructed)
}

func (c DeleteRunnerOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteRunnerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
