package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/pkg/guard"
)

var ErrCreateRunnerOrderCommandIsNotConstructed = errors.New(
	"CreateRunnerOrderCommand must be created via NewCreateRunnerOrderCommand constructor",
)

// CreateRunnerOrderCommand publishes a runner's offer to run errands.
type CreateRunnerOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	runnerID kernel.UUID
	details  runnerorder.Details

	guard guard.ConstructorGuard
}

func NewCreateRunnerOrderCommand(
	orderID, runnerID kernel.UUID,
	details runnerorder.Details,
) (CreateRunnerOrderCommand, error) {
	cmd := CreateRunnerOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredID("order id", orderID, &cmd.orderID),
		requiredID("runner id", runnerID, &cmd.runnerID),
	); err != nil {
		return CreateRunnerOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateRunnerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRunnerOrderCommandIsNotConstructed)
}

func (c CreateRunnerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateRunnerOrderCommand) RunnerID() kernel.UUID {
	return c.runnerID
}

func (c CreateRunnerOrderCommand) Details() runnerorder.Details {
	return c.details
}
