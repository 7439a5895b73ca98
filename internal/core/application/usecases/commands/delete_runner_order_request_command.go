package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/guard"
)

var ErrDeleteRunnerOrderRequestCommandIsNotConstructed = errors.New(
	"DeleteRunnerOrderRequestCommand must be created via NewDeleteRunnerOrderRequestCommand constructor",
)

// DeleteRunnerOrderRequestCommand withdraws a shopper's request together with
// its shopping list.
type DeleteRunnerOrderRequestCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteRunnerOrderRequestCommand(actorID, requestID kernel.UUID) (DeleteRunnerOrderRequestCommand, error) {
	cmd := DeleteRunnerOrderRequestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requiredID("actor id", actorID, &cmd.actorID),
		requiredID("request id", requestID, &cmd.requestID),
	); err != nil {
		return DeleteRunnerOrderRequestCommand{}, err
	}

	return cmd, nil
}

func (c DeleteRunnerOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRunnerOrderRequestCommandIsNotConstructed)
}

func (c DeleteRunnerOrderRequestCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteRunnerOrderRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}
