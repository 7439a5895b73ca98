package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/pkg/guard"
)

var ErrCreateRunnerOrderRequestCommandIsNotConstructed = errors.New(
	"CreateRunnerOrderRequestCommand must be created via NewCreateRunnerOrderRequestCommand constructor",
)

// CreateRunnerOrderRequestCommand files a shopper's request against a runner
// offer. The request carries a full shopping list, stored as a sub-order.
//
// Example:
//
//	cmd, err := NewCreateRunnerOrderRequestCommand(
//	    kernel.NewUUID(), kernel.NewUUID(), runnerOrderID, shopperID,
//	    shopperorder.Details{Title: "pharmacy run"}, items, nil)
type CreateRunnerOrderRequestCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	subOrderID kernel.UUID
	orderID    kernel.UUID
	shopperID  kernel.UUID
	details    shopperorder.Details
	items      []ItemInput
	images     []ImageInput

	guard guard.ConstructorGuard
}

func NewCreateRunnerOrderRequestCommand(
	requestID, subOrderID, orderID, shopperID kernel.UUID,
	details shopperorder.Details,
	items []ItemInput,
	images []ImageInput,
) (CreateRunnerOrderRequestCommand, error) {
	cmd := CreateRunnerOrderRequestCommand{
		details: details,
		items:   append([]ItemInput(nil), items...),
		images:  append([]ImageInput(nil), images...),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredID("request id", requestID, &cmd.requestID),
		requiredID("sub-order id", subOrderID, &cmd.subOrderID),
		requiredID("order id", orderID, &cmd.orderID),
		requiredID("shopper id", shopperID, &cmd.shopperID),
	); err != nil {
		return CreateRunnerOrderRequestCommand{}, err
	}

	return cmd, nil
}

func (c CreateRunnerOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRunnerOrderRequestCommandIsNotConstructed)
}

func (c CreateRunnerOrderRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// SubOrderID is the id given to the shopping list stored with the request.
func (c CreateRunnerOrderRequestCommand) SubOrderID() kernel.UUID {
	return c.subOrderID
}

func (c CreateRunnerOrderRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateRunnerOrderRequestCommand) ShopperID() kernel.UUID {
	return c.shopperID
}

func (c CreateRunnerOrderRequestCommand) Details() shopperorder.Details {
	return c.details
}

func (c CreateRunnerOrderRequestCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}

func (c CreateRunnerOrderRequestCommand) Images() []ImageInput {
	return append([]ImageInput(nil), c.images...)
}
