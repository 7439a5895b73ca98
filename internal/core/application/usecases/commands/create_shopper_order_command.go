package commands

import (
	"errors"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/pkg/errs"
	"errands/internal/pkg/guard"
)

var ErrCreateShopperOrderCommandIsNotConstructed = errors.New(
	"CreateShopperOrderCommand must be created via NewCreateShopperOrderCommand constructor",
)

// CreateShopperOrderCommand publishes a shopping job together with its
// shopping list and images.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("3.20")
//	cmd, err := NewCreateShopperOrderCommand(kernel.NewUUID(), shopperID,
//	    shopperorder.Details{Title: "weekly groceries"},
//	    []ItemInput{{Name: "eggs", Count: 12, Price: price}}, nil)
type CreateShopperOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	shopperID kernel.UUID
	details   shopperorder.Details
	items     []ItemInput
	images    []ImageInput

	guard guard.ConstructorGuard
}

func NewCreateShopperOrderCommand(
	orderID kernel.UUID,
	shopperID kernel.UUID,
	details shopperorder.Details,
	items []ItemInput,
	images []ImageInput,
) (CreateShopperOrderCommand, error) {
	cmd := CreateShopperOrderCommand{
		details: details,
		items:   append([]ItemInput(nil), items...),
		images:  append([]ImageInput(nil), images...),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShopperID(shopperID),
	); err != nil {
		return CreateShopperOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateShopperOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateShopperOrderCommandIsNotConstructed)
}

func (c CreateShopperOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateShopperOrderCommand) ShopperID() kernel.UUID {
	return c.shopperID
}

func (c CreateShopperOrderCommand) Details() shopperorder.Details {
	return c.details
}

func (c CreateShopperOrderCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}

func (c CreateShopperOrderCommand) Images() []ImageInput {
	return append([]ImageInput(nil), c.images...)
}

func (c *CreateShopperOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *CreateShopperOrderCommand) setShopperID(shopperID kernel.UUID) error {
	if err := shopperID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopper id", err)
	}
	c.shopperID = shopperID
	return nil
}
