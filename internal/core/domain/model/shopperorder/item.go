package shopperorder

import (
	"errors"
	"fmt"
	"strings"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/pkg/errs"
)

const (
	maxItemNameLength = 100
	maxItemCount      = 999
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of a shopping list.
type Item struct {
	id    kernel.UUID
	name  string
	count int
	price kernel.Money

	isConstructed bool
}

// NewItem validates a shopping list line. The price is per unit.
func NewItem(id kernel.UUID, name string, count int, price kernel.Money) (*Item, error) {
	item := &Item{price: price, isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCount(count),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Count() int {
	return i.count
}

func (i *Item) Price() kernel.Money {
	return i.price
}

// Total is price times count.
func (i *Item) Total() kernel.Money {
	return i.price.Mul(i.count)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if len([]rune(name)) > maxItemNameLength {
		return errs.NewValueIsInvalidErrorWithCause("item name", fmt.Errorf("longer than %d characters", maxItemNameLength))
	}
	i.name = name
	return nil
}

func (i *Item) setCount(count int) error {
	if count < 1 || count > maxItemCount {
		return errs.NewValueIsOutOfRangeError("item count", count, 1, maxItemCount)
	}
	i.count = count
	return nil
}
