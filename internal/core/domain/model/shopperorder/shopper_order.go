package shopperorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"
	"errands/internal/pkg/errs"
)

const (
	maxTitleLength    = 100
	maxPriorityLength = 32
	maxItems          = 50
	maxImages         = 10
)

var (
	// ErrShopperOrderIsNotConstructed is returned when a ShopperOrder was not built
	// by NewShopperOrder, NewSubOrder or RestoreShopperOrder.
	ErrShopperOrderIsNotConstructed = errors.New(
		"ShopperOrder must be created via NewShopperOrder, NewSubOrder or RestoreShopperOrder",
	)
)

// Details are the descriptive fields a shopper fills in. Title is required;
// everything else is optional.
type Details struct {
	Title             string
	Priority          string
	Contents          string
	ReceiveWindow     kernel.TimeWindow
	ReceiveAddress    string
	AdditionalMessage string
	EstimatedPrice    kernel.Money
	RunnerTip         kernel.Money
}

// ShopperOrder is the aggregate root for a shopping job and its children.
//
// Invariants:
//   - id and shopperID are valid UUIDs
//   - Title is non-empty
//   - items and images belong to this order only
//   - status is a valid workflow.OrderStatus
//
// Status is never changed in memory: transitions are compare-and-set writes
// performed by the repository inside a unit of work.
type ShopperOrder struct {
	id        kernel.UUID
	shopperID kernel.UUID
	details   Details
	status    workflow.OrderStatus
	items     []*Item
	images    []*Image
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShopperOrder creates an order published by a shopper. It starts in
// MATCHING and waits for runner requests.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("4.50")
//	item, _ := shopperorder.NewItem(kernel.NewUUID(), "milk", 2, price)
//	o, err := shopperorder.NewShopperOrder(kernel.NewUUID(), shopperID,
//	    shopperorder.Details{Title: "groceries"}, []*shopperorder.Item{item}, nil)
func NewShopperOrder(
	id kernel.UUID,
	shopperID kernel.UUID,
	details Details,
	items []*Item,
	images []*Image,
) (*ShopperOrder, error) {
	return newOrder(id, shopperID, details, items, images, workflow.ShopperOrientation.InitialOrderStatus())
}

// NewSubOrder creates the shopping list a shopper attaches to a request
// against a runner order. It starts in REQUESTING and is never listed as a
// published order.
func NewSubOrder(
	id kernel.UUID,
	shopperID kernel.UUID,
	details Details,
	items []*Item,
	images []*Image,
) (*ShopperOrder, error) {
	return newOrder(id, shopperID, details, items, images, workflow.RunnerOrientation.InitialOrderStatus())
}

// RestoreShopperOrder rebuilds an order loaded from storage.
func RestoreShopperOrder(
	id kernel.UUID,
	shopperID kernel.UUID,
	details Details,
	status workflow.OrderStatus,
	items []*Item,
	images []*Image,
	createdAt time.Time,
	updatedAt time.Time,
) (*ShopperOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := newOrder(id, shopperID, details, items, images, status)
	if err != nil {
		return nil, err
	}

	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

func newOrder(
	id kernel.UUID,
	shopperID kernel.UUID,
	details Details,
	items []*Item,
	images []*Image,
	status workflow.OrderStatus,
) (*ShopperOrder, error) {
	order := &ShopperOrder{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setShopperID(shopperID),
		order.setDetails(details),
		order.setItems(items),
		order.setImages(images),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the order was built through a constructor.
func (o *ShopperOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrShopperOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *ShopperOrder) IsEqual(other *ShopperOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *ShopperOrder) ID() kernel.UUID {
	return o.id
}

func (o *ShopperOrder) ShopperID() kernel.UUID {
	return o.shopperID
}

func (o *ShopperOrder) Details() Details {
	return o.details
}

func (o *ShopperOrder) Status() workflow.OrderStatus {
	return o.status
}

// Items returns a copy of the item slice.
func (o *ShopperOrder) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// Images returns a copy of the image slice.
func (o *ShopperOrder) Images() []*Image {
	return append([]*Image(nil), o.images...)
}

func (o *ShopperOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *ShopperOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether actorID published the order.
func (o *ShopperOrder) IsOwnedBy(actorID kernel.UUID) bool {
	return o.shopperID.IsEqual(actorID)
}

// ItemsTotal sums price times count over all items.
func (o *ShopperOrder) ItemsTotal() kernel.Money {
	total := kernel.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// ValidateAcceptsRequests fails unless the order is still waiting for a runner.
func (o *ShopperOrder) ValidateAcceptsRequests() error {
	if o.status != workflow.ShopperOrientation.InitialOrderStatus() {
		return errs.NewInvalidStatusTransitionError(
			"shopper order", o.status.String(), workflow.RequestRequesting.String(),
		)
	}
	return nil
}

func (o *ShopperOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ShopperOrder) setShopperID(shopperID kernel.UUID) error {
	if err := shopperID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopper id", err)
	}
	o.shopperID = shopperID
	return nil
}

func (o *ShopperOrder) setDetails(details Details) error {
	details.Title = strings.TrimSpace(details.Title)
	if details.Title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len([]rune(details.Title)) > maxTitleLength {
		return errs.NewValueIsInvalidErrorWithCause("title", fmt.Errorf("longer than %d characters", maxTitleLength))
	}
	if len(details.Priority) > maxPriorityLength {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("longer than %d characters", maxPriorityLength))
	}
	o.details = details
	return nil
}

func (o *ShopperOrder) setItems(items []*Item) error {
	if len(items) > maxItems {
		return errs.NewValueIsOutOfRangeError("items", len(items), 0, maxItems)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]*Item(nil), items...)
	return nil
}

func (o *ShopperOrder) setImages(images []*Image) error {
	if len(images) > maxImages {
		return errs.NewValueIsOutOfRangeError("images", len(images), 0, maxImages)
	}
	for _, image := range images {
		if err := image.Validate(); err != nil {
			return err
		}
	}
	o.images = append([]*Image(nil), images...)
	return nil
}
