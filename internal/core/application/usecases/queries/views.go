package queries

import (
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Page is one window of a listing together with the total row count.
type Page[T any] struct {
	Total  int64
	Offset int
	Limit  int
	Items  []T
}

type UserView struct {
	ID           kernel.UUID
	Nickname     string
	Email        string
	ProfileImage string
}

type ItemView struct {
	ID    kernel.UUID
	Name  string
	Count int
	Price kernel.Money
}

type ImageView struct {
	ID       kernel.UUID
	Filename string
	Size     int64
	Path     string
}

// ShopperOrderView is a shopper order (or a sub-order) with its owner and
// children. Requests is only filled by GetShopperOrderQueryHandler.
type ShopperOrderView struct {
	ID                kernel.UUID
	ShopperID         kernel.UUID
	Shopper           *UserView
	Title             string
	Priority          string
	Contents          string
	ReceiveStart      *time.Time
	ReceiveEnd        *time.Time
	ReceiveAddress    string
	AdditionalMessage string
	EstimatedPrice    kernel.Money
	RunnerTip         kernel.Money
	Status            workflow.OrderStatus
	Items             []ItemView
	Images            []ImageView
	Requests          []ShopperOrderRequestView
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ShopperOrderRequestView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	RunnerID  kernel.UUID
	Runner    *UserView
	Status    workflow.RequestStatus
	Order     *ShopperOrderView
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RunnerOrderView struct {
	ID               kernel.UUID
	RunnerID         kernel.UUID
	Runner           *UserView
	Message          string
	EstimatedMinutes int
	Introduce        string
	DistanceMeters   int
	ContactStart     *time.Time
	ContactEnd       *time.Time
	Address          string
	Payments         []string
	Requests         []RunnerOrderRequestView
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RunnerOrderRequestView struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	ShopperID      kernel.UUID
	ShopperOrderID kernel.UUID
	Shopper        *UserView
	Status         workflow.RequestStatus
	SubOrder       *ShopperOrderView
	Order          *RunnerOrderView
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// idOf converts a non-nil key column. Key columns are never nil.
func idOf(id uuid.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func moneyOf(amount decimal.Decimal) kernel.Money {
	m, err := kernel.NewMoney(amount)
	if err != nil {
		return kernel.Zero
	}
	return m
}

func userView(row *userRow) *UserView {
	if row == nil {
		return nil
	}
	return &UserView{
		ID:           idOf(row.ID),
		Nickname:     row.Nickname,
		Email:        row.Email,
		ProfileImage: row.ProfileImage,
	}
}

func shopperOrderView(row *shopperOrderRow) *ShopperOrderView {
	if row == nil {
		return nil
	}

	view := &ShopperOrderView{
		ID:                idOf(row.OrderID),
		ShopperID:         idOf(row.ShopperID),
		Shopper:           userView(row.Shopper),
		Title:             row.Title,
		Priority:          row.Priority,
		Contents:          row.Contents,
		ReceiveStart:      row.ReceiveStart,
		ReceiveEnd:        row.ReceiveEnd,
		ReceiveAddress:    row.ReceiveAddress,
		AdditionalMessage: row.AdditionalMessage,
		EstimatedPrice:    moneyOf(row.EstimatedPrice),
		RunnerTip:         moneyOf(row.RunnerTip),
		Status:            workflow.OrderStatus(row.Status),
		Items:             make([]ItemView, 0, len(row.Items)),
		Images:            make([]ImageView, 0, len(row.Images)),
		Requests:          make([]ShopperOrderRequestView, 0, len(row.Requests)),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}

	for _, item := range row.Items {
		view.Items = append(view.Items, ItemView{
			ID:    idOf(item.ItemID),
			Name:  item.Name,
			Count: item.Count,
			Price: moneyOf(item.Price),
		})
	}

	for _, image := range row.Images {
		view.Images = append(view.Images, ImageView{
			ID:       idOf(image.ImageID),
			Filename: image.Filename,
			Size:     image.Size,
			Path:     image.Path,
		})
	}

	for i := range row.Requests {
		view.Requests = append(view.Requests, *shopperRequestView(&row.Requests[i]))
	}

	return view
}

func shopperRequestView(row *shopperRequestRow) *ShopperOrderRequestView {
	return &ShopperOrderRequestView{
		ID:        idOf(row.RequestID),
		OrderID:   idOf(row.OrderID),
		RunnerID:  idOf(row.RunnerID),
		Runner:    userView(row.Runner),
		Status:    workflow.RequestStatus(row.RequestStatus),
		Order:     shopperOrderView(row.Order),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func runnerOrderView(row *runnerOrderRow) *RunnerOrderView {
	if row == nil {
		return nil
	}

	view := &RunnerOrderView{
		ID:               idOf(row.OrderID),
		RunnerID:         idOf(row.RunnerID),
		Runner:           userView(row.Runner),
		Message:          row.Message,
		EstimatedMinutes: row.EstimatedMinutes,
		Introduce:        row.Introduce,
		DistanceMeters:   row.Distance,
		ContactStart:     row.ContactStart,
		ContactEnd:       row.ContactEnd,
		Address:          row.Address,
		Payments:         append([]string{}, row.Payments...),
		Requests:         make([]RunnerOrderRequestView, 0, len(row.Requests)),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	for i := range row.Requests {
		view.Requests = append(view.Requests, *runnerRequestView(&row.Requests[i]))
	}

	return view
}

func runnerRequestView(row *runnerRequestRow) *RunnerOrderRequestView {
	return &RunnerOrderRequestView{
		ID:             idOf(row.RequestID),
		OrderID:        idOf(row.OrderID),
		ShopperID:      idOf(row.ShopperID),
		ShopperOrderID: idOf(row.ShopperOrderID),
		Shopper:        userView(row.Shopper),
		Status:         workflow.RequestStatus(row.RequestStatus),
		SubOrder:       shopperOrderView(row.SubOrder),
		Order:          runnerOrderView(row.Order),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
