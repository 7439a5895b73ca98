package shopperorderrepo

import (
	"time"

	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/shopperorder"
	"errands/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShopperOrderDTO struct {
	OrderID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopperID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title             string          `gorm:"type:varchar(100);not null"`
	Priority          string          `gorm:"type:varchar(32)"`
	Contents          string          `gorm:"type:text"`
	ReceiveStart      *time.Time      `gorm:"type:timestamptz"`
	ReceiveEnd        *time.Time      `gorm:"type:timestamptz"`
	ReceiveAddress    string          `gorm:"type:varchar(255)"`
	AdditionalMessage string          `gorm:"type:text"`
	EstimatedPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	RunnerTip         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status            string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null;index"`

	Items    []ItemDTO    `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
	Images   []ImageDTO   `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
	Requests []RequestDTO `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

func (ShopperOrderDTO) TableName() string {
	return "shopper_orders"
}

type ItemDTO struct {
	ItemID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name    string          `gorm:"type:varchar(100);not null"`
	Count   int             `gorm:"type:int;not null"`
	Price   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}

func (ItemDTO) TableName() string {
	return "shopper_order_items"
}

type ImageDTO struct {
	ImageID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename string    `gorm:"type:varchar(255);not null"`
	Size     int64     `gorm:"type:bigint;not null"`
	Path     string    `gorm:"type:varchar(512);not null"`
}

func (ImageDTO) TableName() string {
	return "shopper_order_images"
}

type RequestDTO struct {
	RequestID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RunnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RequestStatus string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (RequestDTO) TableName() string {
	return "shopper_order_requests"
}

func fromDomain(order *shopperorder.ShopperOrder) ShopperOrderDTO {
	orderID := order.ID().Bytes()
	details := order.Details()

	items := make([]ItemDTO, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, ItemDTO{
			ItemID:  item.ID().Bytes(),
			OrderID: orderID,
			Name:    item.Name(),
			Count:   item.Count(),
			Price:   item.Price().Decimal(),
		})
	}

	images := make([]ImageDTO, 0, len(order.Images()))
	for _, image := range order.Images() {
		images = append(images, ImageDTO{
			ImageID:  image.ID().Bytes(),
			OrderID:  orderID,
			Filename: image.Filename(),
			Size:     image.Size(),
			Path:     image.Path(),
		})
	}

	return ShopperOrderDTO{
		OrderID:           orderID,
		ShopperID:         order.ShopperID().Bytes(),
		Title:             details.Title,
		Priority:          details.Priority,
		Contents:          details.Contents,
		ReceiveStart:      details.ReceiveWindow.Start(),
		ReceiveEnd:        details.ReceiveWindow.End(),
		ReceiveAddress:    details.ReceiveAddress,
		AdditionalMessage: details.AdditionalMessage,
		EstimatedPrice:    details.EstimatedPrice.Decimal(),
		RunnerTip:         details.RunnerTip.Decimal(),
		Status:            order.Status().String(),
		CreatedAt:         order.CreatedAt(),
		UpdatedAt:         order.UpdatedAt(),
		Items:             items,
		Images:            images,
	}
}

func toDomain(dto ShopperOrderDTO) (*shopperorder.ShopperOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	shopperID, err := kernel.UUIDFromBytes(dto.ShopperID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.ReceiveStart, dto.ReceiveEnd)
	if err != nil {
		return nil, err
	}

	estimatedPrice, err := kernel.NewMoney(dto.EstimatedPrice)
	if err != nil {
		return nil, err
	}

	runnerTip, err := kernel.NewMoney(dto.RunnerTip)
	if err != nil {
		return nil, err
	}

	items := make([]*shopperorder.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	images := make([]*shopperorder.Image, 0, len(dto.Images))
	for _, imageDTO := range dto.Images {
		image, imageErr := imageToDomain(imageDTO)
		if imageErr != nil {
			return nil, imageErr
		}
		images = append(images, image)
	}

	return shopperorder.RestoreShopperOrder(
		id,
		shopperID,
		shopperorder.Details{
			Title:             dto.Title,
			Priority:          dto.Priority,
			Contents:          dto.Contents,
			ReceiveWindow:     window,
			ReceiveAddress:    dto.ReceiveAddress,
			AdditionalMessage: dto.AdditionalMessage,
			EstimatedPrice:    estimatedPrice,
			RunnerTip:         runnerTip,
		},
		workflow.OrderStatus(dto.Status),
		items,
		images,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*shopperorder.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return shopperorder.NewItem(id, dto.Name, dto.Count, price)
}

func imageToDomain(dto ImageDTO) (*shopperorder.Image, error) {
	id, err := kernel.UUIDFromBytes(dto.ImageID[:])
	if err != nil {
		return nil, err
	}

	return shopperorder.NewImage(id, dto.Filename, dto.Size, dto.Path)
}

func requestFromDomain(request *shopperorder.Request) RequestDTO {
	return RequestDTO{
		RequestID:     request.ID().Bytes(),
		OrderID:       request.OrderID().Bytes(),
		RunnerID:      request.RunnerID().Bytes(),
		RequestStatus: request.Status().String(),
		CreatedAt:     request.CreatedAt(),
		UpdatedAt:     request.UpdatedAt(),
	}
}

func requestToDomain(dto RequestDTO) (*shopperorder.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	runnerID, err := kernel.UUIDFromBytes(dto.RunnerID[:])
	if err != nil {
		return nil, err
	}

	return shopperorder.RestoreRequest(
		id, orderID, runnerID,
		workflow.RequestStatus(dto.RequestStatus),
		dto.CreatedAt, dto.UpdatedAt,
	)
}
