package runnerorderrepo

import (
	"time"

	"errands/internal/adapters/out/postgres/shopperorderrepo"
	"errands/internal/core/domain/model/kernel"
	"errands/internal/core/domain/model/runnerorder"
	"errands/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RunnerOrderDTO struct {
	OrderID          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	RunnerID         uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Message          string                      `gorm:"type:varchar(500);not null"`
	EstimatedMinutes int                         `gorm:"type:int;not null;default:0"`
	Introduce        string                      `gorm:"type:text"`
	Distance         int                         `gorm:"type:int;not null;default:0"`
	ContactStart     *time.Time                  `gorm:"type:timestamptz"`
	ContactEnd       *time.Time                  `gorm:"type:timestamptz"`
	Address          string                      `gorm:"type:varchar(255)"`
	Payments         datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt        time.Time                   `gorm:"not null"`
	UpdatedAt        time.Time                   `gorm:"not null;index"`

	Requests []RequestDTO `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

func (RunnerOrderDTO) TableName() string {
	return "runner_orders"
}

// RequestDTO links a shopper's sub-order to a runner order. Deleting either
// side removes the link.
type RequestDTO struct {
	RequestID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ShopperID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ShopperOrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	RequestStatus  string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	ShopperOrder *shopperorderrepo.ShopperOrderDTO `gorm:"foreignKey:ShopperOrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

func (RequestDTO) TableName() string {
	return "runner_order_requests"
}

func fromDomain(order *runnerorder.RunnerOrder) RunnerOrderDTO {
	details := order.Details()

	return RunnerOrderDTO{
		OrderID:          order.ID().Bytes(),
		RunnerID:         order.RunnerID().Bytes(),
		Message:          details.Message,
		EstimatedMinutes: details.EstimatedMinutes,
		Introduce:        details.Introduce,
		Distance:         details.DistanceMeters,
		ContactStart:     details.ContactWindow.Start(),
		ContactEnd:       details.ContactWindow.End(),
		Address:          details.Address,
		Payments:         datatypes.NewJSONSlice(details.Payments),
		CreatedAt:        order.CreatedAt(),
		UpdatedAt:        order.UpdatedAt(),
	}
}

func toDomain(dto RunnerOrderDTO) (*runnerorder.RunnerOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	runnerID, err := kernel.UUIDFromBytes(dto.RunnerID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.ContactStart, dto.ContactEnd)
	if err != nil {
		return nil, err
	}

	return runnerorder.RestoreRunnerOrder(
		id,
		runnerID,
		runnerorder.Details{
			Message:          dto.Message,
			EstimatedMinutes: dto.EstimatedMinutes,
			Introduce:        dto.Introduce,
			DistanceMeters:   dto.Distance,
			ContactWindow:    window,
			Address:          dto.Address,
			Payments:         []string(dto.Payments),
		},
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func requestFromDomain(request *runnerorder.Request) RequestDTO {
	return RequestDTO{
		RequestID:      request.ID().Bytes(),
		OrderID:        request.OrderID().Bytes(),
		ShopperID:      request.ShopperID().Bytes(),
		ShopperOrderID: request.ShopperOrderID().Bytes(),
		RequestStatus:  request.Status().String(),
		CreatedAt:      request.CreatedAt(),
		UpdatedAt:      request.UpdatedAt(),
	}
}

func requestToDomain(dto RequestDTO) (*runnerorder.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	shopperID, err := kernel.UUIDFromBytes(dto.ShopperID[:])
	if err != nil {
		return nil, err
	}

	shopperOrderID, err := kernel.UUIDFromBytes(dto.ShopperOrderID[:])
	if err != nil {
		return nil, err
	}

	return runnerorder.RestoreRequest(
		id, orderID, shopperID, shopperOrderID,
		workflow.RequestStatus(dto.RequestStatus),
		dto.CreatedAt, dto.UpdatedAt,
	)
}
