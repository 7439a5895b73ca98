// Package queries contains read-only use cases. Handlers read straight from
// the database through GORM read models and return views; they never load
// aggregates or open a unit of work.
package queries

import (
	"time"

	"errands/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Read models map the tables owned by the postgres adapter. They are never migrated.

type userRow struct {
	ID           uuid.UUID
	Nickname     string
	Email        string
	ProfileImage string
}

func (userRow) TableName() string { return "users" }

type itemRow struct {
	ItemID  uuid.UUID
	OrderID uuid.UUID
	Name    string
	Count   int
	Price   decimal.Decimal
}

func (itemRow) TableName() string { return "shopper_order_items" }

type imageRow struct {
	ImageID  uuid.UUID
	OrderID  uuid.UUID
	Filename string
	Size     int64
	Path     string
}

func (imageRow) TableName() string { return "shopper_order_images" }

type shopperOrderRow struct {
	OrderID           uuid.UUID `gorm:"primaryKey"`
	ShopperID         uuid.UUID
	Title             string
	Priority          string
	Contents          string
	ReceiveStart      *time.Time
	ReceiveEnd        *time.Time
	ReceiveAddress    string
	AdditionalMessage string
	EstimatedPrice    decimal.Decimal
	RunnerTip         decimal.Decimal
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Shopper  *userRow            `gorm:"foreignKey:ShopperID;references:ID"`
	Items    []itemRow           `gorm:"foreignKey:OrderID;references:OrderID"`
	Images   []imageRow          `gorm:"foreignKey:OrderID;references:OrderID"`
	Requests []shopperRequestRow `gorm:"foreignKey:OrderID;references:OrderID"`
}

func (shopperOrderRow) TableName() string { return "shopper_orders" }

type shopperRequestRow struct {
	RequestID     uuid.UUID `gorm:"primaryKey"`
	OrderID       uuid.UUID
	RunnerID      uuid.UUID
	RequestStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Runner *userRow         `gorm:"foreignKey:RunnerID;references:ID"`
	Order  *shopperOrderRow `gorm:"foreignKey:OrderID;references:OrderID"`
}

func (shopperRequestRow) TableName() string { return "shopper_order_requests" }

type runnerOrderRow struct {
	OrderID          uuid.UUID `gorm:"primaryKey"`
	RunnerID         uuid.UUID
	Message          string
	EstimatedMinutes int
	Introduce        string
	Distance         int
	ContactStart     *time.Time
	ContactEnd       *time.Time
	Address          string
	Payments         datatypes.JSONSlice[string]
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Runner   *userRow           `gorm:"foreignKey:RunnerID;references:ID"`
	Requests []runnerRequestRow `gorm:"foreignKey:OrderID;references:OrderID"`
}

func (runnerOrderRow) TableName() string { return "runner_orders" }

type runnerRequestRow struct {
	RequestID      uuid.UUID `gorm:"primaryKey"`
	OrderID        uuid.UUID
	ShopperID      uuid.UUID
	ShopperOrderID uuid.UUID
	RequestStatus  string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Shopper  *userRow         `gorm:"foreignKey:ShopperID;references:ID"`
	SubOrder *shopperOrderRow `gorm:"foreignKey:ShopperOrderID;references:OrderID"`
	Order    *runnerOrderRow  `gorm:"foreignKey:OrderID;references:OrderID"`
}

func (runnerRequestRow) TableName() string { return "runner_order_requests" }

// newestFirst orders listings by last update with the id as tiebreak.
func newestFirst(idColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("updated_at DESC").Order(idColumn + " DESC")
	}
}

// createdFirst orders request listings by creation time with the id as tiebreak.
func createdFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("request_id DESC")
}

func liveRequests(db *gorm.DB) *gorm.DB {
	return db.Where("request_status <> ?", workflow.RequestMatchFail.String()).Scopes(createdFirst)
}
