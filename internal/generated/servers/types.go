package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// User defines model for User.
type User struct {
	Id           openapi_types.UUID `json:"id"`
	Nickname     string             `json:"nickname"`
	Email        string             `json:"email,omitempty"`
	ProfileImage string             `json:"profileImage,omitempty"`
}

// Item defines model for Item.
type Item struct {
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Count int                `json:"count"`
	Price string             `json:"price"`
}

// NewItem defines model for NewItem.
type NewItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Price string `json:"price"`
}

// Image defines model for Image.
type Image struct {
	Id       openapi_types.UUID `json:"id"`
	Filename string             `json:"filename"`
	Size     int64              `json:"size"`
	Path     string             `json:"path"`
}

// NewImage defines model for NewImage.
type NewImage struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Path     string `json:"path"`
}

// NewShopperOrder defines model for NewShopperOrder. It is also the shopping
// list a shopper attaches to a request on a runner order.
type NewShopperOrder struct {
	Title             string     `json:"title"`
	Priority          *string    `json:"priority,omitempty"`
	Contents          *string    `json:"contents,omitempty"`
	ReceiveStart      *time.Time `json:"receiveStart,omitempty"`
	ReceiveEnd        *time.Time `json:"receiveEnd,omitempty"`
	ReceiveAddress    *string    `json:"receiveAddress,omitempty"`
	AdditionalMessage *string    `json:"additionalMessage,omitempty"`
	EstimatedPrice    *string    `json:"estimatedPrice,omitempty"`
	RunnerTip         *string    `json:"runnerTip,omitempty"`
	Items             []NewItem  `json:"items,omitempty"`
	Images            []NewImage `json:"images,omitempty"`
}

// NewRunnerOrderRequest defines model for NewRunnerOrderRequest.
type NewRunnerOrderRequest = NewShopperOrder

// ShopperOrder defines model for ShopperOrder.
type ShopperOrder struct {
	Id                openapi_types.UUID    `json:"id"`
	ShopperId         openapi_types.UUID    `json:"shopperId"`
	Shopper           *User                 `json:"shopper,omitempty"`
	Title             string                `json:"title"`
	Priority          string                `json:"priority,omitempty"`
	Contents          string                `json:"contents,omitempty"`
	ReceiveStart      *time.Time            `json:"receiveStart,omitempty"`
	ReceiveEnd        *time.Time            `json:"receiveEnd,omitempty"`
	ReceiveAddress    string                `json:"receiveAddress,omitempty"`
	AdditionalMessage string                `json:"additionalMessage,omitempty"`
	EstimatedPrice    string                `json:"estimatedPrice"`
	RunnerTip         string                `json:"runnerTip"`
	Status            string                `json:"status"`
	Items             []Item                `json:"items"`
	Images            []Image               `json:"images"`
	Requests          []ShopperOrderRequest `json:"requests,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

// ShopperOrderRequest defines model for ShopperOrderRequest.
type ShopperOrderRequest struct {
	Id        openapi_types.UUID `json:"id"`
	OrderId   openapi_types.UUID `json:"orderId"`
	RunnerId  openapi_types.UUID `json:"runnerId"`
	Runner    *User              `json:"runner,omitempty"`
	Status    string             `json:"status"`
	Order     *ShopperOrder      `json:"order,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// NewRunnerOrder defines model for NewRunnerOrder.
type NewRunnerOrder struct {
	Message          string     `json:"message"`
	EstimatedMinutes *int       `json:"estimatedMinutes,omitempty"`
	Introduce        *string    `json:"introduce,omitempty"`
	Distance         *int       `json:"distance,omitempty"`
	ContactStart     *time.Time `json:"contactStart,omitempty"`
	ContactEnd       *time.Time `json:"contactEnd,omitempty"`
	Address          *string    `json:"address,omitempty"`
	Payments         []string   `json:"payments,omitempty"`
}

// RunnerOrder defines model for RunnerOrder.
type RunnerOrder struct {
	Id               openapi_types.UUID   `json:"id"`
	RunnerId         openapi_types.UUID   `json:"runnerId"`
	Runner           *User                `json:"runner,omitempty"`
	Message          string               `json:"message"`
	EstimatedMinutes int                  `json:"estimatedMinutes"`
	Introduce        string               `json:"introduce,omitempty"`
	Distance         int                  `json:"distance"`
	ContactStart     *time.Time           `json:"contactStart,omitempty"`
	ContactEnd       *time.Time           `json:"contactEnd,omitempty"`
	Address          string               `json:"address,omitempty"`
	Payments         []string             `json:"payments"`
	Requests         []RunnerOrderRequest `json:"requests,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// RunnerOrderRequest defines model for RunnerOrderRequest.
type RunnerOrderRequest struct {
	Id             openapi_types.UUID `json:"id"`
	OrderId        openapi_types.UUID `json:"orderId"`
	ShopperId      openapi_types.UUID `json:"shopperId"`
	ShopperOrderId openapi_types.UUID `json:"shopperOrderId"`
	Shopper        *User              `json:"shopper,omitempty"`
	Status         string             `json:"status"`
	SubOrder       *ShopperOrder      `json:"subOrder,omitempty"`
	Order          *RunnerOrder       `json:"order,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// Deleted defines model for Deleted.
type Deleted struct {
	Deleted bool `json:"deleted"`
}

// ShopperOrderPage defines model for ShopperOrderPage.
type ShopperOrderPage struct {
	Total  int64          `json:"total"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
	Items  []ShopperOrder `json:"items"`
}

// ShopperOrderRequestPage defines model for ShopperOrderRequestPage.
type ShopperOrderRequestPage struct {
	Total  int64                 `json:"total"`
	Offset int                   `json:"offset"`
	Limit  int                   `json:"limit"`
	Items  []ShopperOrderRequest `json:"items"`
}

// RunnerOrderPage defines model for RunnerOrderPage.
type RunnerOrderPage struct {
	Total  int64         `json:"total"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
	Items  []RunnerOrder `json:"items"`
}

// RunnerOrderRequestPage defines model for RunnerOrderRequestPage.
type RunnerOrderRequestPage struct {
	Total  int64                `json:"total"`
	Offset int                  `json:"offset"`
	Limit  int                  `json:"limit"`
	Items  []RunnerOrderRequest `json:"items"`
}

// ListOrdersParams defines parameters for ListShopperOrders and ListRunnerOrders.
type ListOrdersParams struct {
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	// Mine restricts the listing to orders published by the caller.
	Mine *bool `form:"mine,omitempty" json:"mine,omitempty"`
}

// ListRequestsParams defines parameters for every request listing.
type ListRequestsParams struct {
	Offset *int    `form:"offset,omitempty" json:"offset,omitempty"`
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}
