package workflow

// Orientation tells which side published the order a request targets.
type Orientation string

const (
	// ShopperOrientation: a shopper publishes an order, runners request it.
	ShopperOrientation Orientation = "shopper"
	// RunnerOrientation: a runner publishes an offer, shoppers request it with their own sub-order.
	RunnerOrientation Orientation = "runner"
)

// InitialOrderStatus is the status an order starts in for this orientation.
func (o Orientation) InitialOrderStatus() OrderStatus {
	if o == RunnerOrientation {
		return OrderRequesting
	}
	return OrderMatching
}

func (o Orientation) String() string {
	return string(o)
}
