package domain

import "time"

type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// Next returns the status an order moves to when it is processed.
// Delivered is terminal.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusProcessing:
		return StatusShipped
	default:
		return StatusDelivered
	}
}

type ShippingInfo struct {
	Address string `json:"address" bson:"address" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
	State   string `json:"state" bson:"state" validate:"required"`
	Pincode int    `json:"pincode" bson:"pincode" validate:"required"`
	Country string `json:"country" bson:"country" validate:"required"`
}

type OrderItem struct {
	Name      string  `json:"name" bson:"name" validate:"required"`
	Photo     string  `json:"photo" bson:"photo"`
	ProductID string  `json:"productId" bson:"productId" validate:"required"`
	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"gt=0"`
}

type Order struct {
	ID              string       `json:"_id" bson:"_id"`
	ShippingInfo    ShippingInfo `json:"shippingInfo" bson:"shippingInfo"`
	User            string       `json:"user" bson:"user"`
	Subtotal        float64      `json:"subtotal" bson:"subtotal"`
	Tax             float64      `json:"tax" bson:"tax"`
	ShippingCharges float64      `json:"shippingCharges" bson:"shippingCharges"`
	Discount        float64      `json:"discount" bson:"discount"`
	Total           float64      `json:"total" bson:"total"`
	Status          OrderStatus  `json:"status" bson:"status"`
	OrderItems      []OrderItem  `json:"orderItems" bson:"orderItems"`
	CreatedAt       time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt" bson:"updatedAt"`
}

func (o Order) Created() time.Time { return o.CreatedAt }

// ProductIDs lists the product of every line item, in item order.
func (o Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		ids = append(ids, it.ProductID)
	}
	return ids
}

// NewOrder is the payload accepted when an order is placed, over HTTP or
// from the order stream.
type NewOrder struct {
	ShippingInfo    ShippingInfo `json:"shippingInfo" validate:"required"`
	User            string       `json:"user" validate:"required"`
	Subtotal        float64      `json:"subtotal" validate:"gt=0"`
	Tax             float64      `json:"tax" validate:"gte=0"`
	ShippingCharges float64      `json:"shippingCharges" validate:"gte=0"`
	Discount        float64      `json:"discount" validate:"gte=0"`
	Total           float64      `json:"total" validate:"gt=0"`
	Status          OrderStatus  `json:"status" validate:"omitempty,oneof=Processing Shipped Delivered"`
	OrderItems      []OrderItem  `json:"orderItems" validate:"required,min=1,dive"`
}
