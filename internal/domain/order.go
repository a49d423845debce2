package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// CartItem is one requested product/quantity pair submitted at checkout.
// Quantity carries no lower bound here: non-positive values are coerced to 1
// by the checkout use case rather than rejected.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName  string     `json:"customer_name" binding:"required"`
	CustomerEmail string     `json:"customer_email" binding:"required"`
	Address       string     `json:"address" binding:"required"`
	Items         []CartItem `json:"items" binding:"required,min=1,dive"`
}

// OrderItem snapshots the product's id, name and unit price at checkout time,
// so later catalog changes never alter historical orders.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName  string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail string             `bson:"customer_email" json:"customer_email"`
	Address       string             `bson:"address" json:"address"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Total         float64            `bson:"total" json:"total"`
	Status        OrderStatus        `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
}

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
