package repository

import (
	"context"

	"retail_inventory/internal/domain/customer"
	"retail_inventory/internal/domain/order"
	"retail_inventory/internal/domain/product"
)

// ProductFilter các filter được AND với nhau; field nil là không filter.
// MinPrice/MaxPrice là pointer nên 0 vẫn là giá trị filter hợp lệ.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// OrderLine là một dòng trong request tạo order, trước khi chốt unit price.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Inventory interface {
	AddProduct(ctx context.Context, p *product.Product) error
	FindProduct(ctx context.Context, id string) (*product.Product, error)
	ListProducts(ctx context.Context) ([]*product.Product, error)
	SearchProducts(ctx context.Context, filter ProductFilter) ([]*product.Product, error)
	LowStockProducts(ctx context.Context, threshold int) ([]*product.Product, error)
	UpdateProductStock(ctx context.Context, id string, delta int) (int, error)
	ApplyProductDiscount(ctx context.Context, id string, percentage float64) (float64, error)

	SaveCustomer(ctx context.Context, c *customer.Customer) error
	FindCustomer(ctx context.Context, id string) (*customer.Customer, error)

	CreateOrder(ctx context.Context, customerID string, lines []OrderLine) (*order.Order, error)
	FindOrder(ctx context.Context, id string) (*order.Order, error)
	ListOrders(ctx context.Context) ([]*order.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*order.Order, error)
}
