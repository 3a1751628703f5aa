package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"retail_inventory/internal/domain/customer"
	"retail_inventory/internal/domain/order"
	"retail_inventory/internal/domain/product"
	"retail_inventory/internal/domain/repository"
	"retail_inventory/pkg/logger"
)

// DefaultLowStockThreshold dùng khi caller không chỉ định threshold.
const DefaultLowStockThreshold = 10

// Publisher đẩy order event ra message bus. Implementation thật là Kafka
// producer; khi không cấu hình broker thì dùng NopPublisher.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, ev order.Event) error
}

// NopPublisher bỏ qua mọi event, dùng cho demo và khi Kafka bị tắt.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(ctx context.Context, ev order.Event) error { return nil }

type Service struct {
	repo              repository.Inventory
	publisher         Publisher
	log               logger.Logger
	now               func() time.Time
	lowStockThreshold int
}

type AddProductCommand struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stock_quantity"`
}

type AddCustomerCommand struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type CreateOrderCommand struct {
	CustomerID string                 `json:"customer_id"`
	Items      []repository.OrderLine `json:"items"`
}

// Report là kết quả generate inventory report.
type Report struct {
	TotalProducts       int      `json:"total_products"`
	TotalInventoryValue float64  `json:"total_inventory_value"`
	LowStockCount       int      `json:"low_stock_count"`
	LowStockProducts    []string `json:"low_stock_products"`
}

func NewService(repo repository.Inventory, publisher Publisher, log logger.Logger, now func() time.Time, lowStockThreshold int) *Service {
	if now == nil {
		now = time.Now
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &Service{
		repo:              repo,
		publisher:         publisher,
		log:               log,
		now:               now,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *Service) AddProduct(ctx context.Context, cmd AddProductCommand) (*product.Product, error) {
	p, err := product.New(cmd.ProductID, cmd.Name, cmd.Price, cmd.Category, cmd.StockQuantity, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddProduct(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("product added",
		logger.String("product_id", p.ID),
		logger.String("category", p.Category),
		logger.Int("stock", p.StockQuantity))
	return p, nil
}

// GetProduct trả về nil, nil khi không tìm thấy; handler quyết định trả 404.
func (s *Service) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	return s.repo.FindProduct(ctx, id)
}

func (s *Service) SearchProducts(ctx context.Context, filter repository.ProductFilter) ([]*product.Product, error) {
	return s.repo.SearchProducts(ctx, filter)
}

// LowStockProducts nhận threshold dạng pointer: nil rơi về mặc định,
// 0 explicit là giá trị thật (chỉ các product hết hàng).
func (s *Service) LowStockProducts(ctx context.Context, threshold *int) ([]*product.Product, error) {
	t := s.lowStockThreshold
	if threshold != nil {
		t = *threshold
	}
	return s.repo.LowStockProducts(ctx, t)
}

func (s *Service) UpdateStock(ctx context.Context, productID string, delta int) (int, error) {
	quantity, err := s.repo.UpdateProductStock(ctx, productID, delta)
	if err != nil {
		return 0, err
	}

	s.log.Info("stock updated",
		logger.String("product_id", productID),
		logger.Int("delta", delta),
		logger.Int("quantity", quantity))
	return quantity, nil
}

func (s *Service) ApplyDiscount(ctx context.Context, productID string, percentage float64) (float64, error) {
	price, err := s.repo.ApplyProductDiscount(ctx, productID, percentage)
	if err != nil {
		return 0, err
	}

	s.log.Info("discount applied",
		logger.String("product_id", productID),
		logger.Float64("percentage", percentage),
		logger.Float64("price", price))
	return price, nil
}

// AddCustomer là upsert — id trùng sẽ ghi đè, khác với AddProduct.
func (s *Service) AddCustomer(ctx context.Context, cmd AddCustomerCommand) (*customer.Customer, error) {
	c, err := customer.New(cmd.CustomerID, cmd.Name, cmd.Email, cmd.Phone, cmd.Address)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveCustomer(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info("customer saved", logger.String("customer_id", c.ID))
	return c, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	return s.repo.FindCustomer(ctx, id)
}

// CreateOrder tạo order qua repository (all-or-nothing) rồi publish event.
// Event là best-effort: order đã được commit, publish fail chỉ log lại.
func (s *Service) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	o, err := s.repo.CreateOrder(ctx, cmd.CustomerID, cmd.Items)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("order created",
		logger.String("order_id", o.ID),
		logger.String("customer_id", o.CustomerID),
		logger.Float64("total", o.Total()))

	s.publish(ctx, order.EventCreated, o)
	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	return s.repo.FindOrder(ctx, id)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, orderID, status string) (*order.Order, error) {
	o, err := s.repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	s.log.Info("order status updated",
		logger.String("order_id", o.ID),
		logger.String("status", o.Status))

	s.publish(ctx, order.EventStatusChanged, o)
	return o, nil
}

// GenerateReport tổng hợp số lượng product, tổng giá trị tồn kho và
// danh sách low stock theo threshold mặc định.
func (s *Service) GenerateReport(ctx context.Context) (*Report, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	var totalValue float64
	for _, p := range products {
		totalValue += p.Price * float64(p.StockQuantity)
	}

	lowStock, err := s.repo.LowStockProducts(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(lowStock))
	for _, p := range lowStock {
		names = append(names, p.Name)
	}

	return &Report{
		TotalProducts:       len(products),
		TotalInventoryValue: totalValue,
		LowStockCount:       len(lowStock),
		LowStockProducts:    names,
	}, nil
}

func (s *Service) publish(ctx context.Context, eventType string, o *order.Order) {
	ev := order.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		Total:      o.Total(),
		OccurredAt: s.now().UTC(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, ev); err != nil {
		s.log.Error("publish order event failed",
			logger.String("order_id", o.ID),
			logger.String("type", eventType),
			logger.Error(err))
	}
}
