package analytics

import (
	"context"
	"sort"
	"time"

	"retail_inventory/internal/domain/order"
	"retail_inventory/internal/domain/repository"
)

// DefaultTopLimit là số entry mặc định của bảng top selling.
const DefaultTopLimit = 10

// Service là view read-only trên inventory repository, không mutate state.
type Service struct {
	repo repository.Inventory
}

func NewService(repo repository.Inventory) *Service {
	return &Service{repo: repo}
}

type ProductSales struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

type CustomerStats struct {
	CustomerName      string  `json:"customer_name"`
	TotalOrders       int     `json:"total_orders"`
	TotalSpent        float64 `json:"total_spent"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// Revenue cộng tổng giá trị các order có status confirmed/shipped/delivered,
// nằm trong khoảng [start, end] (cả hai đầu inclusive, nil = không giới hạn).
func (s *Service) Revenue(ctx context.Context, start, end *time.Time) (float64, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, o := range orders {
		if start != nil && o.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && o.CreatedAt.After(*end) {
			continue
		}
		if order.CountsAsSale(o.Status) {
			total += o.Total()
		}
	}
	return total, nil
}

// TopSellingProducts gom quantity theo product trên các order đã bán,
// sort giảm dần theo quantity, tie-break theo product id tăng dần.
// Product không còn trong catalog sẽ bị bỏ qua.
func (s *Service) TopSellingProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	sold := make(map[string]int)
	for _, o := range orders {
		if !order.CountsAsSale(o.Status) {
			continue
		}
		for _, item := range o.Items {
			sold[item.ProductID] += item.Quantity
		}
	}

	ids := make([]string, 0, len(sold))
	for id := range sold {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if sold[ids[i]] != sold[ids[j]] {
			return sold[ids[i]] > sold[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > limit {
		ids = ids[:limit]
	}

	result := make([]ProductSales, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.FindProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		result = append(result, ProductSales{
			ProductID:    id,
			Name:         p.Name,
			QuantitySold: sold[id],
		})
	}
	return result, nil
}

// CustomerAnalytics trả về nil, nil khi customer không tồn tại.
// TotalOrders đếm cả order cancelled; TotalSpent loại cancelled;
// AverageOrderValue = TotalSpent / số order không cancelled, 0 khi không có.
func (s *Service) CustomerAnalytics(ctx context.Context, customerID string) (*CustomerStats, error) {
	c, err := s.repo.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	var (
		totalOrders int
		counted     int
		totalSpent  float64
	)
	for _, o := range orders {
		if o.CustomerID != customerID {
			continue
		}
		totalOrders++
		if o.Status != order.StatusCancelled {
			counted++
			totalSpent += o.Total()
		}
	}

	avg := 0.0
	if counted > 0 {
		avg = totalSpent / float64(counted)
	}

	return &CustomerStats{
		CustomerName:      c.Name,
		TotalOrders:       totalOrders,
		TotalSpent:        totalSpent,
		AverageOrderValue: avg,
	}, nil
}
