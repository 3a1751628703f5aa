package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"retail_inventory/internal/domain/customer"
	"retail_inventory/internal/domain/order"
	"retail_inventory/internal/domain/product"
	"retail_inventory/internal/domain/repository"
)

// Store giữ toàn bộ state trong memory, không persistence.
// Một RWMutex duy nhất serialize mọi mutation — CreateOrder cần
// all-or-nothing trên nhiều product nên phải giữ write lock trọn vẹn
// từ lúc validate đến lúc trừ stock.
type Store struct {
	mu        sync.RWMutex
	products  map[string]*product.Product
	customers map[string]*customer.Customer
	orders    map[string]*order.Order
	orderSeq  int
	now       func() time.Time
}

// NewStore tạo store rỗng. now được inject để test kiểm soát được timestamp;
// truyền nil sẽ dùng time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		products:  make(map[string]*product.Product),
		customers: make(map[string]*customer.Customer),
		orders:    make(map[string]*order.Order),
		now:       now,
	}
}

func (s *Store) AddProduct(ctx context.Context, p *product.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; ok {
		return fmt.Errorf("product %s: %w", p.ID, product.ErrAlreadyExists)
	}
	s.products[p.ID] = p
	return nil
}

// FindProduct trả về nil, nil khi không tìm thấy — giống semantics
// của một repository query không có row.
func (s *Store) FindProduct(ctx context.Context, id string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotProducts(func(*product.Product) bool { return true }), nil
}

func (s *Store) SearchProducts(ctx context.Context, filter repository.ProductFilter) ([]*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotProducts(func(p *product.Product) bool {
		if filter.Category != "" && p.Category != filter.Category {
			return false
		}
		// MinPrice/MaxPrice là pointer: filter 0 vẫn được áp dụng,
		// khác với bản gốc coi 0 là "không set".
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			return false
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			return false
		}
		return true
	}), nil
}

func (s *Store) LowStockProducts(ctx context.Context, threshold int) ([]*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotProducts(func(p *product.Product) bool {
		return p.StockQuantity <= threshold
	}), nil
}

func (s *Store) UpdateProductStock(ctx context.Context, id string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return 0, fmt.Errorf("product %s: %w", id, product.ErrNotFound)
	}
	return p.UpdateStock(delta)
}

func (s *Store) ApplyProductDiscount(ctx context.Context, id string, percentage float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return 0, fmt.Errorf("product %s: %w", id, product.ErrNotFound)
	}
	return p.ApplyDiscount(percentage)
}

// SaveCustomer là upsert: id đã tồn tại sẽ bị ghi đè, không báo lỗi.
func (s *Store) SaveCustomer(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return fmt.Errorf("customer is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers[c.ID] = c
	return nil
}

func (s *Store) FindCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

// CreateOrder validate toàn bộ lines trước, chỉ khi tất cả pass mới
// sinh id, lưu order và trừ stock. Fail ở bất kỳ line nào thì state
// giữ nguyên hoàn toàn. Nhiều line cùng một product được cộng dồn
// quantity khi check stock.
func (s *Store) CreateOrder(ctx context.Context, customerID string, lines []repository.OrderLine) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, fmt.Errorf("customer %s: %w", customerID, customer.ErrNotFound)
	}

	items := make([]order.Item, 0, len(lines))
	requested := make(map[string]int, len(lines))
	for _, line := range lines {
		p, ok := s.products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, product.ErrNotFound)
		}

		item, err := order.NewItem(line.ProductID, line.Quantity, p.Price)
		if err != nil {
			return nil, err
		}

		requested[line.ProductID] += line.Quantity
		if p.StockQuantity < requested[line.ProductID] {
			return nil, fmt.Errorf("%s: %w", p.Name, product.ErrInsufficientStock)
		}
		items = append(items, item)
	}

	s.orderSeq++
	id := fmt.Sprintf("ORD-%06d", s.orderSeq)

	o, err := order.New(id, customerID, items, s.now().UTC())
	if err != nil {
		s.orderSeq--
		return nil, err
	}
	s.orders[id] = o

	for _, item := range items {
		s.products[item.ProductID].StockQuantity -= item.Quantity
	}

	cp := cloneOrder(o)
	return cp, nil
}

func (s *Store) FindOrder(ctx context.Context, id string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (s *Store) ListOrders(ctx context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	// id tuần tự nên sort theo id = sort theo thứ tự tạo
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, order.ErrNotFound)
	}
	if err := o.UpdateStatus(status); err != nil {
		return nil, err
	}
	return cloneOrder(o), nil
}

// cloneOrder copy order kèm items slice riêng, tránh caller giữ
// reference vào state bên trong store.
func cloneOrder(o *order.Order) *order.Order {
	cp := *o
	cp.Items = append([]order.Item(nil), o.Items...)
	return &cp
}

// snapshotProducts copy các product match predicate, sort theo id
// cho output deterministic. Caller phải giữ lock.
func (s *Store) snapshotProducts(match func(*product.Product) bool) []*product.Product {
	out := make([]*product.Product, 0, len(s.products))
	for _, p := range s.products {
		if match(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
