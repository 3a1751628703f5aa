package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail_inventory/internal/domain/customer"
	"retail_inventory/internal/domain/order"
	"retail_inventory/internal/domain/product"
	"retail_inventory/internal/domain/repository"
)

var fixedTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	return func() time.Time { return fixedTime }
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(fixedClock())
	ctx := context.Background()

	products := []*product.Product{
		mustProduct(t, "LAPTOP001", "Gaming Laptop", 1299.99, "Electronics", 15),
		mustProduct(t, "MOUSE001", "Wireless Mouse", 29.99, "Electronics", 50),
		mustProduct(t, "BOOK001", "Go Programming", 49.99, "Books", 25),
	}
	for _, p := range products {
		require.NoError(t, s.AddProduct(ctx, p))
	}

	alice, err := customer.New("CUST001", "Alice Johnson", "alice@example.com", "+1234567890", "")
	require.NoError(t, err)
	require.NoError(t, s.SaveCustomer(ctx, alice))

	return s
}

func mustProduct(t *testing.T, id, name string, price float64, category string, stock int) *product.Product {
	t.Helper()
	p, err := product.New(id, name, price, category, stock, fixedTime)
	require.NoError(t, err)
	return p
}

func TestAddProduct_Duplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AddProduct(ctx, mustProduct(t, "LAPTOP001", "Another Laptop", 999, "Electronics", 1))

	assert.ErrorIs(t, err, product.ErrAlreadyExists)
}

func TestFindProduct_Miss(t *testing.T) {
	s := newTestStore(t)

	p, err := s.FindProduct(context.Background(), "UNKNOWN")

	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestUpdateProductStock_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateProductStock(context.Background(), "UNKNOWN", 5)

	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestCreateOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{
		{ProductID: "LAPTOP001", Quantity: 1},
		{ProductID: "MOUSE001", Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-000001", o.ID)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, fixedTime, o.CreatedAt)
	assert.InDelta(t, 1359.97, o.Total(), 1e-9)

	// stock đã bị trừ cho từng line
	laptop, _ := s.FindProduct(ctx, "LAPTOP001")
	mouse, _ := s.FindProduct(ctx, "MOUSE001")
	assert.Equal(t, 14, laptop.StockQuantity)
	assert.Equal(t, 48, mouse.StockQuantity)
}

func TestCreateOrder_SequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{{ProductID: "BOOK001", Quantity: 1}})
	require.NoError(t, err)
	second, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{{ProductID: "BOOK001", Quantity: 1}})
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001", first.ID)
	assert.Equal(t, "ORD-000002", second.ID)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateOrder(context.Background(), "NOBODY", []repository.OrderLine{{ProductID: "BOOK001", Quantity: 1}})

	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateOrder(context.Background(), "CUST001", []repository.OrderLine{{ProductID: "UNKNOWN", Quantity: 1}})

	assert.ErrorIs(t, err, product.ErrNotFound)
}

// Order fail ở line thứ hai thì line đầu cũng không được trừ stock —
// repository state phải y nguyên như trước khi gọi.
func TestCreateOrder_InsufficientStock_AllOrNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{
		{ProductID: "LAPTOP001", Quantity: 1},
		{ProductID: "MOUSE001", Quantity: 51},
	})

	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	laptop, _ := s.FindProduct(ctx, "LAPTOP001")
	mouse, _ := s.FindProduct(ctx, "MOUSE001")
	assert.Equal(t, 15, laptop.StockQuantity)
	assert.Equal(t, 50, mouse.StockQuantity)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// order id tiếp theo vẫn bắt đầu từ 1
	o, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{{ProductID: "BOOK001", Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, "ORD-000001", o.ID)
}

// Hai line cùng một product: quantity phải được cộng dồn khi check stock.
// Từng line riêng lẻ đều dưới stock nhưng tổng vượt thì order fail
// và stock giữ nguyên.
func TestCreateOrder_CombinedQuantityExceedsStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{
		{ProductID: "LAPTOP001", Quantity: 10},
		{ProductID: "LAPTOP001", Quantity: 10},
	})

	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	laptop, _ := s.FindProduct(ctx, "LAPTOP001")
	assert.Equal(t, 15, laptop.StockQuantity)

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_DuplicateLinesWithinStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{
		{ProductID: "LAPTOP001", Quantity: 10},
		{ProductID: "LAPTOP001", Quantity: 5},
	})

	require.NoError(t, err)
	assert.Len(t, o.Items, 2)

	laptop, _ := s.FindProduct(ctx, "LAPTOP001")
	assert.Equal(t, 0, laptop.StockQuantity)
}

// Unit price chốt tại thời điểm đặt: đổi giá product sau đó
// không ảnh hưởng tổng của order cũ.
func TestCreateOrder_UnitPriceCaptured(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{{ProductID: "MOUSE001", Quantity: 2}})
	require.NoError(t, err)

	_, err = s.ApplyProductDiscount(ctx, "MOUSE001", 50)
	require.NoError(t, err)

	stored, err := s.FindOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 59.98, stored.Total(), 1e-9)
}

func TestSearchProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	min := 40.0
	max := 1300.0
	results, err := s.SearchProducts(ctx, repository.ProductFilter{
		Category: "Electronics",
		MinPrice: &min,
		MaxPrice: &max,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "LAPTOP001", results[0].ID)
}

func TestSearchProducts_NoFilter(t *testing.T) {
	s := newTestStore(t)

	results, err := s.SearchProducts(context.Background(), repository.ProductFilter{})

	require.NoError(t, err)
	assert.Len(t, results, 3)
}

// Pin behavior: min_price là pointer nên 0 explicit vẫn được áp dụng làm
// filter. Với giá luôn không âm, kết quả trùng với không filter — khác bản
// gốc ở chỗ semantics là "đã set", không phải "falsy nên bỏ qua".
func TestSearchProducts_ExplicitZeroMinPrice(t *testing.T) {
	s := newTestStore(t)

	zero := 0.0
	results, err := s.SearchProducts(context.Background(), repository.ProductFilter{MinPrice: &zero})

	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestLowStockProducts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	results, err := s.LowStockProducts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = s.UpdateProductStock(ctx, "LAPTOP001", -8)
	require.NoError(t, err)

	results, err = s.LowStockProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "LAPTOP001", results[0].ID)
}

// SaveCustomer ghi đè khi id trùng, không như AddProduct.
func TestSaveCustomer_Upsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	replacement, err := customer.New("CUST001", "Alice Cooper", "cooper@example.com", "", "")
	require.NoError(t, err)
	require.NoError(t, s.SaveCustomer(ctx, replacement))

	found, err := s.FindCustomer(ctx, "CUST001")
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", found.Name)
	assert.Equal(t, "cooper@example.com", found.Email)
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	o, err := s.CreateOrder(ctx, "CUST001", []repository.OrderLine{{ProductID: "BOOK001", Quantity: 1}})
	require.NoError(t, err)

	updated, err := s.UpdateOrderStatus(ctx, o.ID, order.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, updated.Status)

	_, err = s.UpdateOrderStatus(ctx, o.ID, "refunded")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)

	_, err = s.UpdateOrderStatus(ctx, "ORD-999999", order.StatusShipped)
	assert.ErrorIs(t, err, order.ErrNotFound)
}

// Store trả về copy: caller sửa kết quả không được ảnh hưởng state bên trong.
func TestFindProduct_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, _ := s.FindProduct(ctx, "BOOK001")
	p.StockQuantity = 0

	again, _ := s.FindProduct(ctx, "BOOK001")
	assert.Equal(t, 25, again.StockQuantity)
}
