package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	p, err := New("LAPTOP001", "Gaming Laptop", 1299.99, "Electronics", 15, testCreatedAt)

	require.NoError(t, err)
	assert.Equal(t, "LAPTOP001", p.ID)
	assert.Equal(t, 15, p.StockQuantity)
	assert.Equal(t, testCreatedAt, p.CreatedAt)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		price   float64
		stock   int
		wantErr error
	}{
		{name: "missing id", id: "", price: 10, stock: 1, wantErr: ErrMissingField},
		{name: "negative price", id: "P1", price: -1, stock: 1, wantErr: ErrInvalidPrice},
		{name: "negative stock", id: "P1", price: 10, stock: -1, wantErr: ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, "Name", tt.price, "Cat", tt.stock, testCreatedAt)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateStock(t *testing.T) {
	p, _ := New("P1", "Widget", 10, "Misc", 5, testCreatedAt)

	quantity, err := p.UpdateStock(3)
	require.NoError(t, err)
	assert.Equal(t, 8, quantity)

	quantity, err = p.UpdateStock(-8)
	require.NoError(t, err)
	assert.Equal(t, 0, quantity)
}

func TestUpdateStock_Insufficient(t *testing.T) {
	p, _ := New("P1", "Widget", 10, "Misc", 5, testCreatedAt)

	_, err := p.UpdateStock(-6)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	// state không thay đổi khi fail
	assert.Equal(t, 5, p.StockQuantity)
}

func TestApplyDiscount(t *testing.T) {
	p, _ := New("P1", "Widget", 100, "Misc", 5, testCreatedAt)

	price, err := p.ApplyDiscount(0)
	require.NoError(t, err)
	assert.Equal(t, float64(100), price)

	// giảm giá cộng dồn: 10% hai lần trên 100 ra 81
	_, err = p.ApplyDiscount(10)
	require.NoError(t, err)
	price, err = p.ApplyDiscount(10)
	require.NoError(t, err)
	assert.InDelta(t, 81, price, 1e-9)
}

func TestApplyDiscount_Full(t *testing.T) {
	p, _ := New("P1", "Widget", 100, "Misc", 5, testCreatedAt)

	price, err := p.ApplyDiscount(100)

	require.NoError(t, err)
	assert.Equal(t, float64(0), price)
}

func TestApplyDiscount_OutOfRange(t *testing.T) {
	p, _ := New("P1", "Widget", 100, "Misc", 5, testCreatedAt)

	for _, percentage := range []float64{-1, 100.1, 200} {
		_, err := p.ApplyDiscount(percentage)
		assert.ErrorIs(t, err, ErrInvalidDiscount)
	}
	assert.Equal(t, float64(100), p.Price)
}

func TestRepresentation(t *testing.T) {
	p, _ := New("P1", "Widget", 9.5, "Misc", 3, testCreatedAt)

	rep := p.Representation()

	assert.Equal(t, "P1", rep["product_id"])
	assert.Equal(t, "Widget", rep["name"])
	assert.Equal(t, 9.5, rep["price"])
	assert.Equal(t, "Misc", rep["category"])
	assert.Equal(t, 3, rep["stock_quantity"])
	assert.Equal(t, "2025-01-15T10:30:00Z", rep["created_at"])
}
