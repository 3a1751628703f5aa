package product

import "time"

type Product struct {
	ID            string    `json:"product_id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// New tạo Product mới. createdAt được inject từ caller để test dễ kiểm soát thời gian.
func New(id, name string, price float64, category string, stock int, createdAt time.Time) (*Product, error) {
	if id == "" || name == "" {
		return nil, ErrMissingField
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:            id,
		Name:          name,
		Price:         price,
		Category:      category,
		StockQuantity: stock,
		CreatedAt:     createdAt,
	}, nil
}

// UpdateStock cộng delta vào stock hiện tại, trả về số lượng mới.
// Fail nếu kết quả âm và không thay đổi state.
func (p *Product) UpdateStock(delta int) (int, error) {
	if p.StockQuantity+delta < 0 {
		return 0, ErrInsufficientStock
	}
	p.StockQuantity += delta
	return p.StockQuantity, nil
}

// ApplyDiscount giảm giá theo phần trăm [0, 100]. Gọi nhiều lần sẽ cộng dồn.
func (p *Product) ApplyDiscount(percentage float64) (float64, error) {
	if percentage < 0 || percentage > 100 {
		return 0, ErrInvalidDiscount
	}
	p.Price = p.Price * (1 - percentage/100)
	return p.Price, nil
}

// Representation returns all fields as a serializable map, created_at in RFC 3339.
func (p *Product) Representation() map[string]any {
	return map[string]any{
		"product_id":     p.ID,
		"name":           p.Name,
		"price":          p.Price,
		"category":       p.Category,
		"stock_quantity": p.StockQuantity,
		"created_at":     p.CreatedAt.Format(time.RFC3339),
	}
}
