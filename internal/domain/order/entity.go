package order

import "time"

type Item struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// TotalPrice của một line = quantity * unit price chốt tại thời điểm đặt hàng.
func (i Item) TotalPrice() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

func NewItem(productID string, quantity int, unitPrice float64) (Item, error) {
	if productID == "" {
		return Item{}, ErrMissingField
	}
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}

	return Item{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Order giữ customer id thay vì tham chiếu trực tiếp tới Customer,
// resolve qua repository khi cần.
type Order struct {
	ID         string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Items      []Item    `json:"items"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func New(id, customerID string, items []Item, createdAt time.Time) (*Order, error) {
	if id == "" || customerID == "" {
		return nil, ErrMissingField
	}

	return &Order{
		ID:         id,
		CustomerID: customerID,
		Items:      items,
		Status:     StatusPending,
		CreatedAt:  createdAt,
	}, nil
}

// Total tính tổng giá trị order, không side effect.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.TotalPrice()
	}
	return total
}

// AddItem chỉ append, không kiểm tra stock — caller chịu trách nhiệm validate.
func (o *Order) AddItem(item Item) {
	o.Items = append(o.Items, item)
}

func (o *Order) UpdateStatus(newStatus string) error {
	if !IsValidStatus(newStatus) {
		return ErrInvalidStatus
	}
	o.Status = newStatus
	return nil
}
