package order

// Order lifecycle labels. Không có state machine — status nào cũng có thể
// chuyển sang status khác, miễn là nằm trong tập hợp lệ.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusShipped:   {},
	StatusDelivered: {},
	StatusCancelled: {},
}

func IsValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}

// CountsAsSale báo order có được tính vào doanh thu và thống kê bán hàng không.
// Pending và cancelled không tính.
func CountsAsSale(status string) bool {
	switch status {
	case StatusConfirmed, StatusShipped, StatusDelivered:
		return true
	}
	return false
}
