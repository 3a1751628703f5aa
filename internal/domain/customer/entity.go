package customer

type Customer struct {
	ID      string `json:"customer_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func New(id, name, email, phone, address string) (*Customer, error) {
	if id == "" || name == "" || email == "" {
		return nil, ErrMissingField
	}

	return &Customer{
		ID:      id,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}, nil
}

// ContactInfo luôn chứa email; phone/address chỉ xuất hiện khi có giá trị.
func (c *Customer) ContactInfo() map[string]string {
	contact := map[string]string{"email": c.Email}
	if c.Phone != "" {
		contact["phone"] = c.Phone
	}
	if c.Address != "" {
		contact["address"] = c.Address
	}
	return contact
}
