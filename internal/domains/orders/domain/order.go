package domain

// Order is a placed purchase. It is immutable once stored.
//
// Fields are kept exactly as submitted. Qty carries no lower bound and User is
// taken at face value; neither is checked against the caller.
type Order struct {
	ID        string
	ProductID string
	Qty       int32
	User      string
}

// NewOrder builds an order without an identifier. The store assigns one on create.
func NewOrder(productID string, qty int32, user string) *Order {
	return &Order{
		ProductID: productID,
		Qty:       qty,
		User:      user,
	}
}
