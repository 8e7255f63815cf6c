package domain

// Address holds the shipping destination embedded in an order.
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Zipcode string `json:"zipcode"`
}

// Order embeds product snapshots taken at add-time, not foreign keys.
// CustomerName and ProductsCount are derived display fields: CustomerName is
// resolved from the customers snapshot when a thunk settles, ProductsCount
// always equals len(Products).
type Order struct {
	ID            string    `json:"id"`
	Reference     string    `json:"reference"`
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName,omitempty"`
	Products      []Product `json:"products"`
	Amount        float64   `json:"amount"`
	ProductsCount int       `json:"productsCount"`
	OrderDate     string    `json:"orderDate"`
	ShippedDate   string    `json:"shippedDate,omitempty"`
	ShipAddress   Address   `json:"shipAddress"`
}

func (o Order) EntityID() string { return o.ID }

// AddProduct appends a snapshot of p to the order's line items and keeps
// ProductsCount in lockstep.
func (o *Order) AddProduct(p Product) {
	o.Products = append(o.Products, p)
	o.ProductsCount = len(o.Products)
}

// RemoveProduct removes the first line item with the given product id.
// Removing an absent id leaves the order unchanged.
func (o *Order) RemoveProduct(productID string) {
	for i, p := range o.Products {
		if p.ID == productID {
			o.Products = append(o.Products[:i], o.Products[i+1:]...)
			break
		}
	}
	o.ProductsCount = len(o.Products)
}
