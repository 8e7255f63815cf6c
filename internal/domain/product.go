package domain

// Product references its category by id. CategoryName is a display cache
// filled in at fetch time from the categories snapshot; it is not
// authoritative and may go stale until the next fetch.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
	NumInStock   int     `json:"numInStock"`
	UnitPrice    float64 `json:"unitPrice"`
}

func (p Product) EntityID() string { return p.ID }
