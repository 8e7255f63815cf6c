package domain

// Customer is a CRM contact. IDs are assigned by the resource gateway and
// never change after creation.
type Customer struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Membership bool   `json:"membership"`
	Rewards    int    `json:"rewards"`
	Avatar     string `json:"avatar,omitempty"`
}

func (c Customer) EntityID() string { return c.ID }
