package store

import (
	"sync"

	"crm-backoffice/internal/domain"
)

// Store composes the four resource slices and the auth slice into one
// addressable state tree. It is the only mutable state container for a
// session; there is no cross-slice reducer logic.
type Store struct {
	mu sync.Mutex

	Customers  *Slice[domain.Customer]
	Orders     *Slice[domain.Order]
	Products   *Slice[domain.Product]
	Categories *Slice[domain.Category]
	Auth       *AuthSlice

	subs []func()
}

// New returns an empty root store.
func New() *Store {
	st := &Store{}
	st.Customers = newSlice[domain.Customer](st, "customers", "customer")
	st.Orders = newSlice[domain.Order](st, "orders", "order")
	st.Products = newSlice[domain.Product](st, "products", "product")
	st.Categories = newSlice[domain.Category](st, "categories", "category")
	st.Auth = &AuthSlice{store: st}
	return st
}

// Subscribe registers fn to run after every applied action. Subscribers run
// outside the store lock, in registration order.
func (st *Store) Subscribe(fn func()) {
	st.mu.Lock()
	st.subs = append(st.subs, fn)
	st.mu.Unlock()
}

// Snapshot is a read-only copy of the resource collections, taken for
// cross-entity name resolution inside thunks.
type Snapshot struct {
	Customers  []domain.Customer
	Orders     []domain.Order
	Products   []domain.Product
	Categories []domain.Category
}

// Snapshot copies the current collections atomically.
func (st *Store) Snapshot() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return Snapshot{
		Customers:  st.Customers.items(),
		Orders:     st.Orders.items(),
		Products:   st.Products.items(),
		Categories: st.Categories.items(),
	}
}

func (st *Store) apply(fn func()) {
	st.mu.Lock()
	fn()
	subs := append([]func(){}, st.subs...)
	st.mu.Unlock()

	for _, sub := range subs {
		sub()
	}
}
