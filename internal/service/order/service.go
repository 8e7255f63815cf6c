package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"crm-backoffice/internal/domain"
	"crm-backoffice/internal/gateway"
	"crm-backoffice/internal/resolve"
	"crm-backoffice/internal/store"
)

type Gateway interface {
	List(ctx context.Context, filters map[string]string) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	Update(ctx context.Context, o domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Service runs the order request thunks. Orders carry two derived display
// fields: customerName, resolved from the customers snapshot at settlement
// time, and productsCount, recomputed from the embedded line items. Both
// may go stale if customers change later without a refetch; that staleness
// is the accepted trade-off of fetch-time denormalization.
type Service struct {
	gw       Gateway
	slice    *store.Slice[domain.Order]
	snapshot func() store.Snapshot
	logger   *log.Logger
}

func New(gw Gateway, st *store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{gw: gw, slice: st.Orders, snapshot: st.Snapshot, logger: logger}
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Order, error) {
	s.slice.Pending(store.OpFetchAll)
	rows, err := s.gw.List(ctx, nil)
	if err != nil {
		err = fmt.Errorf("fetch orders: %w", err)
		s.slice.Reject(store.OpFetchAll, err)
		return nil, err
	}
	enriched := s.enrichAll(rows)
	s.slice.FulfillList(store.OpFetchAll, enriched)
	return enriched, nil
}

func (s *Service) FetchByID(ctx context.Context, id string) (*domain.Order, error) {
	s.slice.Pending(store.OpFetchByID)
	o, err := s.gw.GetByID(ctx, id)
	if err != nil {
		err = fmt.Errorf("fetch order %s: %w", id, err)
		s.slice.Reject(store.OpFetchByID, err)
		return nil, err
	}
	enriched := resolve.EnrichOrder(*o, s.snapshot().Customers)
	s.slice.FulfillItem(store.OpFetchByID, enriched)
	return &enriched, nil
}

func (s *Service) FetchFiltered(ctx context.Context, search map[string]string) ([]domain.Order, error) {
	s.slice.Pending(store.OpFetchFiltered)
	rows, err := s.gw.List(ctx, gateway.LikeFilters(search))
	if err != nil {
		err = fmt.Errorf("fetch orders: %w", err)
		s.slice.Reject(store.OpFetchFiltered, err)
		return nil, err
	}
	if len(rows) == 0 {
		err := domain.NoMatchError{Resource: "orders"}
		s.slice.Reject(store.OpFetchFiltered, err)
		return nil, err
	}
	enriched := s.enrichAll(rows)
	s.slice.FulfillList(store.OpFetchFiltered, enriched)
	return enriched, nil
}

func (s *Service) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	s.slice.Pending(store.OpCreate)
	created, err := s.gw.Create(ctx, o)
	if err != nil {
		err = fmt.Errorf("create order: %w", err)
		s.slice.Reject(store.OpCreate, err)
		return nil, err
	}
	enriched := resolve.EnrichOrder(*created, s.snapshot().Customers)
	s.slice.FulfillItem(store.OpCreate, enriched)
	return &enriched, nil
}

func (s *Service) Update(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if o.ID == "" {
		return nil, errors.New("order id required")
	}
	s.slice.Pending(store.OpUpdate)
	updated, err := s.gw.Update(ctx, o)
	if err != nil {
		err = fmt.Errorf("update order %s: %w", o.ID, err)
		s.slice.Reject(store.OpUpdate, err)
		return nil, err
	}
	enriched := resolve.EnrichOrder(*updated, s.snapshot().Customers)
	s.slice.FulfillItem(store.OpUpdate, enriched)
	return &enriched, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.slice.Pending(store.OpDelete)
	deleted, err := s.gw.Delete(ctx, id)
	if err != nil {
		err = fmt.Errorf("delete order %s: %w", id, err)
		s.slice.Reject(store.OpDelete, err)
		return err
	}
	s.slice.FulfillDelete(deleted)
	return nil
}

func (s *Service) enrichAll(rows []domain.Order) []domain.Order {
	customers := s.snapshot().Customers
	out := make([]domain.Order, len(rows))
	for i, o := range rows {
		out[i] = resolve.EnrichOrder(o, customers)
	}
	return out
}
