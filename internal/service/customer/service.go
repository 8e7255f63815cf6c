package customer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"crm-backoffice/internal/domain"
	"crm-backoffice/internal/gateway"
	"crm-backoffice/internal/store"
)

// Gateway is the slice of the resource gateway this service depends on.
type Gateway interface {
	List(ctx context.Context, filters map[string]string) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Service runs the customer request thunks. Every operation walks the
// customers slice through pending and exactly one settlement; failures are
// caught here and never escape as raw errors into the store.
type Service struct {
	gw     Gateway
	slice  *store.Slice[domain.Customer]
	logger *log.Logger
}

func New(gw Gateway, st *store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{gw: gw, slice: st.Customers, logger: logger}
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Customer, error) {
	s.slice.Pending(store.OpFetchAll)
	rows, err := s.gw.List(ctx, nil)
	if err != nil {
		err = fmt.Errorf("fetch customers: %w", err)
		s.slice.Reject(store.OpFetchAll, err)
		return nil, err
	}
	s.slice.FulfillList(store.OpFetchAll, rows)
	return rows, nil
}

func (s *Service) FetchByID(ctx context.Context, id string) (*domain.Customer, error) {
	s.slice.Pending(store.OpFetchByID)
	c, err := s.gw.GetByID(ctx, id)
	if err != nil {
		err = fmt.Errorf("fetch customer %s: %w", id, err)
		s.slice.Reject(store.OpFetchByID, err)
		return nil, err
	}
	s.slice.FulfillItem(store.OpFetchByID, *c)
	return c, nil
}

// FetchFiltered treats an empty result as a rejection so the UI can warn
// that the search matched nothing instead of rendering an empty table.
func (s *Service) FetchFiltered(ctx context.Context, search map[string]string) ([]domain.Customer, error) {
	s.slice.Pending(store.OpFetchFiltered)
	rows, err := s.gw.List(ctx, gateway.LikeFilters(search))
	if err != nil {
		err = fmt.Errorf("fetch customers: %w", err)
		s.slice.Reject(store.OpFetchFiltered, err)
		return nil, err
	}
	if len(rows) == 0 {
		err := domain.NoMatchError{Resource: "customers"}
		s.slice.Reject(store.OpFetchFiltered, err)
		return nil, err
	}
	s.slice.FulfillList(store.OpFetchFiltered, rows)
	return rows, nil
}

func (s *Service) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	s.slice.Pending(store.OpCreate)
	created, err := s.gw.Create(ctx, c)
	if err != nil {
		err = fmt.Errorf("create customer: %w", err)
		s.slice.Reject(store.OpCreate, err)
		return nil, err
	}
	s.slice.FulfillItem(store.OpCreate, *created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if c.ID == "" {
		return nil, errors.New("customer id required")
	}
	s.slice.Pending(store.OpUpdate)
	updated, err := s.gw.Update(ctx, c)
	if err != nil {
		err = fmt.Errorf("update customer %s: %w", c.ID, err)
		s.slice.Reject(store.OpUpdate, err)
		return nil, err
	}
	s.slice.FulfillItem(store.OpUpdate, *updated)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.slice.Pending(store.OpDelete)
	deleted, err := s.gw.Delete(ctx, id)
	if err != nil {
		err = fmt.Errorf("delete customer %s: %w", id, err)
		s.slice.Reject(store.OpDelete, err)
		return err
	}
	s.slice.FulfillDelete(deleted)
	return nil
}
