package product

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
	List(ctx context.Context, filters map[string]string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Service runs the product request thunks. Every settlement that carries
// products resolves categoryName against the categories snapshot taken at
// that moment, not against anything embedded in the gateway response.
type Service struct {
	gw       Gateway
	slice    *store.Slice[domain.Product]
	snapshot func() store.Snapshot
	logger   *log.Logger
}

func New(gw Gateway, st *store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{gw: gw, slice: st.Products, snapshot: st.Snapshot, logger: logger}
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Product, error) {
	s.slice.Pending(store.OpFetchAll)
	rows, err := s.gw.List(ctx, nil)
	if err != nil {
		err = fmt.Errorf("fetch products: %w", err)
		s.slice.Reject(store.OpFetchAll, err)
		return nil, err
	}
	enriched := s.enrichAll(rows)
	s.slice.FulfillList(store.OpFetchAll, enriched)
	return enriched, nil
}

func (s *Service) FetchByID(ctx context.Context, id string) (*domain.Product, error) {
	s.slice.Pending(store.OpFetchByID)
	p, err := s.gw.GetByID(ctx, id)
	if err != nil {
		err = fmt.Errorf("fetch product %s: %w", id, err)
		s.slice.Reject(store.OpFetchByID, err)
		return nil, err
	}
	enriched := resolve.EnrichProduct(*p, s.snapshot().Categories)
	s.slice.FulfillItem(store.OpFetchByID, enriched)
	return &enriched, nil
}

func (s *Service) FetchFiltered(ctx context.Context, search map[string]string) ([]domain.Product, error) {
	s.slice.Pending(store.OpFetchFiltered)
	rows, err := s.gw.List(ctx, gateway.LikeFilters(search))
	if err != nil {
		err = fmt.Errorf("fetch products: %w", err)
		s.slice.Reject(store.OpFetchFiltered, err)
		return nil, err
	}
	if len(rows) == 0 {
		err := domain.NoMatchError{Resource: "products"}
		s.slice.Reject(store.OpFetchFiltered, err)
		return nil, err
	}
	enriched := s.enrichAll(rows)
	s.slice.FulfillList(store.OpFetchFiltered, enriched)
	return enriched, nil
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	s.slice.Pending(store.OpCreate)
	created, err := s.gw.Create(ctx, p)
	if err != nil {
		err = fmt.Errorf("create product: %w", err)
		s.slice.Reject(store.OpCreate, err)
		return nil, err
	}
	enriched := resolve.EnrichProduct(*created, s.snapshot().Categories)
	s.slice.FulfillItem(store.OpCreate, enriched)
	return &enriched, nil
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		return nil, errors.New("product id required")
	}
	s.slice.Pending(store.OpUpdate)
	updated, err := s.gw.Update(ctx, p)
	if err != nil {
		err = fmt.Errorf("update product %s: %w", p.ID, err)
		s.slice.Reject(store.OpUpdate, err)
		return nil, err
	}
	enriched := resolve.EnrichProduct(*updated, s.snapshot().Categories)
	s.slice.FulfillItem(store.OpUpdate, enriched)
	return &enriched, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.slice.Pending(store.OpDelete)
	deleted, err := s.gw.Delete(ctx, id)
	if err != nil {
		err = fmt.Errorf("delete product %s: %w", id, err)
		s.slice.Reject(store.OpDelete, err)
		return err
	}
	s.slice.FulfillDelete(deleted)
	return nil
}

func (s *Service) enrichAll(rows []domain.Product) []domain.Product {
	categories := s.snapshot().Categories
	out := make([]domain.Product, len(rows))
	for i, p := range rows {
		out[i] = resolve.EnrichProduct(p, categories)
	}
	return out
}
