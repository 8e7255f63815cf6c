package order

import (
	"context"
	"errors"
	"testing"

	"crm-backoffice/internal/domain"
	"crm-backoffice/internal/gateway"
	"crm-backoffice/internal/resolve"
	customersvc "crm-backoffice/internal/service/customer"
	"crm-backoffice/internal/store"
)

type fixture struct {
	orders    *Service
	customers *customersvc.Service
	store     *store.Store
}

func newFixture(t *testing.T, customers, orders []gateway.Row) fixture {
	t.Helper()
	gw := gateway.New()
	custTbl, _ := gw.Table(gateway.ResourceCustomers)
	custTbl.Load(customers)
	orderTbl, _ := gw.Table(gateway.ResourceOrders)
	orderTbl.Load(orders)

	orderCol, err := gateway.Open[domain.Order](gw, gateway.ResourceOrders)
	if err != nil {
		t.Fatalf("open orders: %v", err)
	}
	custCol, err := gateway.Open[domain.Customer](gw, gateway.ResourceCustomers)
	if err != nil {
		t.Fatalf("open customers: %v", err)
	}

	st := store.New()
	return fixture{
		orders:    New(orderCol, st, nil),
		customers: customersvc.New(custCol, st, nil),
		store:     st,
	}
}

func TestCreate_EnrichesAgainstCustomersSnapshot(t *testing.T) {
	f := newFixture(t, []gateway.Row{
		{"id": "1", "firstName": "Ann", "lastName": "Lee", "email": "ann@example.com"},
	}, nil)
	ctx := context.Background()

	if _, err := f.customers.FetchAll(ctx); err != nil {
		t.Fatalf("fetch customers: %v", err)
	}

	created, err := f.orders.Create(ctx, domain.Order{
		Reference:  "R1",
		CustomerID: "1",
		Products:   []domain.Product{},
		Amount:     10,
		OrderDate:  "2024-05-01",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.CustomerName != "Ann" {
		t.Fatalf("expected customerName Ann, got %q", created.CustomerName)
	}
	if created.ProductsCount != 0 {
		t.Fatalf("expected productsCount 0, got %d", created.ProductsCount)
	}

	all, err := f.orders.FetchAll(ctx)
	if err != nil {
		t.Fatalf("fetch orders: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID || all[0].Reference != "R1" {
		t.Fatalf("created order missing from fetch-all: %+v", all)
	}
}

func TestFetchAll_UnknownCustomerResolvesToUnknown(t *testing.T) {
	f := newFixture(t, nil, []gateway.Row{
		{"id": "10", "reference": "R1", "customerId": "404", "products": []any{}, "amount": float64(5)},
	})

	rows, err := f.orders.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch orders: %v", err)
	}
	if rows[0].CustomerName != resolve.Unknown {
		t.Fatalf("expected %q, got %q", resolve.Unknown, rows[0].CustomerName)
	}
}

func TestFetchByID_CountsEmbeddedLineItems(t *testing.T) {
	f := newFixture(t, []gateway.Row{
		{"id": "1", "firstName": "Ann"},
	}, []gateway.Row{
		{
			"id":         "10",
			"reference":  "R1",
			"customerId": "1",
			"products": []any{
				gateway.Row{"id": "p1", "name": "Beans", "unitPrice": float64(9)},
				gateway.Row{"id": "p2", "name": "Mug", "unitPrice": float64(12)},
			},
			"amount": float64(21),
		},
	})
	ctx := context.Background()
	if _, err := f.customers.FetchAll(ctx); err != nil {
		t.Fatalf("fetch customers: %v", err)
	}

	got, err := f.orders.FetchByID(ctx, "10")
	if err != nil {
		t.Fatalf("fetch by id: %v", err)
	}
	if got.ProductsCount != 2 || got.CustomerName != "Ann" {
		t.Fatalf("unexpected enrichment %+v", got)
	}
	state := f.store.Orders.State()
	if state.Selected == nil || state.Selected.ID != "10" {
		t.Fatalf("selected buffer not filled: %+v", state.Selected)
	}
}

func TestFetchByID_NotFoundKeepsSelectedBuffer(t *testing.T) {
	f := newFixture(t, nil, []gateway.Row{
		{"id": "10", "reference": "R1", "customerId": "1", "products": []any{}},
	})
	ctx := context.Background()

	if _, err := f.orders.FetchByID(ctx, "10"); err != nil {
		t.Fatalf("fetch by id: %v", err)
	}

	_, err := f.orders.FetchByID(ctx, "999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	state := f.store.Orders.State()
	if state.Selected == nil || state.Selected.ID != "10" {
		t.Fatalf("not-found must not clear the selected buffer: %+v", state.Selected)
	}
	if state.Snackbar.Severity != store.SeverityWarning {
		t.Fatalf("not-found should be a warning, got %+v", state.Snackbar)
	}
}

func TestFetchFiltered_NoMatchSentinel(t *testing.T) {
	f := newFixture(t, nil, []gateway.Row{
		{"id": "10", "reference": "R1", "customerId": "1", "products": []any{}},
	})

	_, err := f.orders.FetchFiltered(context.Background(), map[string]string{"reference": "zzz"})
	if err == nil || err.Error() != "No orders found" {
		t.Fatalf("expected no-orders sentinel, got %v", err)
	}
}

func TestUpdate_ReEnrichesAtSettlementTime(t *testing.T) {
	f := newFixture(t, []gateway.Row{
		{"id": "1", "firstName": "Ann"},
	}, []gateway.Row{
		{"id": "10", "reference": "R1", "customerId": "1", "products": []any{}, "amount": float64(5)},
	})
	ctx := context.Background()
	if _, err := f.customers.FetchAll(ctx); err != nil {
		t.Fatalf("fetch customers: %v", err)
	}
	if _, err := f.orders.FetchAll(ctx); err != nil {
		t.Fatalf("fetch orders: %v", err)
	}

	updated, err := f.orders.Update(ctx, domain.Order{
		ID:         "10",
		Reference:  "R1-amended",
		CustomerID: "1",
		Products:   []domain.Product{},
		Amount:     7,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CustomerName != "Ann" || updated.Reference != "R1-amended" {
		t.Fatalf("unexpected updated order %+v", updated)
	}
	items := f.store.Orders.State().Items
	if len(items) != 1 || items[0].Reference != "R1-amended" {
		t.Fatalf("collection not updated in place: %+v", items)
	}
}
