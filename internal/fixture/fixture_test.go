package fixture

import (
	"strings"
	"testing"

	"crm-backoffice/internal/gateway"
)

const sampleFixture = `{
  "customers": [
    {"id": "1", "firstName": "Ann", "lastName": "Archer"},
    {"id": "2", "firstName": "Bram", "lastName": "Stoker"}
  ],
  "categories": [
    {"id": "1", "name": "Coffee"}
  ]
}`

func TestLoad_ReplacesNamedTables(t *testing.T) {
	gw := gateway.New()

	n, err := Load(gw, strings.NewReader(sampleFixture))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows loaded, got %d", n)
	}

	customers, _ := gw.Table(gateway.ResourceCustomers)
	if customers.Len() != 2 {
		t.Fatalf("expected 2 customers, got %d", customers.Len())
	}
	row, err := customers.Get("2")
	if err != nil {
		t.Fatalf("get loaded row: %v", err)
	}
	if row["firstName"] != "Bram" {
		t.Fatalf("unexpected row %v", row)
	}

	// Resources absent from the document are untouched.
	orders, _ := gw.Table(gateway.ResourceOrders)
	if orders.Len() != 0 {
		t.Fatalf("orders should be empty, got %d", orders.Len())
	}
}

func TestLoad_RejectsUnknownResource(t *testing.T) {
	gw := gateway.New()

	_, err := Load(gw, strings.NewReader(`{"invoices": [{"id": "1"}]}`))
	if err == nil || !strings.Contains(err.Error(), "invoices") {
		t.Fatalf("expected unknown resource error, got %v", err)
	}
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	gw := gateway.New()

	if _, err := Load(gw, strings.NewReader(`{"customers": [`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	gw := gateway.New()

	if _, err := LoadFile(gw, "does-not-exist.json"); err == nil {
		t.Fatal("expected open error")
	}
}
