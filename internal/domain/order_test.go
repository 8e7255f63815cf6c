package domain

import "testing"

func TestOrder_AddAndRemoveProductKeepCountInSync(t *testing.T) {
	var o Order
	o.AddProduct(Product{ID: "p1", Name: "Mug", UnitPrice: 12.99})
	o.AddProduct(Product{ID: "p2", Name: "Shirt", UnitPrice: 19.99})
	if o.ProductsCount != 2 || len(o.Products) != 2 {
		t.Fatalf("expected 2 line items, got count=%d len=%d", o.ProductsCount, len(o.Products))
	}

	o.RemoveProduct("p1")
	if o.ProductsCount != 1 || o.Products[0].ID != "p2" {
		t.Fatalf("unexpected line items after remove: %+v", o.Products)
	}

	// removing an unknown id is a no-op
	o.RemoveProduct("missing")
	if o.ProductsCount != 1 {
		t.Fatalf("expected count unchanged, got %d", o.ProductsCount)
	}
}

func TestNoMatchError_Message(t *testing.T) {
	err := NoMatchError{Resource: "products"}
	if err.Error() != "No products found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
