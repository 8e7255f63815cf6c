// Package resolve holds the pure name resolvers and the enrichment pass
// that fills an entity's derived display fields from a cross-collection
// snapshot. Everything here is side-effect free; thunks call it with the
// store snapshot taken when the gateway call settles.
package resolve

import "crm-backoffice/internal/domain"

// Unknown is the display name used when a referenced entity is absent.
const Unknown = "Unknown"

// CustomerName resolves a customer id to the customer's first name, or
// Unknown on a miss. Linear scan; fine at demo scale, index by id before
// pointing this at real data volumes.
func CustomerName(customerID string, customers []domain.Customer) string {
	for _, c := range customers {
		if c.ID == customerID {
			return c.FirstName
		}
	}
	return Unknown
}

// CategoryName resolves a category id to its name, or Unknown on a miss.
func CategoryName(categoryID string, categories []domain.Category) string {
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return Unknown
}

// LineItemCount counts an order's embedded product snapshots. Named so the
// order enrichment reads uniformly with the name resolvers.
func LineItemCount(products []domain.Product) int {
	return len(products)
}

// EnrichOrder attaches the derived display fields to a raw order.
func EnrichOrder(o domain.Order, customers []domain.Customer) domain.Order {
	o.CustomerName = CustomerName(o.CustomerID, customers)
	o.ProductsCount = LineItemCount(o.Products)
	return o
}

// EnrichProduct attaches the denormalized category name to a raw product.
func EnrichProduct(p domain.Product, categories []domain.Category) domain.Product {
	p.CategoryName = CategoryName(p.CategoryID, categories)
	return p
}
