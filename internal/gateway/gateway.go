// Package gateway is the mock persistence backend: one insertion-ordered
// in-memory table per resource, a REST-shaped filter dialect, and a
// hardcoded-credential authenticator. It stands in for a real server and
// makes no durability promises.
package gateway

// Resource names accepted by the gateway and the REST surface.
const (
	ResourceCustomers  = "customers"
	ResourceOrders     = "orders"
	ResourceProducts   = "products"
	ResourceCategories = "categories"
)

var resourceNames = []string{
	ResourceCustomers,
	ResourceOrders,
	ResourceProducts,
	ResourceCategories,
}

// Gateway bundles the per-resource tables.
type Gateway struct {
	tables map[string]*Table
}

// New returns a Gateway with empty tables for every known resource.
func New() *Gateway {
	tables := make(map[string]*Table, len(resourceNames))
	for _, name := range resourceNames {
		tables[name] = newTable()
	}
	return &Gateway{tables: tables}
}

// Table returns the backing table for a resource, or false for an unknown
// resource name.
func (g *Gateway) Table(resource string) (*Table, bool) {
	t, ok := g.tables[resource]
	return t, ok
}

// Resources lists the known resource names in a stable order.
func (g *Gateway) Resources() []string {
	out := make([]string, len(resourceNames))
	copy(out, resourceNames)
	return out
}
