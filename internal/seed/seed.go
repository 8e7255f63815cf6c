// Package seed loads the built-in demo dataset into the mock backend. The
// rows carry fixed small ids so seeded data is easy to reference from manual
// testing and from the CLI.
package seed

import (
	"crm-backoffice/internal/gateway"
)

// Apply replaces every gateway table with the demo dataset.
func Apply(gw *gateway.Gateway) error {
	for resource, rows := range demoData() {
		table, ok := gw.Table(resource)
		if !ok {
			continue
		}
		table.Load(rows)
	}
	return nil
}

func demoData() map[string][]gateway.Row {
	return map[string][]gateway.Row{
		gateway.ResourceCustomers: {
			{
				"id": "1", "firstName": "Ann", "lastName": "Archer",
				"email": "ann.archer@example.com", "mobile": "555-0101",
				"membership": true, "rewards": 120,
				"avatar": "https://i.pravatar.cc/150?u=ann",
			},
			{
				"id": "2", "firstName": "Bram", "lastName": "Stoker",
				"email": "bram.stoker@example.com", "mobile": "555-0102",
				"membership": false, "rewards": 0,
				"avatar": "https://i.pravatar.cc/150?u=bram",
			},
			{
				"id": "3", "firstName": "Carla", "lastName": "Espinosa",
				"email": "carla.espinosa@example.com", "mobile": "555-0103",
				"membership": true, "rewards": 45,
			},
		},
		gateway.ResourceCategories: {
			{"id": "1", "name": "Coffee", "description": "Beans, grounds and pods"},
			{"id": "2", "name": "Brewing Gear", "description": "Machines and manual brewers"},
			{"id": "3", "name": "Accessories", "description": "Cups, filters and cleaning kits"},
		},
		gateway.ResourceProducts: {
			{"id": "1", "name": "House Blend Beans 1kg", "categoryId": "1", "numInStock": 64, "unitPrice": 18.5},
			{"id": "2", "name": "Single Origin Ethiopia 250g", "categoryId": "1", "numInStock": 24, "unitPrice": 12.0},
			{"id": "3", "name": "Espresso Machine", "categoryId": "2", "numInStock": 5, "unitPrice": 549.99},
			{"id": "4", "name": "Moka Pot", "categoryId": "2", "numInStock": 18, "unitPrice": 34.95},
			{"id": "5", "name": "Ceramic Mug", "categoryId": "3", "numInStock": 120, "unitPrice": 9.5},
		},
		gateway.ResourceOrders: {
			{
				"id": "1", "reference": "ORD-1001", "customerId": "1",
				"products": []any{
					gateway.Row{"id": "1", "name": "House Blend Beans 1kg", "unitPrice": 18.5},
					gateway.Row{"id": "5", "name": "Ceramic Mug", "unitPrice": 9.5},
				},
				"amount": 28.0, "productsCount": 2,
				"orderDate": "2026-08-01", "shippedDate": "2026-08-03",
				"shipAddress": gateway.Row{
					"address": "12 Harbor Lane", "city": "Portsmouth",
					"country": "UK", "zipcode": "PO1 2AB",
				},
			},
			{
				"id": "2", "reference": "ORD-1002", "customerId": "2",
				"products": []any{
					gateway.Row{"id": "3", "name": "Espresso Machine", "unitPrice": 549.99},
				},
				"amount": 549.99, "productsCount": 1,
				"orderDate": "2026-08-10",
				"shipAddress": gateway.Row{
					"address": "88 Quay Street", "city": "Dublin",
					"country": "IE", "zipcode": "D02 XY45",
				},
			},
			{
				"id": "3", "reference": "ORD-1003", "customerId": "1",
				"products": []any{},
				"amount":   0.0, "productsCount": 0,
				"orderDate": "2026-08-20",
			},
		},
	}
}
