// Command crm is a terminal front end for the back-office API. It drives the
// same store, thunk services and session persistence the browser client
// uses, one command per invocation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"crm-backoffice/internal/config"
	"crm-backoffice/internal/domain"
	"crm-backoffice/internal/gateway"
	"crm-backoffice/internal/gateway/rest"
	"crm-backoffice/internal/session"
	"crm-backoffice/internal/store"

	authsvc "crm-backoffice/internal/service/auth"
	categorysvc "crm-backoffice/internal/service/category"
	customersvc "crm-backoffice/internal/service/customer"
	ordersvc "crm-backoffice/internal/service/order"
	productsvc "crm-backoffice/internal/service/product"
)

const usage = `usage: crm [flags] <command> [args]

commands:
  login <email> <password>         sign in and persist the session
  logout                           sign out and drop the persisted session
  whoami                           show the signed-in user
  list <resource>                  fetch a full collection
  search <resource> <field=term>.. fetch with contains-filters
  get <resource> <id>              fetch one entity by id
  create <resource> <json>         create an entity from a JSON payload
  update <resource> <json>         update an entity (payload must carry id)
  delete <resource> <id>           delete an entity by id

resources: customers, orders, products, categories
`

func main() {
	cfg := config.FromEnv()

	var (
		serverURL   string
		sessionPath string
	)
	flag.StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the API server")
	flag.StringVar(&sessionPath, "session", cfg.SessionDBPath, "Path to the local session database")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "[crm] ", 0)
	ctx := context.Background()

	sessions, err := session.Open(ctx, sessionPath)
	if err != nil {
		logger.Fatalf("open session store: %v", err)
	}
	defer sessions.Close()

	app := newApp(rest.NewClient(serverURL), sessions, logger)
	if _, err := app.auth.Restore(ctx); err != nil {
		logger.Printf("restore session: %v", err)
	}
	if state := app.st.Auth.State(); state.Token != "" {
		app.client.SetToken(state.Token)
	}

	err = app.run(ctx, args[0], args[1:])
	app.drainNotices()
	if err != nil {
		os.Exit(1)
	}
}

type app struct {
	client *rest.Client
	st     *store.Store

	customers  *customersvc.Service
	orders     *ordersvc.Service
	products   *productsvc.Service
	categories *categorysvc.Service
	auth       *authsvc.Service

	logger *log.Logger
}

func newApp(client *rest.Client, sessions authsvc.Sessions, logger *log.Logger) *app {
	st := store.New()
	return &app{
		client:     client,
		st:         st,
		customers:  customersvc.New(rest.Open[domain.Customer](client, gateway.ResourceCustomers), st, logger),
		orders:     ordersvc.New(rest.Open[domain.Order](client, gateway.ResourceOrders), st, logger),
		products:   productsvc.New(rest.Open[domain.Product](client, gateway.ResourceProducts), st, logger),
		categories: categorysvc.New(rest.Open[domain.Category](client, gateway.ResourceCategories), st, logger),
		auth:       authsvc.New(client, sessions, st, logger),
		logger:     logger,
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		if len(args) != 2 {
			return a.usageError("login <email> <password>")
		}
		sess, err := a.auth.SignIn(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		a.client.SetToken(sess.AccessToken)
		return printJSON(sess.User)

	case "logout":
		return a.auth.SignOut(ctx)

	case "whoami":
		state := a.st.Auth.State()
		if state.User == nil {
			a.logger.Println("not signed in")
			return nil
		}
		return printJSON(state.User)

	case "list":
		if len(args) != 1 {
			return a.usageError("list <resource>")
		}
		return a.list(ctx, args[0])

	case "search":
		if len(args) < 2 {
			return a.usageError("search <resource> <field=term>..")
		}
		fields, err := parseFields(args[1:])
		if err != nil {
			return err
		}
		return a.search(ctx, args[0], fields)

	case "get":
		if len(args) != 2 {
			return a.usageError("get <resource> <id>")
		}
		return a.get(ctx, args[0], args[1])

	case "create":
		if len(args) != 2 {
			return a.usageError("create <resource> <json>")
		}
		return a.create(ctx, args[0], args[1])

	case "update":
		if len(args) != 2 {
			return a.usageError("update <resource> <json>")
		}
		return a.update(ctx, args[0], args[1])

	case "delete":
		if len(args) != 2 {
			return a.usageError("delete <resource> <id>")
		}
		return a.delete(ctx, args[0], args[1])

	default:
		return a.usageError(command)
	}
}

// list fetches the collection. Orders and products first fetch what their
// denormalized names resolve against, the way the list pages sequence it.
func (a *app) list(ctx context.Context, resource string) error {
	switch resource {
	case gateway.ResourceCustomers:
		if _, err := a.customers.FetchAll(ctx); err != nil {
			return err
		}
		return printJSON(a.st.Customers.State().Items)
	case gateway.ResourceOrders:
		if _, err := a.customers.FetchAll(ctx); err != nil {
			return err
		}
		if _, err := a.orders.FetchAll(ctx); err != nil {
			return err
		}
		return printJSON(a.st.Orders.State().Items)
	case gateway.ResourceProducts:
		if _, err := a.categories.FetchAll(ctx); err != nil {
			return err
		}
		if _, err := a.products.FetchAll(ctx); err != nil {
			return err
		}
		return printJSON(a.st.Products.State().Items)
	case gateway.ResourceCategories:
		if _, err := a.categories.FetchAll(ctx); err != nil {
			return err
		}
		return printJSON(a.st.Categories.State().Items)
	default:
		return a.unknownResource(resource)
	}
}

func (a *app) search(ctx context.Context, resource string, fields map[string]string) error {
	switch resource {
	case gateway.ResourceCustomers:
		a.st.Customers.SetSearchOpen(true)
		a.st.Customers.SetSearch(fields)
		if _, err := a.customers.FetchFiltered(ctx, fields); err != nil {
			return err
		}
		return printJSON(a.st.Customers.State().Items)
	case gateway.ResourceOrders:
		a.st.Orders.SetSearchOpen(true)
		a.st.Orders.SetSearch(fields)
		if _, err := a.customers.FetchAll(ctx); err != nil {
			return err
		}
		if _, err := a.orders.FetchFiltered(ctx, fields); err != nil {
			return err
		}
		return printJSON(a.st.Orders.State().Items)
	case gateway.ResourceProducts:
		a.st.Products.SetSearchOpen(true)
		a.st.Products.SetSearch(fields)
		if _, err := a.categories.FetchAll(ctx); err != nil {
			return err
		}
		if _, err := a.products.FetchFiltered(ctx, fields); err != nil {
			return err
		}
		return printJSON(a.st.Products.State().Items)
	case gateway.ResourceCategories:
		a.st.Categories.SetSearchOpen(true)
		a.st.Categories.SetSearch(fields)
		if _, err := a.categories.FetchFiltered(ctx, fields); err != nil {
			return err
		}
		return printJSON(a.st.Categories.State().Items)
	default:
		return a.unknownResource(resource)
	}
}

func (a *app) get(ctx context.Context, resource, id string) error {
	switch resource {
	case gateway.ResourceCustomers:
		if _, err := a.customers.FetchByID(ctx, id); err != nil {
			return err
		}
		return printJSON(a.st.Customers.State().Selected)
	case gateway.ResourceOrders:
		if _, err := a.customers.FetchAll(ctx); err != nil {
			return err
		}
		if _, err := a.orders.FetchByID(ctx, id); err != nil {
			return err
		}
		return printJSON(a.st.Orders.State().Selected)
	case gateway.ResourceProducts:
		if _, err := a.categories.FetchAll(ctx); err != nil {
			return err
		}
		if _, err := a.products.FetchByID(ctx, id); err != nil {
			return err
		}
		return printJSON(a.st.Products.State().Selected)
	case gateway.ResourceCategories:
		if _, err := a.categories.FetchByID(ctx, id); err != nil {
			return err
		}
		return printJSON(a.st.Categories.State().Selected)
	default:
		return a.unknownResource(resource)
	}
}

func (a *app) create(ctx context.Context, resource, payload string) error {
	switch resource {
	case gateway.ResourceCustomers:
		c, err := decodePayload[domain.Customer](payload)
		if err != nil {
			return err
		}
		created, err := a.customers.Create(ctx, c)
		if err != nil {
			return err
		}
		return printJSON(created)
	case gateway.ResourceOrders:
		o, err := decodePayload[domain.Order](payload)
		if err != nil {
			return err
		}
		if _, err := a.customers.FetchAll(ctx); err != nil {
			return err
		}
		created, err := a.orders.Create(ctx, o)
		if err != nil {
			return err
		}
		return printJSON(created)
	case gateway.ResourceProducts:
		p, err := decodePayload[domain.Product](payload)
		if err != nil {
			return err
		}
		if _, err := a.categories.FetchAll(ctx); err != nil {
			return err
		}
		created, err := a.products.Create(ctx, p)
		if err != nil {
			return err
		}
		return printJSON(created)
	case gateway.ResourceCategories:
		c, err := decodePayload[domain.Category](payload)
		if err != nil {
			return err
		}
		created, err := a.categories.Create(ctx, c)
		if err != nil {
			return err
		}
		return printJSON(created)
	default:
		return a.unknownResource(resource)
	}
}

func (a *app) update(ctx context.Context, resource, payload string) error {
	switch resource {
	case gateway.ResourceCustomers:
		c, err := decodePayload[domain.Customer](payload)
		if err != nil {
			return err
		}
		updated, err := a.customers.Update(ctx, c)
		if err != nil {
			return err
		}
		return printJSON(updated)
	case gateway.ResourceOrders:
		o, err := decodePayload[domain.Order](payload)
		if err != nil {
			return err
		}
		if _, err := a.customers.FetchAll(ctx); err != nil {
			return err
		}
		updated, err := a.orders.Update(ctx, o)
		if err != nil {
			return err
		}
		return printJSON(updated)
	case gateway.ResourceProducts:
		p, err := decodePayload[domain.Product](payload)
		if err != nil {
			return err
		}
		if _, err := a.categories.FetchAll(ctx); err != nil {
			return err
		}
		updated, err := a.products.Update(ctx, p)
		if err != nil {
			return err
		}
		return printJSON(updated)
	case gateway.ResourceCategories:
		c, err := decodePayload[domain.Category](payload)
		if err != nil {
			return err
		}
		updated, err := a.categories.Update(ctx, c)
		if err != nil {
			return err
		}
		return printJSON(updated)
	default:
		return a.unknownResource(resource)
	}
}

func (a *app) delete(ctx context.Context, resource, id string) error {
	switch resource {
	case gateway.ResourceCustomers:
		return a.customers.Delete(ctx, id)
	case gateway.ResourceOrders:
		return a.orders.Delete(ctx, id)
	case gateway.ResourceProducts:
		return a.products.Delete(ctx, id)
	case gateway.ResourceCategories:
		return a.categories.Delete(ctx, id)
	default:
		return a.unknownResource(resource)
	}
}

// drainNotices prints and clears any open snackbar, the terminal equivalent
// of the transient notification bar.
func (a *app) drainNotices() {
	if s := a.st.Customers.State().Snackbar; s.Open {
		a.logger.Printf("%s: %s", s.Severity, s.Message)
		a.st.Customers.ClearNotice()
	}
	if s := a.st.Orders.State().Snackbar; s.Open {
		a.logger.Printf("%s: %s", s.Severity, s.Message)
		a.st.Orders.ClearNotice()
	}
	if s := a.st.Products.State().Snackbar; s.Open {
		a.logger.Printf("%s: %s", s.Severity, s.Message)
		a.st.Products.ClearNotice()
	}
	if s := a.st.Categories.State().Snackbar; s.Open {
		a.logger.Printf("%s: %s", s.Severity, s.Message)
		a.st.Categories.ClearNotice()
	}
	if s := a.st.Auth.State().Snackbar; s.Open {
		a.logger.Printf("%s: %s", s.Severity, s.Message)
		a.st.Auth.ClearNotice()
	}
}

func (a *app) usageError(hint string) error {
	err := fmt.Errorf("usage: crm %s", hint)
	a.logger.Println(err)
	return err
}

func (a *app) unknownResource(resource string) error {
	err := fmt.Errorf("unknown resource %q", resource)
	a.logger.Println(err)
	return err
}

func decodePayload[T any](payload string) (T, error) {
	var e T
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return e, fmt.Errorf("decode payload: %w", err)
	}
	return e, nil
}

func parseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected field=term, got %q", arg)
		}
		fields[key] = value
	}
	return fields, nil
}

func printJSON(v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}
