// internal/adapters/in/http/admin/router.go
package admin

import (
	"log"
	"net/http"
)

// Deps is the back-office handler set. Every handler here is mounted
// behind UserAuth + AdminAuth.
type Deps struct {
	Product     http.Handler
	Blank       http.Handler
	Category    http.Handler
	Client      http.Handler
	Order       http.Handler
	DesignOrder http.Handler
	Newsletter  http.Handler
	Settings    http.Handler

	// Auth wraps every admin handler; nil means mount them bare (tests).
	Auth func(http.Handler) http.Handler
}

func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[admin.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register mounts the back-office routes onto mux.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	authed := func(h http.Handler) http.Handler {
		if h == nil || deps.Auth == nil {
			return h
		}
		return deps.Auth(h)
	}

	handleSafe(mux, "/admin/products", authed(deps.Product), "Product")
	handleSafe(mux, "/admin/products/", authed(deps.Product), "Product")

	handleSafe(mux, "/admin/blanks", authed(deps.Blank), "Blank")
	handleSafe(mux, "/admin/blanks/", authed(deps.Blank), "Blank")

	handleSafe(mux, "/admin/categories", authed(deps.Category), "Category")
	handleSafe(mux, "/admin/categories/", authed(deps.Category), "Category")

	handleSafe(mux, "/admin/clients", authed(deps.Client), "Client")
	handleSafe(mux, "/admin/clients/", authed(deps.Client), "Client")

	handleSafe(mux, "/admin/orders", authed(deps.Order), "Order")
	handleSafe(mux, "/admin/orders/", authed(deps.Order), "Order")

	handleSafe(mux, "/admin/design-orders", authed(deps.DesignOrder), "DesignOrder")
	handleSafe(mux, "/admin/design-orders/", authed(deps.DesignOrder), "DesignOrder")

	handleSafe(mux, "/admin/newsletter", authed(deps.Newsletter), "Newsletter")
	handleSafe(mux, "/admin/newsletter/", authed(deps.Newsletter), "Newsletter")

	handleSafe(mux, "/admin/settings", authed(deps.Settings), "Settings")
}
