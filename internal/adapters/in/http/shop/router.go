// internal/adapters/in/http/shop/router.go
package shop

import (
	"log"
	"net/http"
)

// Deps is the storefront (buyer-facing) handler set.
type Deps struct {
	// public
	Catalog    http.Handler
	Blank      http.Handler
	Settings   http.Handler
	Newsletter http.Handler

	// authenticated (routes wrapped by UserAuthMiddleware in Register)
	Cart        http.Handler
	Wishlist    http.Handler
	DesignOrder http.Handler
	Order       http.Handler
	Me          http.Handler

	// Auth wraps the authenticated handlers; nil means mount them bare
	// (tests do this).
	Auth func(http.Handler) http.Handler
}

// handleSafe registers pattern with h. A nil handler logs and serves
// 404 instead of crashing the process at startup.
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[shop.router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// Register mounts the storefront routes onto mux.
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

	// catalog (public)
	handleSafe(mux, "/shop/products", deps.Catalog, "Catalog")
	handleSafe(mux, "/shop/products/", deps.Catalog, "Catalog")
	handleSafe(mux, "/shop/categories", deps.Catalog, "Catalog(categories)")
	handleSafe(mux, "/shop/categories/", deps.Catalog, "Catalog(categories)")

	// design studio blanks (public)
	handleSafe(mux, "/shop/blanks", deps.Blank, "Blank")
	handleSafe(mux, "/shop/blanks/", deps.Blank, "Blank")

	// site settings (public)
	handleSafe(mux, "/shop/settings", deps.Settings, "Settings")

	// newsletter (public)
	handleSafe(mux, "/shop/newsletter", deps.Newsletter, "Newsletter")

	// cart / wishlist (authenticated; 401 tells the client to stay in
	// guest tier)
	handleSafe(mux, "/shop/cart", authed(deps.Cart), "Cart")
	handleSafe(mux, "/shop/wishlist", authed(deps.Wishlist), "Wishlist")

	// design orders + asset upload (authenticated)
	handleSafe(mux, "/shop/design-orders", authed(deps.DesignOrder), "DesignOrder")
	handleSafe(mux, "/shop/design-orders/", authed(deps.DesignOrder), "DesignOrder")
	handleSafe(mux, "/shop/design-assets", authed(deps.DesignOrder), "DesignOrder(assets)")

	// orders (authenticated)
	handleSafe(mux, "/shop/orders", authed(deps.Order), "Order")
	handleSafe(mux, "/shop/orders/", authed(deps.Order), "Order")

	// current user (authenticated)
	handleSafe(mux, "/shop/me", authed(deps.Me), "Me")
}
