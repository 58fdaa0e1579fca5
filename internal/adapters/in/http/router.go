// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"saidify/internal/adapters/in/http/admin"
	adminHandler "saidify/internal/adapters/in/http/admin/handler"
	"saidify/internal/adapters/in/http/middleware"
	"saidify/internal/adapters/in/http/shop"
	shopHandler "saidify/internal/adapters/in/http/shop/handler"
	usecase "saidify/internal/application/usecase"
	userdom "saidify/internal/domain/user"
)

// RouterDeps collects the usecases and auth collaborators injected from
// the DI container.
type RouterDeps struct {
	CartUC        *usecase.CartUsecase
	WishlistUC    *usecase.WishlistUsecase
	ProductUC     *usecase.ProductUsecase
	CategoryUC    *usecase.CategoryUsecase
	BlankUC       *usecase.BlankProductUsecase
	DesignOrderUC *usecase.DesignOrderUsecase
	OrderUC       *usecase.OrderUsecase
	NewsletterUC  *usecase.NewsletterUsecase
	SettingsUC    *usecase.SettingsUsecase
	UserUC        *usecase.UserUsecase

	FirebaseAuth *middleware.FirebaseAuthClient
	UserRepo     userdom.Repository

	// AllowedOrigin for CORS ("*" in development).
	AllowedOrigin string
}

// NewRouter assembles the storefront and back-office surfaces.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	userAuth := &middleware.UserAuthMiddleware{FirebaseAuth: deps.FirebaseAuth}
	adminAuth := &middleware.AdminAuthMiddleware{UserRepo: deps.UserRepo}

	shop.Register(mux, shop.Deps{
		Catalog:    shopHandler.NewCatalogHandler(deps.ProductUC, deps.CategoryUC),
		Blank:      shopHandler.NewBlankHandler(deps.BlankUC),
		Settings:   shopHandler.NewSettingsHandler(deps.SettingsUC),
		Newsletter: shopHandler.NewNewsletterHandler(deps.NewsletterUC),

		Cart:        shopHandler.NewCartHandler(deps.CartUC),
		Wishlist:    shopHandler.NewWishlistHandler(deps.WishlistUC),
		DesignOrder: shopHandler.NewDesignOrderHandler(deps.DesignOrderUC),
		Order:       shopHandler.NewOrderHandler(deps.OrderUC),
		Me:          shopHandler.NewMeHandler(deps.UserUC),

		Auth: userAuth.Handler,
	})

	admin.Register(mux, admin.Deps{
		Product:     adminHandler.NewProductHandler(deps.ProductUC),
		Blank:       adminHandler.NewBlankHandler(deps.BlankUC),
		Category:    adminHandler.NewCategoryHandler(deps.CategoryUC),
		Client:      adminHandler.NewClientHandler(deps.UserUC),
		Order:       adminHandler.NewOrderHandler(deps.OrderUC),
		DesignOrder: adminHandler.NewDesignOrderHandler(deps.DesignOrderUC),
		Newsletter:  adminHandler.NewNewsletterHandler(deps.NewsletterUC),
		Settings:    adminHandler.NewSettingsHandler(deps.SettingsUC),

		Auth: func(h http.Handler) http.Handler {
			return userAuth.Handler(adminAuth.Handler(h))
		},
	})

	// chain order matters: CORS outermost so even panics get headers
	var handler http.Handler = mux
	handler = middleware.Recover(handler)
	handler = middleware.CORS(deps.AllowedOrigin)(handler)
	return handler
}
