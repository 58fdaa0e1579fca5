// internal/platform/di/container.go
package di

import (
	"context"
	"log"

	httpin "saidify/internal/adapters/in/http"
	fsrepo "saidify/internal/adapters/out/firestore"
	"saidify/internal/adapters/out/gcs"
	"saidify/internal/adapters/out/mail"
	usecase "saidify/internal/application/usecase"
	appcfg "saidify/internal/infra/config"
)

// Container wires repositories, usecases and infra for the API binary.
type Container struct {
	Infra  *Infra
	Config *appcfg.Config

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

	userRepo *fsrepo.UserRepositoryFS
}

// NewContainer builds the full dependency graph.
func NewContainer(ctx context.Context) (*Container, error) {
	inf, err := NewInfra(ctx)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Infra:  inf,
		Config: inf.Config,
	}

	// Repositories (Firestore)
	cartRepo := fsrepo.NewCartRepositoryFS(inf.Firestore)
	wishlistRepo := fsrepo.NewWishlistRepositoryFS(inf.Firestore)
	productRepo := fsrepo.NewProductRepositoryFS(inf.Firestore)
	categoryRepo := fsrepo.NewCategoryRepositoryFS(inf.Firestore)
	blankRepo := fsrepo.NewBlankProductRepositoryFS(inf.Firestore)
	designOrderRepo := fsrepo.NewDesignOrderRepositoryFS(inf.Firestore)
	orderRepo := fsrepo.NewOrderRepositoryFS(inf.Firestore)
	subscriberRepo := fsrepo.NewSubscriberRepositoryFS(inf.Firestore)
	settingsRepo := fsrepo.NewSiteSettingsRepositoryFS(inf.Firestore)
	c.userRepo = fsrepo.NewUserRepositoryFS(inf.Firestore)

	// Blob store (GCS) for design assets
	assetStore := gcs.NewDesignAssetRepositoryGCS(inf.GCS, inf.DesignAssetBucket)

	// Newsletter mailer (SendGrid; key from env or Secret Manager)
	var mailer usecase.Broadcaster
	apiKey, err := mail.ResolveSendGridAPIKey(
		ctx,
		inf.Config.SendGridAPIKey,
		inf.SecretManager,
		inf.ProjectID,
		inf.Config.SendGridSecretName,
	)
	if err != nil || apiKey == "" {
		log.Printf("[di.container] WARN: SendGrid key unavailable: %v (newsletter broadcast disabled)", err)
	} else {
		mailer = mail.NewNewsletterMailerWithSendGrid(apiKey, inf.Config.SendGridFrom)
	}

	// Usecases
	c.CartUC = usecase.NewCartUsecase(cartRepo)
	c.WishlistUC = usecase.NewWishlistUsecase(wishlistRepo)
	c.ProductUC = usecase.NewProductUsecase(productRepo)
	c.CategoryUC = usecase.NewCategoryUsecase(categoryRepo)
	c.BlankUC = usecase.NewBlankProductUsecase(blankRepo)
	c.DesignOrderUC = usecase.NewDesignOrderUsecase(designOrderRepo, blankRepo, assetStore)
	c.OrderUC = usecase.NewOrderUsecase(orderRepo, cartRepo)
	c.NewsletterUC = usecase.NewNewsletterUsecase(subscriberRepo, mailer)
	c.SettingsUC = usecase.NewSettingsUsecase(settingsRepo)
	c.UserUC = usecase.NewUserUsecase(c.userRepo)

	return c, nil
}

// RouterDeps exposes the dependency set the HTTP router needs.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CartUC:        c.CartUC,
		WishlistUC:    c.WishlistUC,
		ProductUC:     c.ProductUC,
		CategoryUC:    c.CategoryUC,
		BlankUC:       c.BlankUC,
		DesignOrderUC: c.DesignOrderUC,
		OrderUC:       c.OrderUC,
		NewsletterUC:  c.NewsletterUC,
		SettingsUC:    c.SettingsUC,
		UserUC:        c.UserUC,

		FirebaseAuth:  c.Infra.FirebaseAuth,
		UserRepo:      c.userRepo,
		AllowedOrigin: c.Config.AllowedOrigin,
	}
}

func (c *Container) Close() {
	if c == nil {
		return
	}
	_ = c.Infra.Close()
}
