package shopHandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	usecase "saidify/internal/application/usecase"
	cartdom "saidify/internal/domain/cart"
	proddom "saidify/internal/domain/product"
	subdom "saidify/internal/domain/subscriber"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[string]*proddom.Product
}

func newFakeProductRepo(ps ...*proddom.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*proddom.Product{}}
	for _, p := range ps {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*proddom.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*proddom.Product, error) {
	var out []*proddom.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, cat string) ([]*proddom.Product, error) {
	var out []*proddom.Product
	for _, p := range r.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p *proddom.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func testProduct(id, cat string) *proddom.Product {
	p, _ := proddom.New(id, "Tee "+id, "", "99 MAD", cat, nil, nil, nil, true,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return p
}

func TestCatalogHandler_ListAndFilter(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", "tees"), testProduct("p2", "hoodies"))
	h := NewCatalogHandler(usecase.NewProductUsecase(repo), nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/shop/products", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Products []proddom.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body.Products, 2)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/shop/products?category=tees", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "p1", body.Products[0].ID)
}

func TestCatalogHandler_DetailAndMissing(t *testing.T) {
	repo := newFakeProductRepo(testProduct("p1", "tees"))
	h := NewCatalogHandler(usecase.NewProductUsecase(repo), nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/shop/products/p1", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/shop/products/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCatalogHandler_MethodNotAllowed(t *testing.T) {
	h := NewCatalogHandler(usecase.NewProductUsecase(newFakeProductRepo()), nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/shop/products", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

// cart requires a resolved identity; without the auth middleware the
// handler must answer 401 so clients fall back to guest tier.
func TestCartHandler_UnauthenticatedIs401(t *testing.T) {
	h := NewCartHandler(usecase.NewCartUsecase(newFakeShopCartRepo()))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/shop/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

type fakeShopCartRepo struct {
	carts map[string]*cartdom.Cart
}

func newFakeShopCartRepo() *fakeShopCartRepo {
	return &fakeShopCartRepo{carts: map[string]*cartdom.Cart{}}
}

func (r *fakeShopCartRepo) GetByUserID(_ context.Context, userID string) (*cartdom.Cart, error) {
	return r.carts[userID], nil
}

func (r *fakeShopCartRepo) Upsert(_ context.Context, c *cartdom.Cart) error {
	r.carts[c.ID] = c
	return nil
}

func (r *fakeShopCartRepo) DeleteByUserID(_ context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

type fakeSubRepo struct {
	subs map[string]*subdom.Subscriber
}

func (r *fakeSubRepo) GetByEmail(_ context.Context, email string) (*subdom.Subscriber, error) {
	return r.subs[email], nil
}
func (r *fakeSubRepo) List(_ context.Context) ([]*subdom.Subscriber, error) { return nil, nil }
func (r *fakeSubRepo) Save(_ context.Context, s *subdom.Subscriber) error {
	r.subs[s.Email] = s
	return nil
}
func (r *fakeSubRepo) DeleteByEmail(_ context.Context, email string) error {
	delete(r.subs, email)
	return nil
}

func TestNewsletterHandler_SubscribeValidation(t *testing.T) {
	repo := &fakeSubRepo{subs: map[string]*subdom.Subscriber{}}
	h := NewNewsletterHandler(usecase.NewNewsletterUsecase(repo, nil))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/shop/newsletter", strings.NewReader(`{"email":"Foo@Example.com"}`))
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, repo.subs["foo@example.com"])

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/shop/newsletter", strings.NewReader(`{"email":"nope"}`))
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
