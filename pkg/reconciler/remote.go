// pkg/reconciler/remote.go
package reconciler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"saidify/internal/domain/cart"
	"saidify/internal/domain/wishlist"
)

// CartRemote is the remote resource contract for the cart (spec'd by the
// storefront backend: GET/PUT/POST /shop/cart).
type CartRemote interface {
	// FetchCart returns the stored line list, or ErrUnauthorized when no
	// identity is resolved.
	FetchCart(ctx context.Context) ([]cart.Line, error)

	// AddLine performs a server-side add-or-increment keyed by the full
	// (productId, size, color) identity tuple and returns the result.
	AddLine(ctx context.Context, line cart.Line) ([]cart.Line, error)

	// Replace pushes the entire list (full-replace) and returns the
	// stored list.
	Replace(ctx context.Context, lines []cart.Line) ([]cart.Line, error)
}

// WishlistRemote is the remote resource contract for the wishlist.
type WishlistRemote interface {
	// FetchWishlist returns the stored set, or ErrUnauthorized.
	FetchWishlist(ctx context.Context) ([]wishlist.Entry, error)

	// Toggle flips membership for productID server-side (the server
	// decides add vs. remove) and returns the resulting set.
	Toggle(ctx context.Context, entry wishlist.Entry) ([]wishlist.Entry, error)
}

// defaultRemoteTimeout bounds every remote call. The reference behavior
// had no timeout at all; a hung request would wedge the session.
const defaultRemoteTimeout = 10 * time.Second

// Client talks to the storefront backend over HTTP and implements both
// CartRemote and WishlistRemote.
type Client struct {
	baseURL string
	http    *http.Client

	// tokenFn supplies the current session credential (Firebase ID
	// token). Empty result means "send no Authorization header".
	tokenFn func() string
}

// NewClient builds a Client for baseURL ("https://api.saidify.shop").
// tokenFn may be nil for a guest-only client.
func NewClient(baseURL string, tokenFn func() string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultRemoteTimeout},
		tokenFn: tokenFn,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("reconciler: marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenFn != nil {
		if tok := strings.TrimSpace(c.tokenFn()); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("reconciler: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ----------------------------
// CartRemote
// ----------------------------

type cartPayload struct {
	Cart []cart.Line `json:"cart"`
}

type cartItemPayload struct {
	Item cart.Line `json:"item"`
}

func (c *Client) FetchCart(ctx context.Context) ([]cart.Line, error) {
	var out cartPayload
	if err := c.do(ctx, http.MethodGet, "/shop/cart", nil, &out); err != nil {
		return nil, err
	}
	return out.Cart, nil
}

func (c *Client) AddLine(ctx context.Context, line cart.Line) ([]cart.Line, error) {
	var out cartPayload
	if err := c.do(ctx, http.MethodPost, "/shop/cart", cartItemPayload{Item: line}, &out); err != nil {
		return nil, err
	}
	return out.Cart, nil
}

func (c *Client) Replace(ctx context.Context, lines []cart.Line) ([]cart.Line, error) {
	if lines == nil {
		lines = []cart.Line{}
	}
	var out cartPayload
	if err := c.do(ctx, http.MethodPut, "/shop/cart", cartPayload{Cart: lines}, &out); err != nil {
		return nil, err
	}
	return out.Cart, nil
}

// ----------------------------
// WishlistRemote
// ----------------------------

type wishlistPayload struct {
	Wishlist []wishlist.Entry `json:"wishlist"`
}

type wishlistTogglePayload struct {
	ProductID string `json:"productId"`
	Title     string `json:"title,omitempty"`
	Price     string `json:"price,omitempty"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category,omitempty"`
}

func (c *Client) FetchWishlist(ctx context.Context) ([]wishlist.Entry, error) {
	var out wishlistPayload
	if err := c.do(ctx, http.MethodGet, "/shop/wishlist", nil, &out); err != nil {
		return nil, err
	}
	return out.Wishlist, nil
}

func (c *Client) Toggle(ctx context.Context, entry wishlist.Entry) ([]wishlist.Entry, error) {
	var out wishlistPayload
	body := wishlistTogglePayload{
		ProductID: entry.ProductID,
		Title:     entry.Title,
		Price:     entry.Price,
		Image:     entry.Image,
		Category:  entry.Category,
	}
	if err := c.do(ctx, http.MethodPost, "/shop/wishlist", body, &out); err != nil {
		return nil, err
	}
	return out.Wishlist, nil
}
