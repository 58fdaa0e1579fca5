package reconciler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saidify/internal/domain/cart"
)

func TestClient_FetchCartUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.FetchCart(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_CartContract(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/shop/cart", r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(cartPayload{Cart: []cart.Line{{ProductID: "p1", Quantity: 2}}})
		case http.MethodPost:
			var in cartItemPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(cartPayload{Cart: []cart.Line{in.Item}})
		case http.MethodPut:
			var in cartPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(in)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, func() string { return "tok-123" })
	ctx := context.Background()

	lines, err := c.FetchCart(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	lines, err = c.AddLine(ctx, cart.Line{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)

	lines, err = c.Replace(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestClient_ErrorStatusSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Replace(context.Background(), []cart.Line{{ProductID: "p1", Quantity: 1}})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestFileStore_RoundTripAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, ok, err := s.Get(LocalCartKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(LocalCartKey, []byte(`[{"productId":"p1"}]`)))
	b, ok, err := s.Get(LocalCartKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"productId":"p1"}]`, string(b))

	require.NoError(t, s.Delete(LocalCartKey))
	_, ok, err = s.Get(LocalCartKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key is fine
	require.NoError(t, s.Delete(LocalCartKey))
}
