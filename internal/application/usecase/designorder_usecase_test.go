package usecase

import (
	"context"
	"testing"

	blankdom "saidify/internal/domain/blankproduct"
	dodom "saidify/internal/domain/designorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlankRepo struct {
	blanks map[string]*blankdom.BlankProduct
}

func newFakeBlankRepo(blanks ...*blankdom.BlankProduct) *fakeBlankRepo {
	r := &fakeBlankRepo{blanks: map[string]*blankdom.BlankProduct{}}
	for _, b := range blanks {
		r.blanks[b.ID] = b
	}
	return r
}

func (r *fakeBlankRepo) GetByID(_ context.Context, id string) (*blankdom.BlankProduct, error) {
	return r.blanks[id], nil
}

func (r *fakeBlankRepo) List(_ context.Context) ([]*blankdom.BlankProduct, error) {
	var out []*blankdom.BlankProduct
	for _, b := range r.blanks {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBlankRepo) Save(_ context.Context, b *blankdom.BlankProduct) error {
	r.blanks[b.ID] = b
	return nil
}

func (r *fakeBlankRepo) Delete(_ context.Context, id string) error {
	delete(r.blanks, id)
	return nil
}

type fakeDesignOrderRepo struct {
	orders map[string]*dodom.DesignOrder
}

func newFakeDesignOrderRepo() *fakeDesignOrderRepo {
	return &fakeDesignOrderRepo{orders: map[string]*dodom.DesignOrder{}}
}

func (r *fakeDesignOrderRepo) GetByID(_ context.Context, id string) (*dodom.DesignOrder, error) {
	return r.orders[id], nil
}

func (r *fakeDesignOrderRepo) ListByUserID(_ context.Context, userID string) ([]*dodom.DesignOrder, error) {
	var out []*dodom.DesignOrder
	for _, d := range r.orders {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDesignOrderRepo) List(_ context.Context) ([]*dodom.DesignOrder, error) {
	var out []*dodom.DesignOrder
	for _, d := range r.orders {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDesignOrderRepo) Save(_ context.Context, d *dodom.DesignOrder) error {
	r.orders[d.ID] = d
	return nil
}

func (r *fakeDesignOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func testBlank() *blankdom.BlankProduct {
	return &blankdom.BlankProduct{
		ID:    "blank-1",
		Title: "Classic Tee",
		Views: []blankdom.View{
			{Name: "front", MockupURL: "https://img/front.png", Zone: blankdom.PrintZone{X: 10, Y: 10, Width: 200, Height: 300}},
			{Name: "back", MockupURL: "https://img/back.png", Zone: blankdom.PrintZone{X: 10, Y: 10, Width: 200, Height: 300}},
		},
	}
}

func TestDesignOrderUsecase_CreateValidDesign(t *testing.T) {
	uc := NewDesignOrderUsecase(newFakeDesignOrderRepo(), newFakeBlankRepo(testBlank()), nil)

	layers := []dodom.Layer{
		{Type: dodom.LayerText, View: "front", Text: "hello", FontName: "Inter", FontSize: 24, TextColor: "#000"},
		{Type: dodom.LayerImage, View: "back", AssetURL: "https://storage.googleapis.com/b/designs/u1/x.png"},
	}

	d, err := uc.Create(context.Background(), "u1", "blank-1", "black", "M", layers)
	require.NoError(t, err)
	assert.Equal(t, dodom.StatusSubmitted, d.Status)
	assert.Len(t, d.Layers, 2)
}

func TestDesignOrderUsecase_CreateRejectsUnknownView(t *testing.T) {
	uc := NewDesignOrderUsecase(newFakeDesignOrderRepo(), newFakeBlankRepo(testBlank()), nil)

	layers := []dodom.Layer{
		{Type: dodom.LayerText, View: "sleeve", Text: "hello"},
	}

	_, err := uc.Create(context.Background(), "u1", "blank-1", "black", "M", layers)
	assert.ErrorIs(t, err, dodom.ErrInvalidViewRef)
}

func TestDesignOrderUsecase_CreateRejectsLayerWithoutPayload(t *testing.T) {
	uc := NewDesignOrderUsecase(newFakeDesignOrderRepo(), newFakeBlankRepo(testBlank()), nil)

	_, err := uc.Create(context.Background(), "u1", "blank-1", "black", "M", []dodom.Layer{
		{Type: dodom.LayerText, View: "front"},
	})
	assert.ErrorIs(t, err, dodom.ErrInvalidLayer)

	_, err = uc.Create(context.Background(), "u1", "blank-1", "black", "M", []dodom.Layer{
		{Type: dodom.LayerImage, View: "front"},
	})
	assert.ErrorIs(t, err, dodom.ErrInvalidLayer)
}

func TestDesignOrderUsecase_CreateMissingBlank(t *testing.T) {
	uc := NewDesignOrderUsecase(newFakeDesignOrderRepo(), newFakeBlankRepo(), nil)

	_, err := uc.Create(context.Background(), "u1", "ghost", "black", "M", nil)
	assert.ErrorIs(t, err, ErrBlankNotFound)
}

func TestDesignOrderUsecase_GetEnforcesOwnership(t *testing.T) {
	repo := newFakeDesignOrderRepo()
	uc := NewDesignOrderUsecase(repo, newFakeBlankRepo(testBlank()), nil)

	d, err := uc.Create(context.Background(), "u1", "blank-1", "black", "M", []dodom.Layer{
		{Type: dodom.LayerText, View: "front", Text: "hi"},
	})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), "intruder", d.ID, false)
	assert.ErrorIs(t, err, ErrDesignOrderForbidden)

	got, err := uc.Get(context.Background(), "u1", d.ID, false)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
}

func TestDesignOrderUsecase_SetStatus(t *testing.T) {
	repo := newFakeDesignOrderRepo()
	uc := NewDesignOrderUsecase(repo, newFakeBlankRepo(testBlank()), nil)

	d, err := uc.Create(context.Background(), "u1", "blank-1", "black", "M", []dodom.Layer{
		{Type: dodom.LayerText, View: "front", Text: "hi"},
	})
	require.NoError(t, err)

	got, err := uc.SetStatus(context.Background(), d.ID, dodom.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, dodom.StatusApproved, got.Status)
}
