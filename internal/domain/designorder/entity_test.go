package designorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	views = []string{"front", "back"}
)

func TestNewValidDesign(t *testing.T) {
	d, err := New("d1", "u1", "blank-1", "black", "M", []Layer{
		{Type: LayerText, View: "front", Text: "hello", Transform: Transform{Scale: 1}},
		{Type: LayerImage, View: "back", AssetURL: "https://x/y.png"},
	}, views, t0)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, d.Status)
}

func TestValidateLayerPayloads(t *testing.T) {
	_, err := New("d1", "u1", "b1", "", "", []Layer{{Type: LayerText, View: "front"}}, views, t0)
	assert.ErrorIs(t, err, ErrInvalidLayer)

	_, err = New("d1", "u1", "b1", "", "", []Layer{{Type: LayerImage, View: "front"}}, views, t0)
	assert.ErrorIs(t, err, ErrInvalidLayer)

	_, err = New("d1", "u1", "b1", "", "", []Layer{{Type: LayerType("sticker"), View: "front"}}, views, t0)
	assert.ErrorIs(t, err, ErrUnknownLayer)
}

func TestValidateViewReferences(t *testing.T) {
	_, err := New("d1", "u1", "b1", "", "", []Layer{
		{Type: LayerText, View: "sleeve", Text: "hi"},
	}, views, t0)
	assert.ErrorIs(t, err, ErrInvalidViewRef)

	// nil viewNames skips the reference check
	d := &DesignOrder{ID: "d1", UserID: "u1", BlankID: "b1", Status: StatusDraft,
		Layers: []Layer{{Type: LayerText, View: "sleeve", Text: "hi"}}}
	assert.NoError(t, d.Validate(nil))
}
