package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewFileBoxCatalog(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantIDs   []string
		wantLimit []float64
	}{
		{
			name: "json list",
			file: "boxes.json",
			content: `[
				{"id": "box_s", "name": "Small", "length": 20, "width": 15, "height": 10, "weight_limit": 5},
				{"name": "Large", "length": 40, "width": 30, "height": 30}
			]`,
			wantIDs:   []string{"box_s", "box_2"},
			wantLimit: []float64{5, 0},
		},
		{
			name:      "json wrapped",
			file:      "boxes.json",
			content:   `{"box_sizes": [{"id": "a", "name": "A", "length": 1, "width": 1, "height": 1}]}`,
			wantIDs:   []string{"a"},
			wantLimit: []float64{0},
		},
		{
			name: "yaml list",
			file: "boxes.yaml",
			content: `
- id: mailer
  name: Mailer
  length: 30
  width: 20
  height: 5
  weight_limit: 2
`,
			wantIDs:   []string{"mailer"},
			wantLimit: []float64{2},
		},
		{
			name: "yaml wrapped",
			file: "boxes.yml",
			content: `
box_sizes:
  - name: Cube
    length: 10
    width: 10
    height: 10
`,
			wantIDs:   []string{"box_1"},
			wantLimit: []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := NewFileBoxCatalog(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			boxes, err := catalog.List(context.Background(), 0)
			require.NoError(t, err)
			require.Len(t, boxes, len(tt.wantIDs))
			for i, b := range boxes {
				assert.Equal(t, tt.wantIDs[i], b.ID)
				assert.Equal(t, tt.wantLimit[i], b.WeightLimitLbs)
			}
		})
	}
}

func TestNewFileBoxCatalog_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileBoxCatalog(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := NewFileBoxCatalog(writeFile(t, "bad.json", `{not json`))
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := NewFileBoxCatalog(writeFile(t, "boxes.json", `[{"length": 1, "width": 1, "height": 1}]`))

		assert.ErrorIs(t, err, ErrInvalidCatalog)
		var catErr *CatalogError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, 0, catErr.Index)
		assert.Equal(t, "name", catErr.Field)
		assert.Equal(t, "boxes[0].name: is required", err.Error())
	})

	t.Run("negative dimension", func(t *testing.T) {
		_, err := NewFileBoxCatalog(writeFile(t, "boxes.json", `[{"name": "A", "length": -1, "width": 1, "height": 1}]`))

		var catErr *CatalogError
		require.True(t, errors.As(err, &catErr))
		assert.Equal(t, "length", catErr.Field)
	})
}

func TestNewStaticBoxCatalog_RejectsDuplicateAndReservedIDs(t *testing.T) {
	_, err := NewStaticBoxCatalog([]model.BoxDefinition{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "A again"},
	})
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = NewStaticBoxCatalog([]model.BoxDefinition{{ID: model.FallbackBoxID, Name: "Custom"}})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestStaticBoxCatalog_List(t *testing.T) {
	boxes := make([]model.BoxDefinition, 0, 150)
	for i := 0; i < 150; i++ {
		boxes = append(boxes, model.BoxDefinition{Name: "box", LengthCm: float64(i)})
	}
	catalog, err := NewStaticBoxCatalog(boxes)
	require.NoError(t, err)

	all, err := catalog.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, DefaultCatalogLimit)

	few, err := catalog.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"box_1", "box_2", "box_3"}, []string{few[0].ID, few[1].ID, few[2].ID})

	few[0].Name = "mutated"
	again, _ := catalog.List(context.Background(), 1)
	assert.Equal(t, "box", again[0].Name)

	count, err := catalog.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150, count)
}

func TestStaticBoxCatalog_CancelledContext(t *testing.T) {
	catalog, err := NewStaticBoxCatalog(nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = catalog.List(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = catalog.Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
