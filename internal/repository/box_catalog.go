package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/parcel-service/internal/domain/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid box catalog")

// CatalogError describes one invalid catalog entry.
type CatalogError struct {
	Index   int
	Field   string
	Message string
}

// Error returns the error message for CatalogError.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("boxes[%d].%s: %s", e.Index, e.Field, e.Message)
}

// Unwrap allows errors.Is(err, ErrInvalidCatalog).
func (e *CatalogError) Unwrap() error {
	return ErrInvalidCatalog
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// StaticBoxCatalog serves a fixed, in-memory catalog.
type StaticBoxCatalog struct {
	boxes []model.BoxDefinition
}

// NewStaticBoxCatalog validates boxes and returns a catalog serving them in order.
func NewStaticBoxCatalog(boxes []model.BoxDefinition) (*StaticBoxCatalog, error) {
	normalized, err := normalizeCatalog(boxes)
	if err != nil {
		return nil, err
	}
	return &StaticBoxCatalog{boxes: normalized}, nil
}

// List returns up to limit boxes in catalog order.
func (c *StaticBoxCatalog) List(ctx context.Context, limit int) ([]model.BoxDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultCatalogLimit
	}
	n := min(limit, len(c.boxes))
	out := make([]model.BoxDefinition, n)
	copy(out, c.boxes[:n])
	return out, nil
}

// Count returns the number of boxes in the catalog.
func (c *StaticBoxCatalog) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(c.boxes), nil
}

// FileBoxCatalog is a catalog seeded from a JSON or YAML file.
type FileBoxCatalog struct {
	*StaticBoxCatalog
	path string
}

// NewFileBoxCatalog reads and validates the seed file at path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
func NewFileBoxCatalog(path string) (*FileBoxCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read box catalog: %w", err)
	}

	boxes, err := decodeCatalog(path, data)
	if err != nil {
		return nil, err
	}

	static, err := NewStaticBoxCatalog(boxes)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("boxes", len(static.boxes)).Msg("Loaded box catalog")

	return &FileBoxCatalog{StaticBoxCatalog: static, path: path}, nil
}

// Path returns the seed file the catalog was loaded from.
func (c *FileBoxCatalog) Path() string {
	return c.path
}

// catalogFile accepts either a bare list or {"box_sizes": [...]}.
type catalogFile struct {
	BoxSizes []model.BoxDefinition `json:"box_sizes" yaml:"box_sizes"`
}

func decodeCatalog(path string, data []byte) ([]model.BoxDefinition, error) {
	var (
		boxes   []model.BoxDefinition
		wrapped catalogFile
		listErr error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if listErr = yaml.Unmarshal(data, &boxes); listErr != nil {
			if err := yaml.Unmarshal(data, &wrapped); err != nil {
				return nil, fmt.Errorf("parse box catalog YAML: %w", listErr)
			}
			boxes = wrapped.BoxSizes
		}
	default:
		if listErr = json.Unmarshal(data, &boxes); listErr != nil {
			if err := json.Unmarshal(data, &wrapped); err != nil {
				return nil, fmt.Errorf("parse box catalog JSON: %w", listErr)
			}
			boxes = wrapped.BoxSizes
		}
	}

	return boxes, nil
}

// normalizeCatalog validates entries, assigns missing IDs and rejects duplicates.
func normalizeCatalog(boxes []model.BoxDefinition) ([]model.BoxDefinition, error) {
	out := make([]model.BoxDefinition, len(boxes))
	seen := make(map[string]int, len(boxes))

	for i, box := range boxes {
		if err := validate.Struct(box); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return nil, &CatalogError{Index: i, Field: verrs[0].Field(), Message: validationMessage(verrs[0])}
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}

		if box.ID == "" {
			box.ID = fmt.Sprintf("box_%d", i+1)
		}
		if box.ID == model.FallbackBoxID {
			return nil, &CatalogError{Index: i, Field: "id", Message: "is reserved for the fallback box"}
		}
		if prev, dup := seen[box.ID]; dup {
			return nil, &CatalogError{Index: i, Field: "id", Message: fmt.Sprintf("duplicates boxes[%d]", prev)}
		}
		seen[box.ID] = i
		out[i] = box
	}

	return out, nil
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	default:
		return "failed " + e.Tag() + " validation"
	}
}
