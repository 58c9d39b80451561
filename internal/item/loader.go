package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/kettlewell/stranded/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")
	ErrInvalidConfig         = errors.New("invalid configuration")
)

// Config represents the JSON catalog of item definitions
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"required,min=1,dive"`
}

// Def represents a single item definition in the JSON
type Def struct {
	InternalName string          `json:"internal_name" validate:"required"`
	DisplayName  string          `json:"display_name" validate:"required"`
	Description  string          `json:"description"`
	Kind         domain.ItemKind `json:"kind" validate:"required"`
	Repeating    bool            `json:"repeating,omitempty"` // water_bonus only
}

// Loader handles loading and validating the item catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads and parses an item catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item catalog: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse item catalog: %w", err)
	}

	return &config, nil
}

// Validate checks the catalog for structural and semantic errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := l.validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	internalNames := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if internalNames[def.InternalName] {
			return fmt.Errorf("%w: %q", ErrDuplicateInternalName, def.InternalName)
		}
		internalNames[def.InternalName] = true

		if !def.Kind.Valid() {
			return fmt.Errorf("%w: item %q has kind %q", domain.ErrUnknownItemKind, def.InternalName, def.Kind)
		}

		// A trader never leaves play; a repeating flag on it is a config mistake.
		if def.Kind == domain.KindTrader && def.Repeating {
			return fmt.Errorf("%w: item %q: trader is always repeatable, repeating flag is not configurable", ErrInvalidConfig, def.InternalName)
		}
	}

	return nil
}
