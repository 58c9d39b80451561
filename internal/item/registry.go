package item

import (
	"fmt"

	"github.com/kettlewell/stranded/internal/domain"
)

// Registry holds the built items from a validated catalog and serves lookups
// by internal name. Built once at bootstrap, read-only afterwards.
type Registry struct {
	items map[string]Item
	defs  map[string]Def
}

// NewRegistry builds concrete items from the catalog definitions. roll is the
// randomness source handed to items that need one (nil for the production
// default).
func NewRegistry(config *Config, roll RollFunc) (*Registry, error) {
	r := &Registry{
		items: make(map[string]Item, len(config.Items)),
		defs:  make(map[string]Def, len(config.Items)),
	}

	for _, def := range config.Items {
		built, err := build(def, roll)
		if err != nil {
			return nil, err
		}
		r.items[def.InternalName] = built
		r.defs[def.InternalName] = def
	}

	return r, nil
}

func build(def Def, roll RollFunc) (Item, error) {
	switch def.Kind {
	case domain.KindWaterBonus:
		return NewWaterBonus(def.Repeating), nil
	case domain.KindTrader:
		return NewTrader(roll), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownItemKind, def.Kind)
}

// Get returns the item registered under the internal name.
func (r *Registry) Get(internalName string) (Item, bool) {
	it, ok := r.items[internalName]
	return it, ok
}

// GetDef returns the catalog definition for the internal name.
func (r *Registry) GetDef(internalName string) (Def, bool) {
	def, ok := r.defs[internalName]
	return def, ok
}

// Names returns all registered internal names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}
