// Package schema resolves property keys to their descriptions using a
// YAML catalog: the embedded built-in catalog plus optional overlay files.
package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/listprops/internal/types"
)

//go:embed properties.yaml
var builtin []byte

// Flag names accepted in a catalog.
const (
	FlagSystem    = "system"
	FlagInnate    = "innate"
	FlagPurgeable = "purgeable"
	FlagViewable  = "viewable"
)

var flagBits = map[string]types.TypeFlags{
	FlagSystem:    types.FlagSystem,
	FlagInnate:    types.FlagInnate,
	FlagPurgeable: types.FlagPurgeable,
	FlagViewable:  types.FlagViewable,
}

// Catalog is a parsed property description file.
type Catalog struct {
	Properties []Entry `yaml:"properties"`
}

// Entry describes one property.
type Entry struct {
	Canonical string   `yaml:"canonical"`
	Display   string   `yaml:"display"`
	Key       string   `yaml:"key"`
	Flags     []string `yaml:"flags"`
}

// Validate validates the entry.
func (e *Entry) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Key, validation.Required, validation.By(isKey)),
		validation.Field(&e.Flags, validation.Each(validation.In(FlagSystem, FlagInnate, FlagPurgeable, FlagViewable))),
	)
}

func isKey(value interface{}) error {
	s, _ := value.(string)
	if _, err := types.ParseKey(s); err != nil {
		return errors.New("must be a property key such as \"{FMTID} PID\"")
	}
	return nil
}

// Validate validates every entry.
func (c *Catalog) Validate() error {
	for i := range c.Properties {
		if err := c.Properties[i].Validate(); err != nil {
			return fmt.Errorf("property %d (%s): %w", i, c.Properties[i].Canonical, err)
		}
	}
	return nil
}

// Parse decodes and validates a catalog. Unknown fields are errors.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// descriptor converts a validated entry.
func (e *Entry) descriptor() (types.Key, types.Descriptor) {
	key, _ := types.ParseKey(e.Key)

	var flags types.TypeFlags
	for _, name := range e.Flags {
		flags |= flagBits[name]
	}

	return key, types.Descriptor{
		DisplayName:   e.Display,
		CanonicalName: e.Canonical,
		TypeFlags:     flags,
	}
}

// Resolver answers descriptor lookups. It is acquired once per run with
// Open and released with Close.
type Resolver struct {
	byKey map[types.Key]types.Descriptor
}

// Open loads the built-in catalog, then each overlay file in order. Later
// entries replace earlier ones with the same key.
func Open(overlays ...string) (*Resolver, error) {
	r := &Resolver{byKey: make(map[types.Key]types.Descriptor)}

	builtinCatalog, err := Parse(bytes.NewReader(builtin))
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	r.Add(builtinCatalog)

	for _, path := range overlays {
		if err := r.addFile(path); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Resolver) addFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	r.Add(c)
	return nil
}

// Add merges a validated catalog into the resolver.
func (r *Resolver) Add(c *Catalog) {
	for i := range c.Properties {
		key, desc := c.Properties[i].descriptor()
		r.byKey[key] = desc
	}
}

// Describe returns the descriptor of key. It reports false for unknown
// keys and after Close.
func (r *Resolver) Describe(key types.Key) (types.Descriptor, bool) {
	desc, ok := r.byKey[key]
	return desc, ok
}

// Len returns the number of described keys.
func (r *Resolver) Len() int {
	return len(r.byKey)
}

// Close releases the catalog.
func (r *Resolver) Close() error {
	r.byKey = nil
	return nil
}
