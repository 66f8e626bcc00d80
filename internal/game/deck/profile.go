// Package deck loads deck profiles: a deck size, a hand size, and the tracked
// cards whose opening-hand odds a player wants to know.
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/handodds/internal/game/hand"
)

// ErrTooManyCards is returned when a profile tracks more cards than allowed.
var ErrTooManyCards = errors.New("deck: too many tracked cards")

// ErrDuplicateProfile is returned when two files in a directory declare the
// same profile name.
var ErrDuplicateProfile = errors.New("deck: duplicate profile name")

// ErrUnknownProfile is returned when a named profile is not registered.
var ErrUnknownProfile = errors.New("deck: unknown profile")

// Card is one tracked card in a profile.
type Card struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Copies int    `yaml:"copies"`
	// Min defaults to 1 (0 for a card with no copies) and Max to Copies
	// when omitted.
	Min *int `yaml:"min"`
	Max *int `yaml:"max"`
}

// Category converts c into an engine category, applying defaults.
func (c Card) Category() hand.Category {
	lo, hi := min(1, c.Copies), c.Copies
	if c.Min != nil {
		lo = *c.Min
	}
	if c.Max != nil {
		hi = *c.Max
	}
	return hand.Category{ID: c.ID, Label: c.Name, Count: c.Copies, Min: lo, Max: hi}
}

// Profile is a named deck configuration, loaded from YAML.
type Profile struct {
	Name     string `yaml:"name"`
	DeckSize int    `yaml:"deck_size"`
	HandSize int    `yaml:"hand_size"`
	Cards    []Card `yaml:"cards"`
}

// Request builds the engine request for p.
//
// Precondition: maxCards >= 0; 0 means no limit.
// Postcondition: returns ErrTooManyCards when p tracks more than maxCards cards.
// The request itself is not validated; hand.Probability does that.
func (p *Profile) Request(maxCards int) (hand.Request, error) {
	if maxCards > 0 && len(p.Cards) > maxCards {
		return hand.Request{}, fmt.Errorf("%w: profile %q tracks %d, limit is %d",
			ErrTooManyCards, p.Name, len(p.Cards), maxCards)
	}
	cats := make([]hand.Category, 0, len(p.Cards))
	for _, c := range p.Cards {
		cats = append(cats, c.Category())
	}
	return hand.Request{Population: p.DeckSize, HandSize: p.HandSize, Categories: cats}, nil
}

// Parse decodes a single YAML profile. Unknown fields are rejected.
// Cards without an id are assigned a random UUID.
//
// Postcondition: returns a non-nil Profile with a non-empty Name, or an error.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("profile name must not be empty")
	}
	for i := range p.Cards {
		if p.Cards[i].ID == "" {
			p.Cards[i].ID = uuid.New().String()
		}
	}
	return &p, nil
}

// LoadFile reads and parses the profile at path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return p, nil
}

// Registry holds profiles keyed by name.
type Registry struct {
	profiles map[string]*Profile
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]*Profile)}
}

// Register adds p, replacing any profile with the same name.
//
// Precondition: p must not be nil and p.Name must not be empty.
func (r *Registry) Register(p *Profile) {
	if p == nil || p.Name == "" {
		panic("deck: Register requires a named profile")
	}
	r.profiles[p.Name] = p
}

// Get returns the profile called name, or (nil, false).
func (r *Registry) Get(name string) (*Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// Select returns the named profiles in the order given, or every profile
// sorted by name when names is empty.
//
// Postcondition: returns ErrUnknownProfile naming the first missing profile.
func (r *Registry) Select(names ...string) ([]*Profile, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	out := make([]*Profile, 0, len(names))
	for _, name := range names {
		p, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
		}
		out = append(out, p)
	}
	return out, nil
}

// All returns every profile sorted by name.
func (r *Registry) All() []*Profile {
	out := make([]*Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LoadDirectory parses every *.yaml file in dir into a Registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: returns a populated Registry, or an error naming the first
// file that failed to parse or whose profile name is already taken.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading profile dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	sources := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := sources[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q in %q and %q", ErrDuplicateProfile, p.Name, prev, path)
		}
		sources[p.Name] = path
		reg.Register(p)
	}
	return reg, nil
}
