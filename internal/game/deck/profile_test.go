package deck_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/handodds/internal/game/deck"
	"github.com/cory-johannsen/handodds/internal/game/hand"
)

const brandedYAML = `name: Branded
deck_size: 40
hand_size: 5
cards:
  - id: aluber
    name: Aluber the Jester of Despia
    copies: 3
  - name: Branded Fusion
    copies: 2
    min: 1
    max: 1
`

func TestParse_Profile(t *testing.T) {
	p, err := deck.Parse([]byte(brandedYAML))
	require.NoError(t, err)
	assert.Equal(t, "Branded", p.Name)
	assert.Equal(t, 40, p.DeckSize)
	assert.Equal(t, 5, p.HandSize)
	require.Len(t, p.Cards, 2)
	assert.Equal(t, "aluber", p.Cards[0].ID)

	_, err = uuid.Parse(p.Cards[1].ID)
	assert.NoError(t, err, "cards without an id get a UUID")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := deck.Parse([]byte("name: x\ndeck_size: 40\nhand_size: 5\nsideboard: 15\n"))
	assert.Error(t, err)
}

func TestParse_RequiresName(t *testing.T) {
	_, err := deck.Parse([]byte("deck_size: 40\nhand_size: 5\n"))
	assert.Error(t, err)
}

func TestCard_CategoryDefaults(t *testing.T) {
	p, err := deck.Parse([]byte(brandedYAML))
	require.NoError(t, err)

	assert.Equal(t, hand.Category{ID: "aluber", Label: "Aluber the Jester of Despia", Count: 3, Min: 1, Max: 3},
		p.Cards[0].Category())
	c := p.Cards[1].Category()
	assert.Equal(t, 2, c.Count)
	assert.Equal(t, 1, c.Min)
	assert.Equal(t, 1, c.Max)
}

func TestProfile_Request(t *testing.T) {
	p, err := deck.Parse([]byte(brandedYAML))
	require.NoError(t, err)

	r, err := p.Request(5)
	require.NoError(t, err)
	assert.Equal(t, 40, r.Population)
	assert.Equal(t, 5, r.HandSize)
	require.Len(t, r.Categories, 2)

	res, err := hand.Probability(r)
	require.NoError(t, err)
	assert.Positive(t, res.Float64())
}

func TestProfile_RequestEnforcesCardLimit(t *testing.T) {
	p, err := deck.Parse([]byte(brandedYAML))
	require.NoError(t, err)

	_, err = p.Request(1)
	assert.ErrorIs(t, err, deck.ErrTooManyCards)

	_, err = p.Request(0)
	assert.NoError(t, err, "0 means unlimited")
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "branded.yaml"), []byte(brandedYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blank.yaml"), []byte("name: Blank\ndeck_size: 60\nhand_size: 7\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0755))

	reg, err := deck.LoadDirectory(dir)
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Blank", all[0].Name)
	assert.Equal(t, "Branded", all[1].Name)

	p, ok := reg.Get("Blank")
	require.True(t, ok)
	assert.Equal(t, 60, p.DeckSize)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestLoadDirectory_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: [unterminated"), 0644))
	_, err := deck.LoadDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadDirectory_Missing(t *testing.T) {
	_, err := deck.LoadDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestRegistry_RegisterUnnamedPanics(t *testing.T) {
	reg := deck.NewRegistry()
	assert.Panics(t, func() { reg.Register(nil) })
	assert.Panics(t, func() { reg.Register(&deck.Profile{}) })
}

func TestLoadDirectory_ShippedProfiles(t *testing.T) {
	reg, err := deck.LoadDirectory("../../../content/decks")
	require.NoError(t, err)
	require.NotEmpty(t, reg.All())
	for _, p := range reg.All() {
		r, err := p.Request(5)
		require.NoError(t, err, p.Name)
		res, err := hand.Probability(r)
		require.NoError(t, err, p.Name)
		assert.Positive(t, res.Float64(), p.Name)
	}
}

func TestLoadDirectory_DuplicateName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("name: Same\ndeck_size: 40\nhand_size: 5\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("name: Same\ndeck_size: 60\nhand_size: 7\n"), 0644))

	reg, err := deck.LoadDirectory(dir)
	require.ErrorIs(t, err, deck.ErrDuplicateProfile)
	assert.Nil(t, reg)
	assert.Contains(t, err.Error(), "a.yaml")
	assert.Contains(t, err.Error(), "b.yaml")
	assert.Contains(t, err.Error(), `"Same"`)
}

func TestRegistry_Select(t *testing.T) {
	reg := deck.NewRegistry()
	reg.Register(&deck.Profile{Name: "Beta"})
	reg.Register(&deck.Profile{Name: "Alpha"})

	all, err := reg.Select()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Name)

	picked, err := reg.Select("Beta")
	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, "Beta", picked[0].Name)

	_, err = reg.Select("Alpha", "Gamma")
	assert.ErrorIs(t, err, deck.ErrUnknownProfile)
	assert.Contains(t, err.Error(), "Gamma")
}

func TestCard_CategoryZeroCopiesDefaultsToZeroMin(t *testing.T) {
	p, err := deck.Parse([]byte("name: Empty\ndeck_size: 40\nhand_size: 5\ncards:\n  - name: Nothing\n    copies: 0\n"))
	require.NoError(t, err)
	cat := p.Cards[0].Category()
	assert.Equal(t, 0, cat.Min)
	assert.Equal(t, 0, cat.Max)

	r, err := p.Request(5)
	require.NoError(t, err)
	res, err := hand.Probability(r)
	require.NoError(t, err)
	assert.Equal(t, "1", res.Rat().RatString())
}
