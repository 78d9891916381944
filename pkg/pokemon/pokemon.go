// Package pokemon provides the immutable Pokemon entity built from catalog data.
package pokemon

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrNotObtainable is matched by NotObtainableError.
var ErrNotObtainable = errors.New("pokemon is not obtainable in game")

// NotObtainableError reports a query against a game the Pokemon does not appear in.
type NotObtainableError struct {
	Name string
	Game string
}

func (e *NotObtainableError) Error() string {
	return fmt.Sprintf("%s is not obtainable in %s", e.Name, e.Game)
}

// Is reports whether target is ErrNotObtainable.
func (e *NotObtainableError) Is(target error) bool {
	return target == ErrNotObtainable
}

// Ability is a single ability slot.
type Ability struct {
	Name     string `json:"name" yaml:"name"`
	IsHidden bool   `json:"isHidden" yaml:"is_hidden"`
}

// BaseStats holds the six base stats.
type BaseStats struct {
	HP             int `json:"hp" yaml:"hp"`
	Attack         int `json:"attack" yaml:"attack"`
	Defense        int `json:"defense" yaml:"defense"`
	SpecialAttack  int `json:"specialAttack" yaml:"special_attack"`
	SpecialDefense int `json:"specialDefense" yaml:"special_defense"`
	Speed          int `json:"speed" yaml:"speed"`
}

// Total returns the sum of all six stats.
func (s BaseStats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Move describes how a move is learned in one version group.
// Level is nil when the move is not learned by levelling up.
type Move struct {
	Level       *int   `json:"level" yaml:"level"`
	Name        string `json:"name" yaml:"name"`
	LearnMethod string `json:"learnMethod" yaml:"learn_method"`
}

// Sprites maps variant tags to sprite URLs per orientation.
// A nil URL means the variant exists upstream but has no image.
type Sprites struct {
	Front map[string]*string `json:"front" yaml:"front"`
	Back  map[string]*string `json:"back" yaml:"back"`
}

// Attributes is the full set of fields a Pokemon is assembled from.
type Attributes struct {
	Sprites        Sprites           `json:"sprites" yaml:"sprites"`
	Moves          map[string][]Move `json:"moves" yaml:"moves"`
	Name           string            `json:"name" yaml:"name"`
	Types          []string          `json:"types" yaml:"types"`
	Abilities      []Ability         `json:"abilities" yaml:"abilities"`
	BaseStats      BaseStats         `json:"baseStats" yaml:"base_stats"`
	Height         float64           `json:"height" yaml:"height"`
	Weight         float64           `json:"weight" yaml:"weight"`
	Dex            int               `json:"dex" yaml:"dex"`
	BaseExperience int               `json:"baseExperience" yaml:"base_experience"`
}

// Pokemon is a read-only catalog entry. Equality and ordering are by dex
// number only; the catalog guarantees dex numbers are unique.
type Pokemon struct {
	attrs Attributes
}

// New assembles a Pokemon from attrs. Slices and maps are copied, so later
// changes to attrs do not reach the returned value.
func New(attrs Attributes) *Pokemon {
	return &Pokemon{attrs: cloneAttributes(attrs)}
}

// Dex returns the national dex number.
func (p *Pokemon) Dex() int { return p.attrs.Dex }

// Name returns the catalog name.
func (p *Pokemon) Name() string { return p.attrs.Name }

// Height returns the height as reported by the catalog.
func (p *Pokemon) Height() float64 { return p.attrs.Height }

// Weight returns the weight as reported by the catalog.
func (p *Pokemon) Weight() float64 { return p.attrs.Weight }

// BaseExperience returns the base experience yield.
func (p *Pokemon) BaseExperience() int { return p.attrs.BaseExperience }

// BaseStats returns the base stats.
func (p *Pokemon) BaseStats() BaseStats { return p.attrs.BaseStats }

// Types returns the type names in game order.
func (p *Pokemon) Types() []string { return slices.Clone(p.attrs.Types) }

// Abilities returns the abilities in catalog order.
func (p *Pokemon) Abilities() []Ability { return slices.Clone(p.attrs.Abilities) }

// Moves returns the move index keyed by version group.
func (p *Pokemon) Moves() map[string][]Move { return cloneMoveIndex(p.attrs.Moves) }

// Sprites returns the sprite URLs split by orientation.
func (p *Pokemon) Sprites() Sprites { return cloneSprites(p.attrs.Sprites) }

// Snapshot returns a copy of every attribute, suitable for encoding.
func (p *Pokemon) Snapshot() Attributes { return cloneAttributes(p.attrs) }

// Games returns the version groups the Pokemon appears in, sorted by name.
func (p *Pokemon) Games() []string {
	return slices.Sorted(maps.Keys(p.attrs.Moves))
}

// ExistsIn reports whether the Pokemon appears in the given version group.
func (p *Pokemon) ExistsIn(game string) bool {
	_, ok := p.attrs.Moves[game]

	return ok
}

// MovesIn returns the moves learnable in game.
func (p *Pokemon) MovesIn(game string) ([]Move, error) {
	moves, ok := p.attrs.Moves[game]
	if !ok {
		return nil, &NotObtainableError{Name: p.attrs.Name, Game: game}
	}

	return cloneMoves(moves), nil
}

// Learns reports whether the Pokemon can learn moveName in game. It fails with
// a NotObtainableError when the Pokemon does not appear in game at all.
func (p *Pokemon) Learns(moveName, game string) (bool, error) {
	moves, ok := p.attrs.Moves[game]
	if !ok {
		return false, &NotObtainableError{Name: p.attrs.Name, Game: game}
	}

	return slices.ContainsFunc(moves, func(m Move) bool {
		return m.Name == moveName
	}), nil
}

// Equal reports whether p and other share a dex number.
func (p *Pokemon) Equal(other *Pokemon) bool {
	return p.attrs.Dex == other.attrs.Dex
}

// Compare orders by dex number, returning -1, 0 or +1.
func (p *Pokemon) Compare(other *Pokemon) int {
	return cmp.Compare(p.attrs.Dex, other.attrs.Dex)
}

// Less reports whether p sorts before other.
func (p *Pokemon) Less(other *Pokemon) bool {
	return p.attrs.Dex < other.attrs.Dex
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("Pokemon(dex=%d, name='%s')", p.attrs.Dex, p.attrs.Name)
}

// MarshalJSON encodes the Pokemon's attributes.
func (p *Pokemon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.attrs)
}

// SortByDex sorts pokemon in place by dex number.
func SortByDex(pokemon []*Pokemon) {
	slices.SortFunc(pokemon, func(a, b *Pokemon) int {
		return a.Compare(b)
	})
}

func cloneAttributes(a Attributes) Attributes {
	a.Types = slices.Clone(a.Types)
	a.Abilities = slices.Clone(a.Abilities)
	a.Moves = cloneMoveIndex(a.Moves)
	a.Sprites = cloneSprites(a.Sprites)

	return a
}

func cloneMoveIndex(index map[string][]Move) map[string][]Move {
	out := make(map[string][]Move, len(index))
	for game, moves := range index {
		out[game] = cloneMoves(moves)
	}

	return out
}

func cloneMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		if m.Level != nil {
			level := *m.Level
			m.Level = &level
		}

		out[i] = m
	}

	return out
}

func cloneSprites(s Sprites) Sprites {
	return Sprites{
		Front: cloneURLs(s.Front),
		Back:  cloneURLs(s.Back),
	}
}

func cloneURLs(urls map[string]*string) map[string]*string {
	out := make(map[string]*string, len(urls))
	for variant, url := range urls {
		if url != nil {
			u := *url
			url = &u
		}

		out[variant] = url
	}

	return out
}
