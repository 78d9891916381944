package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"pokedex/pkg/pokemon"
)

// ErrInvalidTransformerDataType is returned when the data type is invalid.
var ErrInvalidTransformerDataType = errors.New("invalid data type: expected normalizer.Document")

// ErrInvalidDex is returned when the document id is not a positive integer.
var ErrInvalidDex = errors.New("id must be a positive integer")

// Sprite orientations recognised in sprite keys such as "front_shiny_female".
const (
	orientationFront = "front"
	orientationBack  = "back"
	spriteSeparator  = "_"
)

// statSlots maps catalog stat names onto BaseStats fields.
var statSlots = map[string]func(*pokemon.BaseStats) *int{
	"hp":              func(s *pokemon.BaseStats) *int { return &s.HP },
	"attack":          func(s *pokemon.BaseStats) *int { return &s.Attack },
	"defense":         func(s *pokemon.BaseStats) *int { return &s.Defense },
	"special-attack":  func(s *pokemon.BaseStats) *int { return &s.SpecialAttack },
	"special-defense": func(s *pokemon.BaseStats) *int { return &s.SpecialDefense },
	"speed":           func(s *pokemon.BaseStats) *int { return &s.Speed },
}

// statOrder is used to report the first unfilled slot deterministically.
var statOrder = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// Transformer reshapes a validated Document into a Pokemon.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform converts data into a *pokemon.Pokemon.
func (t *Transformer) Transform(data any) (*pokemon.Pokemon, error) {
	doc, ok := data.(Document)
	if !ok {
		return nil, ErrInvalidTransformerDataType
	}

	var (
		attrs pokemon.Attributes
		err   error
	)

	if attrs.Dex, err = intField(doc, "", "id"); err != nil {
		return nil, err
	}

	if attrs.Dex <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDex, attrs.Dex)
	}

	if attrs.Name, err = stringField(doc, "", "name"); err != nil {
		return nil, err
	}

	if attrs.Height, err = floatField(doc, "", "height"); err != nil {
		return nil, err
	}

	if attrs.Weight, err = floatField(doc, "", "weight"); err != nil {
		return nil, err
	}

	if attrs.BaseExperience, err = intField(doc, "", "base_experience"); err != nil {
		return nil, err
	}

	if attrs.BaseStats, err = t.baseStats(doc); err != nil {
		return nil, err
	}

	if attrs.Abilities, err = t.abilities(doc); err != nil {
		return nil, err
	}

	if attrs.Types, err = t.types(doc); err != nil {
		return nil, err
	}

	if attrs.Moves, err = t.moves(doc); err != nil {
		return nil, err
	}

	if attrs.Sprites, err = t.sprites(doc); err != nil {
		return nil, err
	}

	return pokemon.New(attrs), nil
}

// baseStats fills the six slots. Unknown stat names are ignored.
func (t *Transformer) baseStats(doc Document) (pokemon.BaseStats, error) {
	var stats pokemon.BaseStats

	list, err := entries(doc, "", "stats")
	if err != nil {
		return stats, err
	}

	filled := make(map[string]bool, len(statSlots))

	for i, entry := range list {
		path := entryPath("", "stats", i)

		name, err := resourceName(entry, path, "stat")
		if err != nil {
			return stats, err
		}

		value, err := intField(entry, path, "base_stat")
		if err != nil {
			return stats, err
		}

		slot, ok := statSlots[name]
		if !ok {
			continue
		}

		*slot(&stats) = value
		filled[name] = true
	}

	for _, name := range statOrder {
		if !filled[name] {
			return stats, fmt.Errorf("%w: %s", ErrMissingStat, name)
		}
	}

	return stats, nil
}

func (t *Transformer) abilities(doc Document) ([]pokemon.Ability, error) {
	list, err := entries(doc, "", "abilities")
	if err != nil {
		return nil, err
	}

	abilities := make([]pokemon.Ability, 0, len(list))

	for i, entry := range list {
		path := entryPath("", "abilities", i)

		name, err := resourceName(entry, path, "ability")
		if err != nil {
			return nil, err
		}

		hidden, err := boolField(entry, path, "is_hidden")
		if err != nil {
			return nil, err
		}

		abilities = append(abilities, pokemon.Ability{Name: name, IsHidden: hidden})
	}

	return abilities, nil
}

func (t *Transformer) types(doc Document) ([]string, error) {
	list, err := entries(doc, "", "types")
	if err != nil {
		return nil, err
	}

	types := make([]string, 0, len(list))

	for i, entry := range list {
		name, err := resourceName(entry, entryPath("", "types", i), "type")
		if err != nil {
			return nil, err
		}

		types = append(types, name)
	}

	return types, nil
}

// moves groups every move's version-group details by version group.
// A level of zero means the move is not learned by levelling up.
func (t *Transformer) moves(doc Document) (map[string][]pokemon.Move, error) {
	list, err := entries(doc, "", "moves")
	if err != nil {
		return nil, err
	}

	index := make(map[string][]pokemon.Move)

	for i, entry := range list {
		path := entryPath("", "moves", i)

		name, err := resourceName(entry, path, "move")
		if err != nil {
			return nil, err
		}

		details, err := entries(entry, path, "version_group_details")
		if err != nil {
			return nil, err
		}

		for j, detail := range details {
			detailPath := entryPath(path, "version_group_details", j)

			level, err := intField(detail, detailPath, "level_learned_at")
			if err != nil {
				return nil, err
			}

			method, err := resourceName(detail, detailPath, "move_learn_method")
			if err != nil {
				return nil, err
			}

			game, err := resourceName(detail, detailPath, "version_group")
			if err != nil {
				return nil, err
			}

			move := pokemon.Move{Name: name, LearnMethod: method}
			if level != 0 {
				move.Level = &level
			}

			index[game] = append(index[game], move)
		}
	}

	return index, nil
}

// sprites splits each "<orientation>_<variant>" key on its first separator.
// Null URLs are kept. Nested objects and unknown orientations are skipped.
func (t *Transformer) sprites(doc Document) (pokemon.Sprites, error) {
	sprites := pokemon.Sprites{
		Front: make(map[string]*string),
		Back:  make(map[string]*string),
	}

	raw, err := objectField(doc, "", "sprites")
	if err != nil {
		return sprites, err
	}

	for key, value := range raw {
		orientation, variant, ok := strings.Cut(key, spriteSeparator)
		if !ok || variant == "" {
			continue
		}

		var url *string

		switch v := value.(type) {
		case nil:
		case string:
			url = &v
		default:
			continue
		}

		switch orientation {
		case orientationFront:
			sprites.Front[variant] = url
		case orientationBack:
			sprites.Back[variant] = url
		}
	}

	return sprites, nil
}
