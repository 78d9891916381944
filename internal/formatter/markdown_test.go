package formatter

import (
	"strings"
	"testing"

	"pokedex/pkg/pokemon"
)

func TestFormatTable(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:   "Basic table formatting",
			header: []string{"Header 1", "Header 2"},
			rows:   [][]string{{"val 1", "val 2"}},
			expected: `| Header 1 | Header 2 |
| -------- | -------- |
| val 1    | val 2    |`,
		},
		{
			name:   "Minimum separator width",
			header: []string{"A", "B"},
			rows:   [][]string{{"x", "y"}},
			expected: `| A   | B   |
| --- | --- |
| x   | y   |`,
		},
		{
			name:   "Wide runes",
			header: []string{"Name", "Kind"},
			rows:   [][]string{{"フシギダネ", "seed"}},
			expected: `| Name       | Kind |
| ---------- | ---- |
| フシギダネ | seed |`,
		},
		{
			name:   "Short rows are padded",
			header: []string{"Move", "Method", "Level"},
			rows:   [][]string{{"tackle"}},
			expected: `| Move   | Method | Level |
| ------ | ------ | ----- |
| tackle |        |       |`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(FormatTable(tt.header, tt.rows), "\n")
			if got != tt.expected {
				t.Errorf("FormatTable() =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}

func samplePokemon() *pokemon.Pokemon {
	level := 5
	front := "default_front_url"

	return pokemon.New(pokemon.Attributes{
		Dex:            999,
		Name:           "sample",
		Height:         200.2,
		Weight:         201.2,
		BaseExperience: 200,
		Types:          []string{"type_1", "type_2"},
		Abilities:      []pokemon.Ability{{Name: "ability_1", IsHidden: true}, {Name: "ability_2"}},
		BaseStats:      pokemon.BaseStats{HP: 1, Attack: 2, Defense: 3, SpecialAttack: 4, SpecialDefense: 5, Speed: 6},
		Moves: map[string][]pokemon.Move{
			"game_1": {{Name: "move_1", LearnMethod: "tutor"}},
			"game_2": {{Name: "move_1", LearnMethod: "level-up", Level: &level}},
		},
		Sprites: pokemon.Sprites{
			Front: map[string]*string{"default": &front, "shiny_female": nil},
			Back:  map[string]*string{},
		},
	})
}

func TestFormatPokemon(t *testing.T) {
	out := FormatPokemon(samplePokemon(), "game_2")

	for _, want := range []string{
		"# sample (#999)",
		"| Types           | type_1, type_2 |",
		"| Height          | 200.2          |",
		"| 1   | 2   | 3   | 4   | 5   | 6   | 21    |",
		"| ability_1 | yes    |",
		"## Moves in game_2",
		"| move_1 | level-up | 5     |",
		"| front       | default      | default_front_url |",
		"| front       | shiny_female | -                 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatPokemon output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatPokemon_NotObtainable(t *testing.T) {
	out := FormatPokemon(samplePokemon(), "unknown_game")

	if !strings.Contains(out, "_sample is not obtainable in unknown_game_") {
		t.Errorf("FormatPokemon output missing not-obtainable note:\n%s", out)
	}
}

func TestFormatPokemon_NoGame(t *testing.T) {
	out := FormatPokemon(samplePokemon(), "")

	if strings.Contains(out, "## Moves") {
		t.Errorf("FormatPokemon listed moves without a game:\n%s", out)
	}
}
