// Package formatter renders Pokemon as markdown.
package formatter

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"pokedex/pkg/pokemon"
)

const minColumnWidth = 3

// FormatPokemon renders p as a markdown document of aligned tables. When game
// is set, the moves learnable in that version group are listed too; a game the
// Pokemon does not appear in is reported as a note instead.
func FormatPokemon(p *pokemon.Pokemon, game string) string {
	var sections []string

	sections = append(sections, fmt.Sprintf("# %s (#%d)", p.Name(), p.Dex()))

	sections = append(sections, strings.Join(FormatTable(
		[]string{"Field", "Value"},
		[][]string{
			{"Types", strings.Join(p.Types(), ", ")},
			{"Height", strconv.FormatFloat(p.Height(), 'f', -1, 64)},
			{"Weight", strconv.FormatFloat(p.Weight(), 'f', -1, 64)},
			{"Base experience", strconv.Itoa(p.BaseExperience())},
		},
	), "\n"))

	stats := p.BaseStats()
	sections = append(sections, "## Base stats\n\n"+strings.Join(FormatTable(
		[]string{"HP", "Atk", "Def", "SpA", "SpD", "Spe", "Total"},
		[][]string{{
			strconv.Itoa(stats.HP),
			strconv.Itoa(stats.Attack),
			strconv.Itoa(stats.Defense),
			strconv.Itoa(stats.SpecialAttack),
			strconv.Itoa(stats.SpecialDefense),
			strconv.Itoa(stats.Speed),
			strconv.Itoa(stats.Total()),
		}},
	), "\n"))

	var abilityRows [][]string

	for _, a := range p.Abilities() {
		hidden := ""
		if a.IsHidden {
			hidden = "yes"
		}

		abilityRows = append(abilityRows, []string{a.Name, hidden})
	}

	sections = append(sections, "## Abilities\n\n"+strings.Join(FormatTable([]string{"Ability", "Hidden"}, abilityRows), "\n"))

	if game != "" {
		sections = append(sections, formatMoves(p, game))
	}

	sections = append(sections, "## Sprites\n\n"+strings.Join(FormatTable([]string{"Orientation", "Variant", "URL"}, spriteRows(p.Sprites())), "\n"))

	return strings.Join(sections, "\n\n") + "\n"
}

func formatMoves(p *pokemon.Pokemon, game string) string {
	heading := fmt.Sprintf("## Moves in %s", game)

	moves, err := p.MovesIn(game)
	if errors.Is(err, pokemon.ErrNotObtainable) {
		return heading + "\n\n_" + err.Error() + "_"
	}

	rows := make([][]string, 0, len(moves))

	for _, m := range moves {
		level := "-"
		if m.Level != nil {
			level = strconv.Itoa(*m.Level)
		}

		rows = append(rows, []string{m.Name, m.LearnMethod, level})
	}

	return heading + "\n\n" + strings.Join(FormatTable([]string{"Move", "Method", "Level"}, rows), "\n")
}

func spriteRows(s pokemon.Sprites) [][]string {
	var rows [][]string

	for _, side := range []struct {
		name string
		urls map[string]*string
	}{{"front", s.Front}, {"back", s.Back}} {
		variants := make([]string, 0, len(side.urls))
		for v := range side.urls {
			variants = append(variants, v)
		}

		slices.Sort(variants)

		for _, v := range variants {
			url := "-"
			if u := side.urls[v]; u != nil {
				url = *u
			}

			rows = append(rows, []string{side.name, v, url})
		}
	}

	return rows
}

// FormatTable renders a markdown table whose columns are padded to the widest
// cell by display width, so wide runes line up in a terminal.
func FormatTable(header []string, rows [][]string) []string {
	colCount := len(header)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator (usually 3 dashes "---")
	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	separator := make([]string, colCount)
	for i, w := range colWidths {
		separator[i] = strings.Repeat("-", w)
	}

	result := []string{renderRow(header, colWidths), renderRow(separator, colWidths)}
	for _, row := range rows {
		result = append(result, renderRow(row, colWidths))
	}

	return result
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
