// Package main provides the pokedex command, which looks Pokemon up in PokeAPI
// and prints them as markdown tables, JSON or YAML.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"pokedex/internal/config"
	"pokedex/internal/formatter"
	"pokedex/internal/logger"
	"pokedex/pkg/pokedex"
	"pokedex/pkg/pokemon"
)

func main() {
	// 1. Define Command-Line Flags
	// ---------------------------
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	ids := flag.String("id", "", "Comma-separated dex numbers to look up")
	names := flag.String("name", "", "Comma-separated Pokemon names to look up")
	format := flag.String("format", "", "Output format: table, json or yaml")
	game := flag.String("game", "", "Version group whose moves are listed (table output)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")

	flag.Parse()

	cfg, err := loadConfig(*configPath, *ids, *names, *format, *game, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Initialize Logger
	log := logger.NewLogger(cfg.Logging.Level)

	queries := cfg.Queries()
	if len(queries) == 0 {
		log.Error("Please provide at least one Pokemon with -id, -name or a config file")
		flag.PrintDefaults()
		os.Exit(2)
	}

	log.Debug("Loaded configuration", "config", cfg.String())

	// 2. Lookup
	// ---------
	client := pokedex.NewClient(pokedex.WithLogger(log.Slog()))

	var (
		found  []*pokemon.Pokemon
		failed int
	)

	for _, q := range queries {
		p, err := client.Lookup(context.Background(), q)
		if err != nil {
			failed++

			log.Error(fmt.Sprintf("❌ Lookup %s failed: %v", q, err), "kind", errorKind(err))

			continue
		}

		log.Info(fmt.Sprintf("✅ Found %s", p))

		found = append(found, p)
	}

	// 3. Output
	// ---------
	pokemon.SortByDex(found)

	if err := render(os.Stdout, cfg.Output, found); err != nil {
		log.Error(fmt.Sprintf("❌ Output failed: %v", err))
		os.Exit(1)
	}

	if failed > 0 {
		log.Warn(fmt.Sprintf("⚠️  %d of %d lookups failed", failed, len(queries)))
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(path, ids, names, format, game, level string) (*config.Config, error) {
	cfg := config.Default()

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	for _, raw := range splitList(ids) {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid -id %q: %w", raw, err)
		}

		cfg.Lookup.IDs = append(cfg.Lookup.IDs, id)
	}

	cfg.Lookup.Names = append(cfg.Lookup.Names, splitList(names)...)

	if format != "" {
		cfg.Output.Format = format
	}

	if game != "" {
		cfg.Output.Game = game
	}

	if level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func render(w io.Writer, out config.OutputConfig, found []*pokemon.Pokemon) error {
	switch out.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(snapshots(found))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(snapshots(found)); err != nil {
			return err
		}

		return enc.Close()
	}

	for i, p := range found {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, formatter.FormatPokemon(p, out.Game)); err != nil {
			return err
		}
	}

	return nil
}

func snapshots(found []*pokemon.Pokemon) []pokemon.Attributes {
	out := make([]pokemon.Attributes, 0, len(found))
	for _, p := range found {
		out = append(out, p.Snapshot())
	}

	return out
}

func errorKind(err error) string {
	var (
		notFound  *pokedex.NotFoundError
		remote    *pokedex.RemoteError
		transport *pokedex.TransportError
		missing   *pokedex.MissingDataError
		invalid   *pokedex.InvalidArgumentError
	)

	switch {
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &remote):
		return "remote"
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &missing):
		return "missing_data"
	case errors.As(err, &invalid):
		return "invalid_argument"
	}

	return "unknown"
}
