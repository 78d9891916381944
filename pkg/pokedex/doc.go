// Package pokedex looks Pokemon up in the PokeAPI catalog.
//
// A Client resolves a Query (dex number or name) to a GET request against
// BaseURL, normalizes the response into a *pokemon.Pokemon and memoizes
// successful results per query for the life of the Client. Failures are
// reported as one of the typed errors in this package and are never cached.
package pokedex
