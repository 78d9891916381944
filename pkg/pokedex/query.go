package pokedex

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Query selects a Pokemon by exactly one of dex number or name.
// The zero value selects nothing and is rejected by Lookup.
type Query struct {
	Name string
	ID   int
}

// ByID returns a Query for a national dex number.
func ByID(id int) Query {
	return Query{ID: id}
}

// ByName returns a Query for a Pokemon name. Names are matched case-insensitively.
func ByName(name string) Query {
	return Query{Name: name}
}

// resolve validates q and returns the request path segment and the cache key.
func (q Query) resolve() (segment, key string, err error) {
	hasID := q.ID != 0
	hasName := q.Name != ""

	switch {
	case hasID && hasName:
		return "", "", &InvalidArgumentError{Reason: "expected exactly one of ID or Name, got both"}
	case !hasID && !hasName:
		return "", "", &InvalidArgumentError{Reason: "expected exactly one of ID or Name, got neither"}
	case hasID:
		if q.ID < 0 {
			return "", "", &InvalidArgumentError{Reason: "ID must be a positive integer, got " + strconv.Itoa(q.ID)}
		}

		segment = strconv.Itoa(q.ID)

		return segment, "id:" + segment, nil
	}

	if strings.TrimSpace(q.Name) == "" {
		return "", "", &InvalidArgumentError{Reason: "Name must not be blank"}
	}

	// cases.Caser is stateful, so one is built per call.
	segment = cases.Lower(language.Und).String(q.Name)

	return segment, "name:" + segment, nil
}

func (q Query) String() string {
	if q.Name != "" {
		return "name=" + q.Name
	}

	return "id=" + strconv.Itoa(q.ID)
}
