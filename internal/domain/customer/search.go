package customer

import (
	"errors"
	"strings"
)

var ErrAmbiguousSearch = errors.New("exactly one of name or surname must be given")

type SearchField string

const (
	SearchByName    SearchField = "name"
	SearchBySurname SearchField = "surname"
)

// NameSearch is a prefix search on exactly one of name or surname.
type NameSearch struct {
	field  SearchField
	prefix string
}

// NewNameSearch treats blank inputs as absent.
func NewNameSearch(name, surname string) (NameSearch, error) {
	name, surname = strings.TrimSpace(name), strings.TrimSpace(surname)
	switch {
	case name != "" && surname == "":
		return NameSearch{field: SearchByName, prefix: name}, nil
	case surname != "" && name == "":
		return NameSearch{field: SearchBySurname, prefix: surname}, nil
	default:
		return NameSearch{}, ErrAmbiguousSearch
	}
}

func (s NameSearch) Field() SearchField { return s.field }
func (s NameSearch) Prefix() string     { return s.prefix }

// LikePattern escapes LIKE metacharacters and appends the prefix wildcard.
func (s NameSearch) LikePattern() string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s.prefix) + "%"
}
