package geo

import (
	"log"
	"strings"
)

// CodeUnmappable marks feed entries that have no geographic home, such as
// cruise-ship cohorts. Callers treat it exactly like a resolution miss.
const CodeUnmappable = "xx"

// Resolver maps free-form country display names to ISO2 codes. It is
// deterministic and side-effect free apart from logging misses; construct one
// per consumer rather than sharing a package singleton.
type Resolver struct {
	table []aliasEntry
	exact map[string]string
}

// NewResolver builds a resolver over the canonical alias table
func NewResolver() *Resolver {
	exact := make(map[string]string, len(aliasTable))
	for _, e := range aliasTable {
		exact[e.Name] = e.Code
	}
	return &Resolver{table: aliasTable, exact: exact}
}

// Resolve returns the ISO2 code for a country display name. Resolution tries,
// in order: exact table lookup, case-insensitive match, then bidirectional
// substring match where the first table entry wins, not the best one. A name
// nothing matches returns ("", false); the caller drops the country from
// map output but keeps it everywhere else.
func (r *Resolver) Resolve(name string) (string, bool) {
	if code, ok := r.exact[name]; ok {
		return code, true
	}

	lower := strings.ToLower(name)
	for _, e := range r.table {
		if strings.ToLower(e.Name) == lower {
			return e.Code, true
		}
	}

	for _, e := range r.table {
		entryLower := strings.ToLower(e.Name)
		if strings.Contains(entryLower, lower) || strings.Contains(lower, entryLower) {
			return e.Code, true
		}
	}

	log.Printf("[CountryResolver] no ISO2 code found for country: %s", name)
	return "", false
}

// ResolveMappable resolves a name and additionally reports sentinel codes as
// misses, for callers producing geographic output.
func (r *Resolver) ResolveMappable(name string) (string, bool) {
	code, ok := r.Resolve(name)
	if !ok || code == CodeUnmappable {
		return "", false
	}
	return code, true
}

// IsSupported reports whether a name resolves to any code
func (r *Resolver) IsSupported(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// SupportedCountries lists every spelling the table knows, in table order
func (r *Resolver) SupportedCountries() []string {
	names := make([]string, 0, len(r.table))
	for _, e := range r.table {
		names = append(names, e.Name)
	}
	return names
}
