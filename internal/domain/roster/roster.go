// Package roster resolves case-insensitive competitor display names to
// the opaque identifiers the game source is queried by. The mapping is
// static: the rest of the system is name-agnostic and only ever sees
// raw identifiers.
package roster

import (
	"sort"
	"strings"
)

// Competitor pairs a source identifier with its canonical display name.
type Competitor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Roster holds the name → competitor lookup table.
type Roster struct {
	byName     map[string]Competitor
	canonicals []Competitor
}

// Entry declares one competitor and the extra names it resolves under.
type Entry struct {
	ID      string
	Name    string
	Aliases []string
}

// New builds a roster from the given entries. Names and aliases are
// matched case-insensitively and with surrounding whitespace ignored.
func New(entries []Entry) *Roster {
	r := &Roster{
		byName:     make(map[string]Competitor, len(entries)*2),
		canonicals: make([]Competitor, 0, len(entries)),
	}
	for _, e := range entries {
		c := Competitor{ID: e.ID, Name: e.Name}
		r.canonicals = append(r.canonicals, c)
		r.byName[normalize(e.Name)] = c
		for _, a := range e.Aliases {
			r.byName[normalize(a)] = c
		}
	}
	sort.Slice(r.canonicals, func(i, j int) bool {
		return r.canonicals[i].Name < r.canonicals[j].Name
	})
	return r
}

// Resolve looks up a display name. The boolean is false for names the
// roster does not know; callers must surface that before any fetch.
func (r *Roster) Resolve(name string) (Competitor, bool) {
	c, ok := r.byName[normalize(name)]
	return c, ok
}

// List returns all competitors sorted by canonical name.
func (r *Roster) List() []Competitor {
	out := make([]Competitor, len(r.canonicals))
	copy(out, r.canonicals)
	return out
}

// Size returns the number of distinct competitors.
func (r *Roster) Size() int {
	return len(r.canonicals)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
