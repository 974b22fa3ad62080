// Package export writes the final symbol table of a run outside the text
// dump: as a YAML document or as rows in a SQLite database.
package export

import (
	"github.com/funvibe/numlang/internal/symbols"
)

// Snapshot is the final state of a run.
type Snapshot struct {
	Run      string  `yaml:"run"`
	Source   string  `yaml:"source"`
	Integers []Entry `yaml:"integers"`
	Doubles  []Entry `yaml:"doubles"`
}

// Entry is one variable. Seq is its position in declaration order across
// both kinds.
type Entry struct {
	Seq   int
	Name  string
	Value symbols.Value
}

func NewSnapshot(runID, source string, st *symbols.SymbolTable) Snapshot {
	s := Snapshot{
		Run:      runID,
		Source:   source,
		Integers: []Entry{},
		Doubles:  []Entry{},
	}
	for i, sym := range st.Symbols() {
		e := Entry{Seq: i + 1, Name: sym.Name, Value: sym.Value}
		if sym.Value.Kind == symbols.Float {
			s.Doubles = append(s.Doubles, e)
		} else {
			s.Integers = append(s.Integers, e)
		}
	}
	return s
}

// Entries returns all entries in declaration order.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, 0, len(s.Integers)+len(s.Doubles))
	i, d := 0, 0
	for i < len(s.Integers) || d < len(s.Doubles) {
		if d >= len(s.Doubles) || (i < len(s.Integers) && s.Integers[i].Seq < s.Doubles[d].Seq) {
			out = append(out, s.Integers[i])
			i++
			continue
		}
		out = append(out, s.Doubles[d])
		d++
	}
	return out
}
