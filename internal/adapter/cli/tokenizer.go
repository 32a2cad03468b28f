package cli

import (
	"fmt"
	"sort"
	"strings"
)

// Prefix marks the start of an argument value, e.g. "d/" in "d/Buy milk".
type Prefix string

const (
	PrefixAssignTo    Prefix = "t/"
	PrefixAssignFrom  Prefix = "f/"
	PrefixDescription Prefix = "d/"
	PrefixDate        Prefix = "o/"
	PrefixIndex       Prefix = "i/"
	PrefixQuery       Prefix = "q/"
	PrefixSort        Prefix = "s/"
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixAddress     Prefix = "a/"
)

// ArgumentMultimap holds the values found for each prefix, in order.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the string or follows whitespace.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	padded := " " + args
	var positions []prefixPosition
	for _, p := range prefixes {
		needle := " " + string(p)
		from := 0
		for {
			i := strings.Index(padded[from:], needle)
			if i < 0 {
				break
			}
			positions = append(positions, prefixPosition{prefix: p, start: from + i + 1})
			from += i + 1
		}
	}
	sort.Slice(positions, func(a, b int) bool { return positions[a].start < positions[b].start })

	m := ArgumentMultimap{values: map[Prefix][]string{}}
	end := len(padded)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(padded[:end])

	for i, pos := range positions {
		valueEnd := len(padded)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(padded[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	values := m.values[p]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

func (m ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// VerifyNoDuplicatePrefixes fails when any of prefixes was given twice.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixes(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("multiple values specified for the following single-valued field(s): %s", strings.Join(dups, " "))
	}
	return nil
}
