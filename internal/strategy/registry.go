package strategy

import (
	"fmt"
	"strings"
)

// ID identifies one of the strategy variants. The zero value is invalid.
type ID uint8

const (
	IDAlwaysCooperate ID = iota + 1
	IDHoldsGrudge
	IDTitForTat
	IDTitFor2Tats
	IDAlwaysDefect
)

// registry lists every strategy in enumeration order. Ranking ties are
// broken by this order, so it must stay stable.
var registry = []struct {
	id      ID
	ident   string
	name    string
	newFunc func() Strategy
}{
	{IDAlwaysCooperate, "AlwaysCooperate", "Always Cooperate", func() Strategy { return &AlwaysCooperate{} }},
	{IDHoldsGrudge, "HoldsGrudge", "Holds Grudge", func() Strategy { return &HoldsGrudge{} }},
	{IDTitForTat, "TitForTat", "Tit for Tat", func() Strategy { return &TitForTat{} }},
	{IDTitFor2Tats, "TitFor2Tats", "Tit for 2 Tats", func() Strategy { return NewTitFor2Tats() }},
	{IDAlwaysDefect, "AlwaysDefect", "Always Defect", func() Strategy { return &AlwaysDefect{} }},
}

// All returns every strategy ID in enumeration order.
// The caller owns the returned slice.
func All() []ID {
	ids := make([]ID, len(registry))
	for i, r := range registry {
		ids[i] = r.id
	}
	return ids
}

// New constructs a fresh instance of the strategy. It panics if id is not
// a registered strategy.
func New(id ID) Strategy {
	if !id.Valid() {
		panic(fmt.Sprintf("strategy: unknown id %d", id))
	}
	return registry[id.index()].newFunc()
}

// ParseID looks up a strategy by its identifier, ignoring case.
func ParseID(s string) (ID, error) {
	for _, r := range registry {
		if strings.EqualFold(r.ident, s) {
			return r.id, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (valid: %s)", s, strings.Join(identifiers(), ", "))
}

// Valid returns true if the id is a registered strategy.
func (id ID) Valid() bool {
	return id >= IDAlwaysCooperate && id <= IDAlwaysDefect
}

// Order returns the position of the strategy in enumeration order,
// or -1 for an invalid id.
func (id ID) Order() int {
	if !id.Valid() {
		return -1
	}
	return id.index()
}

// String returns the strategy identifier, e.g. "TitFor2Tats".
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", uint8(id))
	}
	return registry[id.index()].ident
}

// Name returns the human-readable strategy name, e.g. "Tit for 2 Tats".
func (id ID) Name() string {
	if !id.Valid() {
		return id.String()
	}
	return registry[id.index()].name
}

func (id ID) index() int { return int(id - IDAlwaysCooperate) }

func identifiers() []string {
	out := make([]string, len(registry))
	for i, r := range registry {
		out[i] = r.ident
	}
	return out
}

// MarshalText encodes the id as its identifier.
func (id ID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("strategy: unknown id %d", id)
	}
	return []byte(id.String()), nil
}

// UnmarshalText decodes an identifier produced by MarshalText.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
