package internal

import (
	"fmt"
	"strings"
)

// cellKind tags which of the two shapes a Cell currently holds.
type cellKind uint8

const (
	kindText cellKind = iota
	kindFormula
)

// Cell is one entry of a Sheet. It holds exactly one of two shapes, chosen
// at each set: literal text, or a parsed formula with a memoized value. Its
// outgoing references live in refs (ordered, deduplicated); its back-edges
// live in incoming, which the owning Sheet mutates directly as cells around
// it change.
type Cell struct {
	kind   cellKind
	raw    string // TextCell: the raw string verbatim
	ast    Expr   // FormulaCell: the parsed expression
	cached *CellValue

	refs     []Position // outgoing references; empty for a text cell
	incoming map[Position]struct{}
}

func newCell() *Cell {
	return &Cell{incoming: make(map[Position]struct{})}
}

// set classifies raw and installs it as this cell's content. Empty input,
// input not starting with '=', or the bare string "=" become a text cell.
// Anything else is handed to the formula parser; on a parse failure the
// cell is left unchanged and the error is returned.
func (c *Cell) set(raw string) error {
	if raw == "" || raw[0] != '=' || raw == "=" {
		c.kind = kindText
		c.raw = raw
		c.ast = nil
		c.cached = nil
		c.refs = nil
		return nil
	}
	ast, err := ParseFormula(raw[1:])
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	c.kind = kindFormula
	c.raw = ""
	c.ast = ast
	c.cached = nil
	c.refs = ReferencedPositions(ast)
	return nil
}

// Value returns this cell's current value, evaluating and memoizing a
// formula's result on first access after creation or invalidation. resolve
// is supplied by the owning Sheet and must treat an absent position as
// Number(0).
func (c *Cell) Value(resolve func(Position) CellValue) CellValue {
	switch c.kind {
	case kindText:
		if strings.HasPrefix(c.raw, "'") {
			return TextValue(c.raw[1:])
		}
		return TextValue(c.raw)
	case kindFormula:
		if c.cached != nil {
			return *c.cached
		}
		v := Evaluate(c.ast, resolve)
		c.cached = &v
		return v
	default:
		return TextValue("")
	}
}

// Text returns this cell's source text: the raw string verbatim for a text
// cell (including any leading escape quote), or '=' followed by the
// formula's canonical print for a formula cell.
func (c *Cell) Text() string {
	switch c.kind {
	case kindText:
		return c.raw
	case kindFormula:
		return "=" + CanonicalPrint(c.ast)
	default:
		return ""
	}
}

// Referenced returns the unique positions this cell's formula references, in
// first-appearance order. Empty for a text cell.
func (c *Cell) Referenced() []Position {
	return c.refs
}

// ClearCache drops any memoized value. No-op on a text cell.
func (c *Cell) ClearCache() {
	c.cached = nil
}

func (c *Cell) addIncoming(p Position)    { c.incoming[p] = struct{}{} }
func (c *Cell) removeIncoming(p Position) { delete(c.incoming, p) }

// refSet builds a membership set from an ordered reference list, for
// computing set differences during SetCell's back-edge rewiring.
func refSet(refs []Position) map[Position]struct{} {
	set := make(map[Position]struct{}, len(refs))
	for _, p := range refs {
		set[p] = struct{}{}
	}
	return set
}
