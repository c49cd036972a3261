package lazy

import "fmt"

// Condition selects how Accept anchors a match within the input.
type Condition uint8

const (
	// All requires the whole input, scanned from position 0, to be accepted.
	All Condition = iota

	// Head accepts as soon as some prefix of the input is accepted.
	Head

	// Tail accepts if some suffix of the input is accepted.
	Tail
)

// String returns the condition name
func (c Condition) String() string {
	switch c {
	case All:
		return "all"
	case Head:
		return "head"
	case Tail:
		return "tail"
	default:
		return fmt.Sprintf("Condition(%d)", c)
	}
}

// ParseCondition parses "all", "head" or "tail".
func ParseCondition(s string) (Condition, error) {
	switch s {
	case "all":
		return All, nil
	case "head":
		return Head, nil
	case "tail":
		return Tail, nil
	default:
		return All, fmt.Errorf("unknown condition %q (want all, head or tail)", s)
	}
}

// anchors reports whether matching is pinned to the start of the remaining
// input (head) and whether it must run to its end (tail).
func (c Condition) anchors() (head, tail bool) {
	return c == All || c == Head, c == All || c == Tail
}
