package typelens

// DataType names the most specific scalar type a value was inferred to be.
//
// Mixed and Empty only ever describe collections: Mixed means the elements
// disagree, Empty means there were no non-empty elements to judge. A single
// scalar always infers to one of the remaining types.
type DataType int

const (
	None DataType = iota
	Integer
	Float
	Boolean
	String
	Date
	Time
	Datetime
	Mixed
	Empty
)

func (t DataType) String() string {
	switch t {
	case None:
		return "NONE"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case Boolean:
		return "BOOLEAN"
	case String:
		return "STRING"
	case Date:
		return "DATE"
	case Time:
		return "TIME"
	case Datetime:
		return "DATETIME"
	case Mixed:
		return "MIXED"
	case Empty:
		return "EMPTY"
	}
	panic("impossible, type switch bug")
}

// Promote folds the type of one more element into the dominant type of a
// collection. Equal types keep the dominant type, Integer widens to Float
// when the two are mixed, and any other disagreement is Mixed. Once Mixed,
// always Mixed.
func Promote(dominant, next DataType) DataType {
	if dominant == next {
		return dominant
	}
	if (dominant == Integer && next == Float) || (dominant == Float && next == Integer) {
		return Float
	}
	return Mixed
}

// Column describes one profiled column of a tabular input.
type Column struct {
	Name string
	Type DataType
}
