package polarbear

import (
	"bytes"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Kind is an enumeration type representing the element kinds supported by
// columns and indexes.
type Kind int8

const (
	Bool Kind = iota
	Int32
	Int64
	Float32
	Float64
	String
	Bytes
	UUID
	Time
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "BOOL"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Float32:
		return "FLOAT32"
	case Float64:
		return "FLOAT64"
	case String:
		return "STRING"
	case Bytes:
		return "BYTES"
	case UUID:
		return "UUID"
	case Time:
		return "TIME"
	default:
		return "<?>"
	}
}

// KindOf returns the Kind of the go value passed as argument, or panics if
// the value has a type which cannot be held in a column.
func KindOf(v any) Kind {
	switch v.(type) {
	case uuid.UUID:
		return UUID
	case time.Time:
		return Time
	}

	t := reflect.TypeOf(v)
	if t == nil {
		panic("cannot create polarbear column from untyped nil value")
	}
	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		return Int32
	case reflect.Int64, reflect.Int, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return Int64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.String:
		return String
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return Bytes
		}
	}

	panic("cannot create polarbear column from go value of type " + t.String())
}

// CompareUUID compares two uuid values in their bytewise order, making UUIDs
// usable as sorted index labels through the comparator-based constructors.
func CompareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// CompareTime compares two times by their position on the time line,
// making timestamps usable as sorted index labels through the
// comparator-based constructors.
func CompareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return +1
	default:
		return 0
	}
}

// formatValue renders a single element for display, keeping a stable, human
// readable form for each supported kind.
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return value
	case []byte:
		return fmt.Sprintf("%x", value)
	case uuid.UUID:
		return value.String()
	case time.Time:
		return value.Format(time.RFC3339)
	default:
		return fmt.Sprint(value)
	}
}
