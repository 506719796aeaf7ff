package polarbear_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/valoox/polarbear"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		value any
		kind  polarbear.Kind
	}{
		{value: false, kind: polarbear.Bool},
		{value: int8(0), kind: polarbear.Int32},
		{value: int16(0), kind: polarbear.Int32},
		{value: int32(0), kind: polarbear.Int32},
		{value: uint16(0), kind: polarbear.Int32},
		{value: int64(0), kind: polarbear.Int64},
		{value: int(0), kind: polarbear.Int64},
		{value: uint64(0), kind: polarbear.Int64},
		{value: float32(0), kind: polarbear.Float32},
		{value: float64(0), kind: polarbear.Float64},
		{value: "", kind: polarbear.String},
		{value: []byte(nil), kind: polarbear.Bytes},
		{value: uuid.UUID{}, kind: polarbear.UUID},
		{value: time.Time{}, kind: polarbear.Time},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			if kind := polarbear.KindOf(test.value); kind != test.kind {
				t.Errorf("KindOf(%T): got=%s want=%s", test.value, kind, test.kind)
			}
		})
	}
}

func TestKindOfUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unsupported type accepted")
		}
	}()
	polarbear.KindOf(struct{}{})
}

func TestCompareUUID(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	if polarbear.CompareUUID(a, b) >= 0 {
		t.Error("a does not compare below b")
	}
	if polarbear.CompareUUID(b, a) <= 0 {
		t.Error("b does not compare above a")
	}
	if polarbear.CompareUUID(a, a) != 0 {
		t.Error("a does not compare equal to itself")
	}
}

func TestCompareTime(t *testing.T) {
	earlier := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	if polarbear.CompareTime(earlier, later) != -1 {
		t.Error("earlier does not compare below later")
	}
	if polarbear.CompareTime(later, earlier) != +1 {
		t.Error("later does not compare above earlier")
	}
	if polarbear.CompareTime(earlier, earlier) != 0 {
		t.Error("time does not compare equal to itself")
	}
}

func TestTimeIndex(t *testing.T) {
	base := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	labels := []time.Time{base, base.Add(time.Minute), base.Add(2 * time.Minute)}

	index, err := polarbear.NewSortedFunc(labels, polarbear.CompareTime)
	if err != nil {
		t.Fatal(err)
	}
	i, ok := index.Lookup(base.Add(time.Minute))
	if !ok || i != 1 {
		t.Errorf("Lookup: got=(%d,%t) want=(1,true)", i, ok)
	}
}
