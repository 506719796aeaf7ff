package polarbear_test

import (
	"sort"
	"testing"

	"github.com/valoox/polarbear"
	"github.com/valoox/polarbear/internal/quick"
)

func TestBounds(t *testing.T) {
	err := quick.Check(func(values []int32) bool {
		min, max := polarbear.Bounds(values)
		if polarbear.Min(values) != min || polarbear.Max(values) != max {
			return false
		}
		if len(values) == 0 {
			return min == 0 && max == 0
		}
		sorted := make([]int32, len(values))
		copy(sorted, values)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		return min == sorted[0] && max == sorted[len(sorted)-1]
	}, quick.Int31n(1000))
	if err != nil {
		t.Error(err)
	}
}

func TestBoundsEmpty(t *testing.T) {
	min, max := polarbear.Bounds([]float64{})
	if min != 0 || max != 0 {
		t.Errorf("bounds of an empty slice: got=(%g,%g) want=(0,0)", min, max)
	}
}

func TestMinMaxSingle(t *testing.T) {
	if min := polarbear.Min([]string{"only"}); min != "only" {
		t.Errorf("min of a single element: got=%q", min)
	}
	if max := polarbear.Max([]string{"only"}); max != "only" {
		t.Errorf("max of a single element: got=%q", max)
	}
}
