package polarbear

import "github.com/segmentio/encoding/json"

// MarshalJSON encodes the series as an object with parallel "index" and
// "values" arrays.
func (s *Series[L, V]) MarshalJSON() ([]byte, error) {
	values, err := s.Values()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Index  []L `json:"index"`
		Values []V `json:"values"`
	}{
		Index:  s.Labels(),
		Values: values,
	})
}

// MarshalJSON encodes the frame as an object with an "index" array and a
// "columns" array of {name, kind, values} objects in column declaration
// order.
func (f *Frame[L]) MarshalJSON() ([]byte, error) {
	type frameColumn struct {
		Name   string `json:"name"`
		Kind   string `json:"kind"`
		Values any    `json:"values"`
	}

	columns := make([]frameColumn, len(f.columns))
	for i, col := range f.columns {
		values, err := col.Values()
		if err != nil {
			return nil, err
		}
		columns[i] = frameColumn{
			Name:   col.Name(),
			Kind:   col.Kind().String(),
			Values: values,
		}
	}

	return json.Marshal(struct {
		Index   []L           `json:"index"`
		Columns []frameColumn `json:"columns"`
	}{
		Index:   f.index.Labels(),
		Columns: columns,
	})
}
