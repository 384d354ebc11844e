package slice

import (
	"reflect"
	"testing"
)

func TestMap(t *testing.T) {
	t.Parallel()

	mapperFunc := func(a uint32) uint64 {
		return uint64(a)
	}

	testCases := []struct {
		name     string
		f        func(a uint32) uint64
		input    []uint32
		expected []uint64
	}{
		{
			name:     "test_ok",
			f:        mapperFunc,
			input:    []uint32{1, 2, 3},
			expected: []uint64{1, 2, 3},
		},
		{
			name:     "test_func_nil",
			input:    []uint32{1, 2, 3},
			expected: []uint64{},
		},
		{
			name:     "test_nil_input",
			f:        mapperFunc,
			expected: []uint64{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()
				converted := Map(tc.input, tc.f)
				if !reflect.DeepEqual(converted, tc.expected) {
					t.Errorf("got: %v, want: %v", converted, tc.expected)
				}
			},
		)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	type item struct {
		id   int
		tags []string
	}

	tests := []struct {
		name     string
		input    []item
		fn       func(item) bool
		expected []item
	}{
		{
			name:     "test_filtered",
			input:    []item{{id: 1}, {id: 2, tags: []string{"a"}}, {id: 3}},
			fn:       func(i item) bool { return i.id > 1 },
			expected: []item{{id: 2, tags: []string{"a"}}, {id: 3}},
		},
		{
			name:     "test_filtered_empty",
			input:    []item{{id: 1}, {id: 2}},
			fn:       func(i item) bool { return i.id > 6 },
			expected: []item{},
		},
		{
			name:     "test_nil_func_keeps_all",
			input:    []item{{id: 1}, {id: 2}},
			expected: []item{{id: 1}, {id: 2}},
		},
		{
			name:     "test_nil_input",
			input:    nil,
			fn:       func(i item) bool { return i.id > 6 },
			expected: []item{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()

				output := Filter(tc.input, tc.fn)
				if !reflect.DeepEqual(output, tc.expected) {
					t.Errorf("got: %v, want: %v", output, tc.expected)
				}
			},
		)
	}
}

func TestFlat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    [][]int
		expected []int
	}{
		{
			name:     "test_rows_0",
			input:    [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			expected: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name:     "test_rows_1",
			input:    [][]int{{}, {}, {1, 2, 3}},
			expected: []int{1, 2, 3},
		},
		{
			name:     "test_input_nil",
			input:    nil,
			expected: []int{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()
				output := Flat(tc.input)
				if !reflect.DeepEqual(output, tc.expected) {
					t.Errorf("Flat(%v) = %v, expected %v", tc.input, output, tc.expected)
				}
			},
		)
	}
}

func TestUniq(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "test_keeps_first_occurrence",
			input:    []string{"bob", "alice", "bob", "carol", "alice"},
			expected: []string{"bob", "alice", "carol"},
		},
		{
			name:     "test_no_duplicates",
			input:    []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "test_input_nil",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(
			tc.name, func(t *testing.T) {
				t.Parallel()
				output := Uniq(tc.input)
				if !reflect.DeepEqual(output, tc.expected) {
					t.Errorf("Uniq(%v) = %v, expected %v", tc.input, output, tc.expected)
				}
			},
		)
	}
}
