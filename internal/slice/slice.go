package slice

// Map applies the given function to each element in the input list and returns a new list
// containing the results. Returns an empty list if the input list is empty or if the provided
// function is nil.
func Map[T, R any](list []T, f func(t T) R) []R {
	if f == nil {
		return make([]R, 0)
	}

	output := make([]R, 0, len(list))

	for idx := range list {
		output = append(output, f(list[idx]))
	}

	return output
}

// Filter returns a new slice containing the elements of the input slice that pass the provided
// filter function. A nil filter function keeps every element.
func Filter[T any](arr []T, filterFn func(v T) bool) []T {
	output := make([]T, 0, len(arr))
	for _, v := range arr {
		if filterFn == nil || filterFn(v) {
			output = append(output, v)
		}
	}

	return output
}

// Flat flattens a 2-dimensional slice into one-dimensional slice.
func Flat[T any](list [][]T) []T {
	t := make([]T, 0, len(list))
	for idx := range list {
		t = append(t, list[idx]...)
	}

	return t
}

// Uniq returns the distinct elements of list, keeping the first occurrence of each.
func Uniq[T comparable](list []T) []T {
	seen := make(map[T]struct{}, len(list))
	output := make([]T, 0, len(list))
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		output = append(output, v)
	}

	return output
}
