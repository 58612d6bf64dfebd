package content

// Page is one contiguous window of an ordered catalog.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices a 1-based page out of items. TotalPages is
// ceil(len/pageSize), zero for an empty list. Keeping the requested page
// in range after the list changes length is the caller's job; Paginate
// does not clamp, it just returns an empty window for an out-of-range
// page rather than panicking.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize <= 0 {
		return Page[T]{Items: []T{}}
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if page < 1 || start >= len(items) {
		return Page[T]{Items: []T{}, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{Items: items[start:end:end], TotalPages: totalPages}
}
