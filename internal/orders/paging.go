package orders

// PageSizes are the sizes offered by the table's size changer.
var PageSizes = []int{10, 20, 50, 100}

const DefaultPageSize = 10

type Page struct {
	Rows       []Row
	Number     int
	Size       int
	TotalPages int
	TotalRows  int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// NormalizePageSize returns size if it is one of PageSizes, def otherwise.
func NormalizePageSize(size, def int) int {
	for _, s := range PageSizes {
		if s == size {
			return size
		}
	}
	if def <= 0 {
		return DefaultPageSize
	}
	return def
}

// Paginate slices rows for the 1-based page number, clamping out-of-range
// pages to the nearest valid one.
func Paginate(rows []Row, number, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages := (len(rows) + size - 1) / size
	if totalPages == 0 { // Handle case with no orders
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	start := (number - 1) * size
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return Page{
		Rows:       rows[start:end],
		Number:     number,
		Size:       size,
		TotalPages: totalPages,
		TotalRows:  len(rows),
	}
}
