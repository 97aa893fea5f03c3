package source

// Page is one consecutive slice of a record collection plus the metadata the
// pagination strip needs. Indexes are 1-based; an empty collection reports
// StartIndex 0 and EndIndex 0.
type Page struct {
	Items      []Record
	Number     int
	PerPage    int
	TotalItems int
	TotalPages int
	StartIndex int
	EndIndex   int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate splits records into consecutive pages of perPage items and returns
// the requested page. Out-of-range page numbers clamp to the nearest valid
// page and perPage values below 1 coerce to 1, so pagination never fails.
func Paginate(records []Record, perPage, page int) Page {
	if perPage < 1 {
		perPage = 1
	}

	total := len(records)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	result := Page{
		Items:      records[start:end],
		Number:     page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
	if total > 0 {
		result.StartIndex = start + 1
		result.EndIndex = end
	}
	return result
}
