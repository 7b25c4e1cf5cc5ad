package opportunity

// PageSizes are the selectable page sizes for the opportunity list.
var PageSizes = []int{10, 20, 50, 100, 250}

// Page is one page of a filtered, sorted opportunity list.
type Page struct {
	Items      []Opportunity `json:"items"`
	Number     int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

// Paginate slices opps into the requested 1-based page. Out-of-range page
// numbers clamp to the valid range; a non-positive perPage falls back to
// the smallest page size.
func Paginate(opps []Opportunity, page, perPage int) Page {
	if perPage <= 0 {
		perPage = PageSizes[0]
	}
	total := len(opps)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return Page{
		Items:      opps[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
