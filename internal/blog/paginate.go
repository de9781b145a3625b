package blog

// Page is one slice of the catalog plus navigation state for list views.
type Page struct {
	Posts       []Metadata
	TotalPages  int
	CurrentPage int
	HasNextPage bool
	HasPrevPage bool
}

// Paginate slices posts into fixed-size pages. Out-of-range page numbers
// clamp instead of failing: page zero or negative serves the first page,
// anything past the end serves the last one. An empty catalog still reports
// one (empty) page.
func Paginate(posts []Metadata, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(posts) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}

	return Page{
		Posts:       posts[start:end],
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
