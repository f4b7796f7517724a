package web

import "fmt"

// PageLinks and PageMeta follow the envelope paginated list endpoints wrap
// their rows in: {"data": [...], "links": {...}, "meta": {...}}.
type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// Paginate computes the links/meta pair for a listing at basePath.
func Paginate(basePath string, page, perPage, total int) (PageLinks, PageMeta) {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	pageURL := func(p int) string {
		return fmt.Sprintf("%s?page=%d&per_page=%d", basePath, p, perPage)
	}

	links := PageLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}

	meta := PageMeta{
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    lastPage,
		Total:       total,
	}

	return links, meta
}
