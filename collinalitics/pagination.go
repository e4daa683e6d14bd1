package collinalitics

import (
	"net/url"
	"strconv"
)

// ListResult is one fetched page of a resource list, with pagination
// metadata that may be inferred when the server omits it.
//
// Invariant: TotalPages == max(1, ceil(Count / PageSize)).
type ListResult[T any] struct {
	Items    []*T
	Count    int     // total items across all pages, inferred if absent
	Next     *string // cursor URL for the next page, if any
	Previous *string // cursor URL for the previous page, if any

	Page       int
	PageSize   int
	TotalPages int
}

// pageFromCursor extracts the "page" query parameter from a pagination
// cursor URL. Malformed cursors are treated as absent, never as errors.
func pageFromCursor(cursor *string) (int, bool) {
	if cursor == nil || *cursor == "" {
		return 0, false
	}
	u, err := url.Parse(*cursor)
	if err != nil {
		return 0, false
	}
	p, err := strconv.Atoi(u.Query().Get("page"))
	if err != nil || p < 1 {
		return 0, false
	}
	return p, true
}

// inferPage determines the current page number. An explicitly requested
// page wins; otherwise the page is derived from the previous cursor
// (prev + 1), then the next cursor (next - 1), then defaults to 1.
func inferPage(requested int, p listPayload) int {
	if requested >= 1 {
		return requested
	}
	if prev, ok := pageFromCursor(p.previous); ok {
		return prev + 1
	}
	if next, ok := pageFromCursor(p.next); ok && next > 1 {
		return next - 1
	}
	return 1
}

// inferPageSize determines the effective page size: the length of the
// returned page when non-zero, else the envelope's page_size, else the
// resource's default.
func inferPageSize(itemCount int, p listPayload, fallback int) int {
	if itemCount > 0 {
		return itemCount
	}
	if p.pageSize != nil && *p.pageSize > 0 {
		return *p.pageSize
	}
	return fallback
}

// totalPagesFor computes max(1, ceil(count/pageSize)), substituting the
// fallback size when pageSize is zero so the division is always safe.
func totalPagesFor(count, pageSize, fallback int) int {
	if pageSize <= 0 {
		pageSize = fallback
	}
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// newListResult assembles a ListResult from a resolved payload and its
// decoded items, applying pagination inference with the given
// per-resource default page size.
func newListResult[T any](p listPayload, items []*T, requestedPage, defaultPageSize int) *ListResult[T] {
	count := len(items)
	if p.count != nil {
		count = *p.count
	}
	pageSize := inferPageSize(len(items), p, defaultPageSize)

	return &ListResult[T]{
		Items:      items,
		Count:      count,
		Next:       p.next,
		Previous:   p.previous,
		Page:       inferPage(requestedPage, p),
		PageSize:   pageSize,
		TotalPages: totalPagesFor(count, pageSize, defaultPageSize),
	}
}
