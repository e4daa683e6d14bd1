package collinalitics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// slugLookup resolves a single item by slug using an explicit ordered
// list of strategies, stopping at the first success:
//
//  1. Detail-by-slug: GET {path}{slug}/. A 404 or 405 means the route
//     does not support slug lookup and the resolver falls through; any
//     other non-2xx status is a real backend fault and is terminal.
//  2. Filtered list: GET {path}?slug={slug}, scanned for an exact slug
//     match.
//  3. Full list scan: GET {path} (first page only), scanned likewise.
//
// Errors inside strategies 2 and 3 are swallowed so the next strategy
// can proceed; exhausting all three yields a NotFoundError.
func slugLookup[T any](ctx context.Context, c *Client, path, resource, slug string, slugOf func(*T) string) (*T, *Response, error) {
	item, resp, err := fetchDetail[T](ctx, c, path, slug)
	if err == nil {
		return item, resp, nil
	}
	if !isRouteMiss(err) {
		return nil, resp, err
	}

	filtered := fmt.Sprintf("%s?slug=%s", path, url.QueryEscape(slug))
	if item, resp, ok := scanForSlug(ctx, c, filtered, slug, slugOf); ok {
		return item, resp, nil
	}

	if item, resp, ok := scanForSlug(ctx, c, path, slug, slugOf); ok {
		return item, resp, nil
	}

	return nil, nil, &NotFoundError{Resource: resource, Slug: slug}
}

func fetchDetail[T any](ctx context.Context, c *Client, path, slug string) (*T, *Response, error) {
	u := fmt.Sprintf("%s%s/", path, url.PathEscape(slug))

	req, err := c.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var item *T
	resp, err := c.Do(ctx, req, &item)
	if err != nil {
		return nil, resp, err
	}
	return item, resp, nil
}

// scanForSlug fetches a list URL, normalizes it and returns the first
// item whose slug matches exactly. Any failure reads as "no match".
func scanForSlug[T any](ctx context.Context, c *Client, u, slug string, slugOf func(*T) string) (*T, *Response, bool) {
	req, err := c.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, false
	}

	var raw json.RawMessage
	resp, err := c.Do(ctx, req, &raw)
	if err != nil {
		return nil, resp, false
	}

	items, err := decodeItems[T](decodeListPayload(raw))
	if err != nil {
		return nil, resp, false
	}

	for _, item := range items {
		if slugOf(item) == slug {
			return item, resp, true
		}
	}
	return nil, resp, false
}
