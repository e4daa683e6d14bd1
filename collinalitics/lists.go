package collinalitics

import (
	"context"
	"encoding/json"
	"net/http"
)

// Per-resource fallback page sizes, used when neither the returned page
// nor the envelope reveals the real size. The services endpoint pages
// by 9, everything else by 10.
const (
	defaultPageSize  = 10
	servicesPageSize = 9
	postsPageSize    = 10
)

// listResource fetches one page of a resource list and assembles a
// ListResult via shape classification and pagination inference. Every
// resource service goes through here so list behavior cannot drift
// between resource types.
func listResource[T any](ctx context.Context, c *Client, path string, opts any, requestedPage, fallbackPageSize int) (*ListResult[T], *Response, error) {
	u, err := addOptions(path, opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := c.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var raw json.RawMessage
	resp, err := c.Do(ctx, req, &raw)
	if err != nil {
		return nil, resp, err
	}

	payload := decodeListPayload(raw)
	items, err := decodeItems[T](payload)
	if err != nil {
		return nil, resp, err
	}

	return newListResult(payload, items, requestedPage, fallbackPageSize), resp, nil
}
