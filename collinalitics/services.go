package collinalitics

import (
	"context"
	"strings"
)

// ServicesService handles communication with the service offering
// related methods of the site API.
type ServicesService service

const servicesPath = "services/"

// ListPage retrieves one page of service offerings.
func (s *ServicesService) ListPage(ctx context.Context, opts *ServiceListOptions) (*ListResult[Service], *Response, error) {
	requestedPage := 0
	if opts != nil {
		requestedPage = opts.Page
	}
	return listResource[Service](ctx, s.client, servicesPath, opts, requestedPage, servicesPageSize)
}

// Get retrieves a single service by slug, falling back from the detail
// route to a filtered list and finally a full list scan.
func (s *ServicesService) Get(ctx context.Context, slug string) (*Service, *Response, error) {
	return slugLookup(ctx, s.client, servicesPath, "service", slug, func(sv *Service) string { return sv.Slug })
}

// Related retrieves up to opts.Limit services sharing a category,
// excluding the service named by opts.ExcludeSlug. An empty category
// returns an empty list without touching the network.
//
// A server-side category-filtered fetch is attempted first; if it fails
// for any reason the first unfiltered page is filtered client-side by
// case-insensitive category match instead.
func (s *ServicesService) Related(ctx context.Context, opts RelatedServiceOptions) ([]*Service, *Response, error) {
	if opts.Category == "" {
		return []*Service{}, nil, nil
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 3
	}

	result, resp, err := s.ListPage(ctx, &ServiceListOptions{
		ListOptions: ListOptions{Page: 1},
		Category:    opts.Category,
	})
	if err == nil {
		return truncateRelated(result.Items, opts.ExcludeSlug, limit), resp, nil
	}

	result, resp, err = s.ListPage(ctx, nil)
	if err != nil {
		return nil, resp, err
	}

	var matched []*Service
	for _, sv := range result.Items {
		if strings.EqualFold(sv.CategoryKey(), opts.Category) {
			matched = append(matched, sv)
		}
	}
	return truncateRelated(matched, opts.ExcludeSlug, limit), resp, nil
}

func truncateRelated(services []*Service, excludeSlug string, limit int) []*Service {
	kept := make([]*Service, 0, limit)
	for _, sv := range services {
		if sv.Slug == excludeSlug {
			continue
		}
		kept = append(kept, sv)
		if len(kept) == limit {
			break
		}
	}
	return kept
}
