package collinalitics

import (
	"context"
)

// ProjectsService handles communication with the portfolio project
// related methods of the site API.
type ProjectsService service

const projectsPath = "portfolio/projects/"

// ListPage retrieves one page of portfolio projects.
func (s *ProjectsService) ListPage(ctx context.Context, opts *ProjectListOptions) (*ListResult[Project], *Response, error) {
	requestedPage := 0
	if opts != nil {
		requestedPage = opts.Page
	}
	return listResource[Project](ctx, s.client, projectsPath, opts, requestedPage, defaultPageSize)
}

// List retrieves the first page of portfolio projects and returns just
// the items. The portfolio page fetches everything once and filters
// client-side, so this is the call it leans on.
func (s *ProjectsService) List(ctx context.Context, opts *ProjectListOptions) ([]*Project, *Response, error) {
	result, resp, err := s.ListPage(ctx, opts)
	if err != nil {
		return nil, resp, err
	}
	return result.Items, resp, nil
}

// Get retrieves a single project by slug, falling back from the
// detail route to a filtered list and finally a full list scan.
func (s *ProjectsService) Get(ctx context.Context, slug string) (*Project, *Response, error) {
	return slugLookup(ctx, s.client, projectsPath, "project", slug, func(p *Project) string { return p.Slug })
}
