package collinalitics

import (
	"context"
)

// PostsService handles communication with the blog post related
// methods of the site API.
type PostsService service

const postsPath = "blog/posts/"

// ListPage retrieves one page of blog posts.
func (s *PostsService) ListPage(ctx context.Context, opts *PostListOptions) (*ListResult[Post], *Response, error) {
	requestedPage := 0
	if opts != nil {
		requestedPage = opts.Page
	}
	return listResource[Post](ctx, s.client, postsPath, opts, requestedPage, postsPageSize)
}

// Get retrieves a single post by slug, falling back from the detail
// route to a filtered list and finally a full list scan.
func (s *PostsService) Get(ctx context.Context, slug string) (*Post, *Response, error) {
	return slugLookup(ctx, s.client, postsPath, "post", slug, func(p *Post) string { return p.Slug })
}
