// Package collinalitics provides a Go client library for the
// Collinalitics marketing-site REST API.
//
// The API serves the public content of the site: portfolio case
// studies, service offerings and blog posts, plus a contact-form
// endpoint. This client provides an idiomatic Go interface to it,
// following architectural patterns established by popular Go libraries
// like google/go-github.
//
// # Features
//
//   - List portfolio projects, services and blog posts with
//     page-number pagination
//   - Uniform handling of both flat-array and paginated-envelope
//     response shapes
//   - Pagination inference when the server omits page metadata,
//     including page numbers recovered from cursor URLs
//   - Slug lookup with ordered fallback strategies for backends
//     without a slug detail route
//   - Contact-form submission
//   - Context support for all API calls
//
// # Usage
//
// Import the package:
//
//	import "github.com/collinalitics/go-collinalitics/collinalitics"
//
// Create a new client. The address is the API root; it defaults to the
// local development backend when empty:
//
//	client, err := collinalitics.NewClient(nil, "https://api.example.com/api/")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// List projects:
//
//	result, _, err := client.Projects.ListPage(context.Background(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d of %d projects (page %d/%d)\n",
//		len(result.Items), result.Count, result.Page, result.TotalPages)
//
// List posts with filtering:
//
//	opts := &collinalitics.PostListOptions{
//		Q:   "dashboards",
//		Tag: "analytics",
//		ListOptions: collinalitics.ListOptions{Page: 2},
//	}
//	result, _, err := client.Posts.ListPage(context.Background(), opts)
//
// Get a specific item by slug:
//
//	project, _, err := client.Projects.Get(context.Background(), "retail-dashboard")
//
// # Error Handling
//
// Non-2xx responses are returned as *ErrorResponse, carrying the HTTP
// status and the best-effort body text. Slug lookups that exhaust every
// fallback strategy return *NotFoundError instead, so callers can
// render a 404-style view:
//
//	project, _, err := client.Projects.Get(ctx, slug)
//	if err != nil {
//		var notFound *collinalitics.NotFoundError
//		if errors.As(err, &notFound) {
//			fmt.Println("no such project")
//			return
//		}
//		log.Fatal(err)
//	}
//
// Missing or partial pagination metadata is never an error; the list
// result degrades to inferred values instead.
//
// # Service Architecture
//
// The client organizes API endpoints into service structs:
//
//	client.Projects  // portfolio case studies
//	client.Services  // service offerings
//	client.Posts     // blog posts
//	client.Contacts  // contact-form submission
package collinalitics
