//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
)

// mockSiteServer serves a small in-memory rendition of the site API:
// DRF-style paginated envelopes for blog posts, a flat list for
// projects, category filtering for services and a contact endpoint
// with honeypot rejection.
var mockSiteServer *httptest.Server

const mockPostPageSize = 2

var mockProjects = []map[string]any{
	{"id": 1, "title": "Warehouse Revamp", "slug": "warehouse-revamp", "industry": "Retail", "status": "Completed", "tags_list": []string{"etl", "sql"}},
	{"id": 2, "title": "Forecast Engine", "slug": "forecast-engine", "industry": "Finance", "status": "In Progress", "tags_list": []string{"ml"}},
	{"id": 3, "title": "Churn Model", "slug": "churn-model", "industry": "Telecom", "status": "Completed", "tags_list": []string{"ml", "sql"}},
}

var mockServices = []map[string]any{
	{"id": 1, "title": "Data Analytics", "slug": "data-analytics", "category_slug": "analytics", "category_name": "Analytics", "features": []map[string]any{{"id": 1, "label": "Dashboards"}}},
	{"id": 2, "title": "Data Warehousing", "slug": "data-warehousing", "category_slug": "analytics", "category_name": "Analytics"},
	{"id": 3, "title": "ML Consulting", "slug": "ml-consulting", "category_slug": "ml", "category_name": "Machine Learning"},
}

var mockPosts = []map[string]any{
	{"id": 1, "title": "Shipping Dashboards", "slug": "shipping-dashboards", "date": "2025-12-15", "reading_time": 4, "tags_list": []string{"sql"}},
	{"id": 2, "title": "Modeling Churn", "slug": "modeling-churn", "date": "2025-11-02", "reading_time": 7, "tags_list": []string{"ml"}},
	{"id": 3, "title": "Warehouse Basics", "slug": "warehouse-basics", "date": "2025-10-20", "reading_time": 5, "tags_list": []string{"etl", "sql"}},
}

// InitMockSiteServer starts the mock site server
func InitMockSiteServer() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/portfolio/projects/", listOrDetailHandler("/api/portfolio/projects/", mockProjects, false))
	mux.HandleFunc("/api/services/", listOrDetailHandler("/api/services/", mockServices, false))
	mux.HandleFunc("/api/blog/posts/", listOrDetailHandler("/api/blog/posts/", mockPosts, true))
	mux.HandleFunc("/api/contact/", contactHandler)

	mockSiteServer = httptest.NewServer(mux)
}

// CloseMockSiteServer stops the mock site server if it is running
func CloseMockSiteServer() {
	if mockSiteServer != nil {
		mockSiteServer.Close()
		mockSiteServer = nil
	}
}

// GetMockSiteServerURL returns the base URL of the mock site server
func GetMockSiteServerURL() string {
	if mockSiteServer == nil {
		return ""
	}
	return mockSiteServer.URL
}

// listOrDetailHandler serves a detail record for /<prefix><slug>/ and a
// filtered, optionally paginated envelope for /<prefix>.
func listOrDetailHandler(prefix string, records []map[string]any, paginate bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix), "/"); slug != "" {
			for _, rec := range records {
				if rec["slug"] == slug {
					json.NewEncoder(w).Encode(rec)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"detail": "Not found."})
			return
		}

		results := filterRecords(records, r)

		if !paginate {
			json.NewEncoder(w).Encode(map[string]any{
				"count": len(results), "next": nil, "previous": nil, "results": results,
			})
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		start := (page - 1) * mockPostPageSize
		end := start + mockPostPageSize
		if start > len(results) {
			start = len(results)
		}
		if end > len(results) {
			end = len(results)
		}

		var next, previous any
		if end < len(results) {
			next = fmt.Sprintf("http://%s%s?page=%d", r.Host, r.URL.Path, page+1)
		}
		if page > 1 {
			previous = fmt.Sprintf("http://%s%s?page=%d", r.Host, r.URL.Path, page-1)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"count": len(results), "next": next, "previous": previous, "results": results[start:end],
		})
	}
}

// filterRecords applies the query filters the live API supports: slug,
// category, tag and q.
func filterRecords(records []map[string]any, r *http.Request) []map[string]any {
	query := r.URL.Query()
	results := []map[string]any{}

	for _, rec := range records {
		if slug := query.Get("slug"); slug != "" && rec["slug"] != slug {
			continue
		}
		if category := query.Get("category"); category != "" && rec["category_slug"] != category {
			continue
		}
		if tag := query.Get("tag"); tag != "" && !hasTag(rec, tag) {
			continue
		}
		if q := query.Get("q"); q != "" && !strings.Contains(strings.ToLower(rec["title"].(string)), strings.ToLower(q)) {
			continue
		}
		results = append(results, rec)
	}
	return results
}

func hasTag(rec map[string]any, tag string) bool {
	tags, ok := rec["tags_list"].([]string)
	if !ok {
		return false
	}
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// contactHandler accepts inquiry submissions, rejecting filled
// honeypots and incomplete payloads the way the live API does.
func contactHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Method not allowed."})
		return
	}

	var inquiry map[string]any
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Invalid JSON."})
		return
	}

	if hp, _ := inquiry["hp_field"].(string); hp != "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"detail": "Submission rejected."})
		return
	}

	for _, field := range []string{"name", "email", "subject", "message"} {
		if v, _ := inquiry[field].(string); v == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"detail": fmt.Sprintf("%s: this field is required.", field)})
			return
		}
	}

	inquiry["id"] = 42
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(inquiry)
}
