package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockProjectListResponse = `{
	"count": 2,
	"next": null,
	"previous": null,
	"results": [
		{"id": 1, "title": "Warehouse Revamp", "slug": "warehouse-revamp", "tags_list": ["etl", "sql"], "industry": "Retail", "status": "Completed"},
		{"id": 2, "title": "Forecast Engine", "slug": "forecast-engine", "tags_list": ["ml"], "industry": "Finance", "status": "In Progress"}
	]
}`

const mockPostListResponse = `{
	"count": 1,
	"next": null,
	"previous": null,
	"results": [
		{"id": 7, "title": "Shipping Dashboards", "slug": "shipping-dashboards", "date": "2025-12-15", "reading_time": 4}
	]
}`

// runCommand executes the root command against a mock server and
// returns the captured standard output.
func runCommand(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(io.Discard)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	rootCmd.SetArgs(append(args, "--address", serverURL+"/api/"))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestProjectsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/portfolio/projects/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockProjectListResponse))
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "projects", "list", "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, output, "warehouse-revamp")
	assert.Contains(t, output, "Warehouse Revamp")
	assert.Contains(t, output, "forecast-engine")
	assert.Contains(t, output, "page 1 of 1 (2 total)")
}

func TestProjectsList_JSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockProjectListResponse))
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "projects", "list", "--output", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.EqualValues(t, 2, decoded["Count"])
}

func TestProjectsList_TagFiltersLocally(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolio/projects/", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "tag filtering happens client-side")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockProjectListResponse))
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "projects", "list", "--tag", "etl", "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, output, "warehouse-revamp")
	assert.NotContains(t, output, "forecast-engine")
}

func TestProjectsList_Facets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockProjectListResponse))
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "projects", "list", "--facets", "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, output, "etl, ml, sql")
	assert.Contains(t, output, "Finance, Retail")
}

func TestPostsList_PassesQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blog/posts/", r.URL.Path)
		assert.Equal(t, "sql", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(mockPostListResponse))
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "posts", "list", "--q", "sql", "--page", "2", "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, output, "shipping-dashboards")
	assert.Contains(t, output, "2025-12-15")
}

func TestServicesGet_BySlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/services/data-analytics/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 3, "title": "Data Analytics", "slug": "data-analytics", "category_name": "Analytics", "features": [{"id": 1, "label": "Dashboards"}]}`))
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "services", "get", "data-analytics", "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, output, "Data Analytics")
	assert.Contains(t, output, "category: Analytics")
	assert.Contains(t, output, "- Dashboards")
}

func TestServicesRelated_UsesAlternateCategoryKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/services/data-analytics/":
			// The detail serializer carries the category under the
			// bare "category" key only.
			w.Write([]byte(`{"id": 3, "title": "Data Analytics", "slug": "data-analytics", "category": "analytics"}`))
		case "/api/services/":
			assert.Equal(t, "analytics", r.URL.Query().Get("category"))
			w.Write([]byte(`{"count": 2, "next": null, "previous": null, "results": [
				{"id": 3, "title": "Data Analytics", "slug": "data-analytics", "category": "analytics"},
				{"id": 4, "title": "Data Warehousing", "slug": "data-warehousing", "category": "analytics"}
			]}`))
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "services", "related", "data-analytics", "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, output, "data-warehousing")
	assert.NotContains(t, output, "No services found")
}

func TestContactSend(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/contact/", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 12, "name": "Ada", "email": "ada@example.com", "subject": "Hello", "message": "Hi"}`))
	}))
	defer server.Close()

	output, err := runCommand(t, server.URL, "contact", "send",
		"--name", "Ada", "--email", "ada@example.com",
		"--subject", "Hello", "--message", "Hi")
	require.NoError(t, err)

	assert.Equal(t, "Ada", received["name"])
	assert.Equal(t, "Hello", received["subject"])
	assert.NotContains(t, received, "hp_field", "honeypot must stay empty")
	assert.Contains(t, output, "submitted")
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	_, err := runCommand(t, "http://localhost:1", "projects", "list", "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	cmd := newVersionCommand()
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "collin dev")
}
