//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/collinalitics/go-collinalitics/collinalitics"
)

func TestIntegrationProjectsList(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	result, _, err := client.Projects.ListPage(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}

	if len(result.Items) == 0 {
		t.Fatal("Expected at least one project")
	}
	if result.Count < len(result.Items) {
		t.Errorf("Count = %d, less than page length %d", result.Count, len(result.Items))
	}
	if result.TotalPages < 1 {
		t.Errorf("TotalPages = %d, want >= 1", result.TotalPages)
	}

	t.Logf("Listed %d project(s), page %d of %d", len(result.Items), result.Page, result.TotalPages)
}

func TestIntegrationProjectsGet(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	listed, _, err := client.Projects.List(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}
	if len(listed) == 0 {
		t.Skip("No projects available to look up")
	}

	want := listed[0].Slug
	project, _, err := client.Projects.Get(ctx, want)
	if err != nil {
		t.Fatalf("Failed to get project %q: %v", want, err)
	}
	if project.Slug != want {
		t.Errorf("Slug = %q, want %q", project.Slug, want)
	}

	t.Logf("Retrieved project: %s", project.Title)
}

func TestIntegrationProjectsGetNotFound(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	_, _, err := client.Projects.Get(ctx, "definitely-not-a-project")
	if err == nil {
		t.Fatal("Expected an error for a missing slug")
	}

	var notFound *collinalitics.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Error = %v (%T), want *NotFoundError", err, err)
	}
	if notFound.Slug != "definitely-not-a-project" {
		t.Errorf("Slug = %q, want the requested slug", notFound.Slug)
	}
}
