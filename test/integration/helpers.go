//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"

	"github.com/collinalitics/go-collinalitics/collinalitics"
)

// skipIfNotIntegration skips the test if INTEGRATION_TESTS is not set to "true"
func skipIfNotIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TESTS=true to run.")
	}
}

// getAddress returns the base address of the site API under test
func getAddress() string {
	if addr := os.Getenv("COLLIN_ADDR"); addr != "" {
		return addr
	}
	return GetMockSiteServerURL() + "/api/"
}

// setupClient creates a client for integration testing
func setupClient(t *testing.T) *collinalitics.Client {
	t.Helper()
	skipIfNotIntegration(t)

	client, err := collinalitics.NewClient(nil, getAddress())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	t.Logf("Created client with address: %s", client.Address.String())
	return client
}
