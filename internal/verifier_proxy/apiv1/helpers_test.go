package apiv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Note: This is a minimal test file.
// Tests for generated nonces and IDs are inherently tested through
// the API integration tests and can be observed in the generated tokens.
// Full integration tests would require MongoDB and complete service setup.

func TestPackageExists(t *testing.T) {
	// Simple smoke test to ensure the package compiles
	assert.True(t, true, "Package compiles successfully")
}
