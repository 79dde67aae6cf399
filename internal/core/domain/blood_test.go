package domain_test

import (
	"testing"

	"tabaro3-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

// TestIsValidBloodType covers the eight accepted groups and common rejects.
func TestIsValidBloodType(t *testing.T) {
	for _, bt := range domain.BloodTypes {
		assert.True(t, domain.IsValidBloodType(bt), bt)
	}

	assert.False(t, domain.IsValidBloodType(""))
	assert.False(t, domain.IsValidBloodType("o+"), "blood types are case sensitive")
	assert.False(t, domain.IsValidBloodType("O"))
	assert.False(t, domain.IsValidBloodType("C+"))
	assert.False(t, domain.IsValidBloodType(domain.BloodTypeNA), "N/A is not a donor blood type")
}

// TestIsValidBloodTypeOrNA verifies the admin sentinel is accepted only by
// the relaxed check.
func TestIsValidBloodTypeOrNA(t *testing.T) {
	assert.True(t, domain.IsValidBloodTypeOrNA(domain.BloodTypeNA))
	assert.True(t, domain.IsValidBloodTypeOrNA("AB-"))
	assert.False(t, domain.IsValidBloodTypeOrNA("n/a"))
	assert.False(t, domain.IsValidBloodTypeOrNA(""))
}
