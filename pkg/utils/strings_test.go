package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"gpt-4", "gemini-pro"}, RemoveEmptyStrings([]string{"", "gpt-4", "", "gemini-pro"}))
	assert.Empty(t, RemoveEmptyStrings([]string{"", ""}))
	assert.Empty(t, RemoveEmptyStrings(nil))
}
