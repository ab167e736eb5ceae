package ids

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShortID(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{8}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := NewShortID()
		assert.Regexp(t, re, id)
		seen[id] = struct{}{}
	}

	assert.Greater(t, len(seen), 95)
}
