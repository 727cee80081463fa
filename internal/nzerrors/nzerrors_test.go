package nzerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeCoversEveryKind(t *testing.T) {
	kinds := []Kind{Ok, Io, InvalidFormat, UnsupportedVersion, ModelMismatch, Corrupt, Internal}
	seen := map[string]bool{}
	for _, k := range kinds {
		desc := Describe(k)
		assert.NotEmpty(t, desc)
		assert.False(t, seen[desc], "duplicate description for kind %d", k)
		seen[desc] = true
	}
}

func TestErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := New(Corrupt, "checksum check", cause)

	var target *Error
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, Corrupt, target.Kind)
	assert.ErrorIs(t, err, err) // sanity: Error satisfies error
}
