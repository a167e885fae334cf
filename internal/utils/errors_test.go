package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveredError(t *testing.T) {
	assert.EqualError(t, RecoveredError("no bread", "scenario panicked"), "scenario panicked: no bread")
	assert.EqualError(t, RecoveredError(errors.New("stale"), "scenario panicked"), "scenario panicked: stale")
	assert.EqualError(t, RecoveredError(42, "scenario panicked"), "scenario panicked: 42")
}

func TestWrapError(t *testing.T) {
	base := errors.New("no cheese")

	err := WrapError(base, "cannot add topping")

	assert.EqualError(t, err, "cannot add topping: no cheese")
	assert.ErrorIs(t, err, base)
}
