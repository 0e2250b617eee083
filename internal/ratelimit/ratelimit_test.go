package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow_EnforcesBurst(t *testing.T) {
	krl := New(1, 2)

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"), "burst exhausted")
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := New(1, 1)

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"))

	// A different key has its own bucket.
	assert.True(t, krl.Allow("10.0.0.2"))
}
