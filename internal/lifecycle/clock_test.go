package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_UTC(t *testing.T) {
	before := time.Now()
	got := SystemClock().Now()

	assert.Equal(t, time.UTC, got.Location())
	assert.WithinDuration(t, before, got, time.Second)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	clock := FixedClock(at)

	assert.Equal(t, at, clock.Now())
	assert.Equal(t, at, clock.Now())
}
