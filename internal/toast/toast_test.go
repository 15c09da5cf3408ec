package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centerAt(start time.Time, d time.Duration) (*Center, *time.Time) {
	now := start
	c := NewCenter(d)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCenterShowAndExpire(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	c, now := centerAt(start, DefaultDuration)

	c.Show("Funding uploaded successfully!", Success)

	active := c.Active()
	require.NotNil(t, active)
	assert.Equal(t, "Funding uploaded successfully!", active.Message)
	assert.Equal(t, Success, active.Level)

	// Still visible just before the 3s default elapses.
	*now = start.Add(DefaultDuration - time.Millisecond)
	assert.NotNil(t, c.Active())

	*now = start.Add(DefaultDuration)
	assert.Nil(t, c.Active(), "auto-dismissed after the fixed duration")
}

func TestCenterReplacesPrevious(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	c, _ := centerAt(start, DefaultDuration)

	c.Show("first", Success)
	c.Show("second", Error)

	active := c.Active()
	require.NotNil(t, active)
	assert.Equal(t, "second", active.Message)
	assert.Equal(t, Error, active.Level)
}

func TestCenterExplicitDuration(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	c, now := centerAt(start, DefaultDuration)

	c.ShowFor("slow one", Success, 10*time.Second)

	*now = start.Add(9 * time.Second)
	assert.NotNil(t, c.Active())

	*now = start.Add(10 * time.Second)
	assert.Nil(t, c.Active())
}

func TestCenterNoActiveToast(t *testing.T) {
	c := NewCenter(0)
	assert.Nil(t, c.Active())
}
