package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowUTC_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}

func TestSetClock(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
	restore := SetClock(func() time.Time { return fixed })

	assert.True(t, NowUTC().Equal(fixed))
	assert.Equal(t, 4, NowUTC().Hour())

	restore()
	assert.WithinDuration(t, time.Now(), NowUTC(), time.Second)
}
