package timer

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTime(t *testing.T) {
	const (
		threshold = 200 * time.Millisecond
		// use 1.5*Resolution in order to avoid test failures because of the Resolution+1ms error,
		// which happens rarely, but better to not happen at all
		resolution = Resolution + Resolution/2
	)

	for range 2 * time.Second / threshold {
		now := Now()
		if time.Now().Sub(now) > resolution {
			require.Fail(t, "the timer is too slow")
		}

		time.Sleep(threshold)
	}
}

func TestDate(t *testing.T) {
	parsed, err := http.ParseTime(Date())
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), parsed, 2*time.Second)
	require.Contains(t, Date(), "GMT")
}

func BenchmarkDate(b *testing.B) {
	b.Run("cached", func(b *testing.B) {
		for range b.N {
			_ = Date()
		}
	})

	b.Run("time.Now().Format()", func(b *testing.B) {
		for range b.N {
			_ = time.Now().UTC().Format(http.TimeFormat)
		}
	})
}
