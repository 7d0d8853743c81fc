package timer

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Time contains the unix-time in milliseconds updated every [Resolution] milliseconds
var Time = new(atomic.Int64)

// date holds the last rendered HTTP Date header value
var date atomic.Pointer[string]

func Now() time.Time {
	millis := Time.Load()
	return time.Unix(millis/1000, (millis%1000)*1e6)
}

// Date returns the current time in the RFC 1123 GMT form used by the Date header.
// It's refreshed along with Time, so it never lags behind more than Resolution.
func Date() string {
	return *date.Load()
}

// Resolution is the frequency at which time is updated. Default 500ms are
// precise enough for setting I/O deadlines and a seconds-precise Date header
const Resolution = 500 * time.Millisecond

func tick(now time.Time) {
	Time.Store(now.UnixMilli())
	rendered := now.UTC().Format(http.TimeFormat)
	date.Store(&rendered)
}

func init() {
	// there is no guarantee that the goroutine will be started immediately. If it won't,
	// some rapid usage of the timer will result in zero-time, which isn't great actually
	tick(time.Now())

	go func() {
		for {
			time.Sleep(Resolution)
			tick(time.Now())
		}
	}()
}
