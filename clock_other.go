//go:build !windows

package mshadow

import "time"

// clockStamp is a relative timestamp with the highest precision available on
// the runtime system. Values are only comparable between two clockSample()
// calls within the same program run on the same machine.
type clockStamp = time.Time

// clockSample returns a timestamp with the highest precision available on the
// current runtime system.
func clockSample() clockStamp {
	return time.Now()
}

// clockDiff returns the difference between two timestamps in nanoseconds.
// It assumes tLater is later than tEarlier and returns a negative value
// otherwise.
func clockDiff(tEarlier, tLater clockStamp) int64 {
	return tLater.Sub(tEarlier).Nanoseconds()
}
