package settings

import "time"

type Milliseconds int

func (m Milliseconds) Int() int {
	return int(m)
}

func (m Milliseconds) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// Or returns fallback when m is not a positive duration.
func (m Milliseconds) Or(fallback time.Duration) time.Duration {
	if m <= 0 {
		return fallback
	}
	return m.Duration()
}
