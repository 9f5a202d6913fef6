package chrono

import (
	"fmt"
	"time"

	_ "time/tzdata"
)

// DefaultLocation is the timezone report times are recorded in, every
// tracked spot is on the US east coast.
const DefaultLocation = "America/New_York"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// API is the interface that anything depending on the system clock should use.
type API interface {
	// Now returns the current time in the location of the implementation.
	Now() time.Time
}

// StandardImpl is the implementation of API on top of the system clock.
type StandardImpl struct {
	location *time.Location
}

// NewStandardImpl loads the named IANA location, an empty name
// falls back to DefaultLocation.
func NewStandardImpl(location string) (StandardImpl, error) {
	if location == "" {
		location = DefaultLocation
	}
	loc, err := time.LoadLocation(location)
	if err != nil {
		return StandardImpl{}, fmt.Errorf("load timezone %q: %w", location, err)
	}
	return StandardImpl{location: loc}, nil
}

func (s StandardImpl) Now() time.Time {
	return time.Now().In(s.location)
}

func (s StandardImpl) Location() *time.Location {
	return s.location
}

// Stamp is a wall clock date and time truncated to the minute.
type Stamp struct {
	Date string
	Time string
}

func NewStamp(t time.Time) Stamp {
	return Stamp{
		Date: t.Format(DateLayout),
		Time: t.Format(TimeLayout),
	}
}
