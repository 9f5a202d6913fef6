// Package spots holds the fixed set of surf spots a run scrapes.
package spots

import (
	"fmt"
	"net/url"
)

type Spot struct {
	Label string
	URL   string
}

// Registry is an ordered, immutable list of spots. Labels are unique
// within a registry.
type Registry struct {
	spots []Spot
}

// NewRegistry validates and copies the given spots, the order given
// is the order spots will be scraped and persisted in.
func NewRegistry(spots ...Spot) (Registry, error) {
	seen := make(map[string]struct{}, len(spots))
	out := make([]Spot, len(spots))
	for i, s := range spots {
		if s.Label == "" {
			return Registry{}, fmt.Errorf("spot %d: empty label", i)
		}
		if _, dup := seen[s.Label]; dup {
			return Registry{}, fmt.Errorf("spot %q: duplicate label", s.Label)
		}
		seen[s.Label] = struct{}{}

		link, err := url.Parse(s.URL)
		if err != nil {
			return Registry{}, fmt.Errorf("spot %q: %w", s.Label, err)
		}
		if link.Scheme == "" || link.Host == "" {
			return Registry{}, fmt.Errorf("spot %q: url %q is not absolute", s.Label, s.URL)
		}
		out[i] = s
	}
	return Registry{spots: out}, nil
}

func MustRegistry(spots ...Spot) Registry {
	r, err := NewRegistry(spots...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Registry) Len() int {
	return len(r.spots)
}

// Spots returns a copy of the registry entries in order.
func (r Registry) Spots() []Spot {
	out := make([]Spot, len(r.spots))
	copy(out, r.spots)
	return out
}

// Lookup returns the url registered for a label.
func (r Registry) Lookup(label string) (string, bool) {
	for _, s := range r.spots {
		if s.Label == label {
			return s.URL, true
		}
	}
	return "", false
}

// NewEngland is the registry of magicseaweed reports for the
// Massachusetts, New Hampshire and Rhode Island spots.
func NewEngland() Registry {
	return MustRegistry(
		Spot{Label: "Good Harbor Beach", URL: "https://magicseaweed.com/Good-Harbor-Beach-Surf-Report/9268/"},
		Spot{Label: "Cape Ann", URL: "https://magicseaweed.com/Cape-Ann-Surf-Report/370/"},
		Spot{Label: "Nahant", URL: "https://magicseaweed.com/Nahant-Surf-Report/1091/"},
		Spot{Label: "The Wall", URL: "https://magicseaweed.com/The-Wall-Surf-Report/369/"},
		Spot{Label: "Hampton Beach", URL: "https://magicseaweed.com/Hampton-Beach-Surf-Report/2074/"},
		Spot{Label: "Jenness Beach", URL: "https://magicseaweed.com/Jenness-Beach-Surf-Report/881/"},
		Spot{Label: "2nd Beach", URL: "https://magicseaweed.com/2nd-Beach-Sachuest-Beach-Surf-Report/846/"},
		Spot{Label: "Narragansett Beach", URL: "https://magicseaweed.com/Narragansett-Beach-Surf-Report/1103/"},
	)
}
