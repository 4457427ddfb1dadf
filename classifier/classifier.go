package classifier

import "strings"

// Class is the three-way productivity classification of a host.
type Class int

const (
	Neutral Class = iota
	Productive
	Unproductive
)

// Classify maps a hostname to its class by substring containment against the
// static lists. The productive list is checked first, so a host somehow
// matching both lists resolves to Productive.
func Classify(host string) Class {
	for _, domain := range productiveSites {
		if strings.Contains(host, domain) {
			return Productive
		}
	}
	for _, domain := range unproductiveSites {
		if strings.Contains(host, domain) {
			return Unproductive
		}
	}
	return Neutral
}

// Bool is the wire form of a class: true for Productive, false for
// Unproductive, nil (JSON null) for Neutral.
func (c Class) Bool() *bool {
	switch c {
	case Productive:
		v := true
		return &v
	case Unproductive:
		v := false
		return &v
	default:
		return nil
	}
}

func (c Class) String() string {
	switch c {
	case Productive:
		return "productive"
	case Unproductive:
		return "unproductive"
	default:
		return "neutral"
	}
}
