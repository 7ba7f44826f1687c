// Package greeting composes greeting messages from a name and an
// optional hour of day.
package greeting

import "fmt"

// Hello builds the plain greeting used when no hour is supplied.
func Hello(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// AtHour builds the time-of-day greeting. Any integer is accepted; hours
// outside 0-23 fall into whatever bucket the comparisons put them in.
// An hour of 0 is a real evening hour, not "no hour supplied" — every
// surface routes the absent case through Hello instead.
func AtHour(name string, hour int) string {
	return fmt.Sprintf("%s, %s! Now it's %d o'clock.", wordFor(hour), name, hour)
}

func wordFor(hour int) string {
	switch {
	case hour >= 18 || hour < 6:
		return "Good evening"
	case hour >= 12:
		return "Good afternoon"
	default:
		return "Good morning"
	}
}
