package portal

import "net/url"

// Session is the process-wide identity and arrival state a portal needs to
// resolve destinations. It is constructed once in main and passed by
// reference; there are no package-level singletons.
type Session struct {
	// Hostname identifies this game instance in outbound ref parameters.
	Hostname string
	// Username rides along on departures when set.
	Username string
	// Arrival is the URL the player arrived with, the stand-in for the
	// browser location. Nil when the game was started directly.
	Arrival *url.URL
}

// ResolveDestination produces the navigation URL for a portal. Start portals
// ignore targetURL and read the session's arrival ref at interaction time;
// exit portals build the outbound URL for their configured target.
func (s *Session) ResolveDestination(kind Kind, targetURL string) (string, error) {
	if kind == KindStart {
		var arrival *url.URL
		if s != nil {
			arrival = s.Arrival
		}
		return ResolveArrival(arrival)
	}
	var host, username string
	if s != nil {
		host, username = s.Hostname, s.Username
	}
	return BuildDeparture(targetURL, host, username, kind)
}

// Navigator performs the hard boundary crossing to another site. Unlike a
// scene load this replaces the whole process context, so implementations are
// expected to tear the game down.
type Navigator interface {
	Navigate(rawURL string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(rawURL string) error

func (f NavigatorFunc) Navigate(rawURL string) error {
	return f(rawURL)
}
