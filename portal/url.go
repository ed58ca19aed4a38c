// Package portal implements the vibeverse URL handoff protocol: the game is
// stateless across navigation, so query parameters are the sole state
// transfer channel between sites.
package portal

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Kind distinguishes the two portal roles. An exit portal leaves for its
// configured target; a start portal returns the player to whatever site sent
// them here, resolved from the arrival URL at interaction time.
type Kind string

const (
	KindStart Kind = "start"
	KindExit  Kind = "exit"
)

// ErrNoReferrer means a start portal was used but the arrival URL carried no
// ref parameter; there is nowhere to go back to.
var ErrNoReferrer = errors.New("portal: arrival URL has no ref parameter")

// BuildDeparture constructs the outbound URL for leaving through a portal.
// portal=true is always appended; exit portals add ref=<host> so the
// destination can offer a way back; username rides along when set.
func BuildDeparture(target, host, username string, kind Kind) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("portal: empty departure target")
	}
	u, err := url.Parse(ensureScheme(target))
	if err != nil {
		return "", fmt.Errorf("portal: parse departure target %q: %w", target, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("portal: departure target %q has no host", target)
	}

	q := u.Query()
	q.Set("portal", "true")
	if kind == KindExit && host != "" {
		q.Set("ref", host)
	}
	if username != "" {
		q.Set("username", username)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ResolveArrival resolves a start portal's destination from the current
// arrival URL. The ref parameter names the destination (https:// is assumed
// when it has no scheme); every other arrival parameter is forwarded to it
// verbatim, preserving cross-site continuity.
func ResolveArrival(arrival *url.URL) (string, error) {
	if arrival == nil {
		return "", ErrNoReferrer
	}
	q := arrival.Query()
	ref := strings.TrimSpace(q.Get("ref"))
	if ref == "" {
		return "", ErrNoReferrer
	}

	dest, err := url.Parse(ensureScheme(ref))
	if err != nil {
		return "", fmt.Errorf("portal: parse ref %q: %w", ref, err)
	}
	if dest.Host == "" {
		return "", fmt.Errorf("portal: ref %q has no host", ref)
	}

	forward := dest.Query()
	for key, values := range q {
		if key == "ref" {
			continue
		}
		for _, v := range values {
			forward.Add(key, v)
		}
	}
	dest.RawQuery = forward.Encode()
	return dest.String(), nil
}

func ensureScheme(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}
