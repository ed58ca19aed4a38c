package portal

import (
	"errors"
	"net/url"
	"testing"
)

func TestBuildDeparture(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		host     string
		username string
		kind     Kind
		want     string
		wantErr  bool
	}{
		{
			name:   "exit_carries_ref_and_portal_flag",
			target: "other.example", host: "aialchemistslair.com", kind: KindExit,
			want: "https://other.example?portal=true&ref=aialchemistslair.com",
		},
		{
			name:   "username_rides_along",
			target: "other.example", host: "aialchemistslair.com", username: "bob", kind: KindExit,
			want: "https://other.example?portal=true&ref=aialchemistslair.com&username=bob",
		},
		{
			name:   "explicit_scheme_preserved",
			target: "http://portal.pieter.com", host: "aialchemistslair.com", kind: KindExit,
			want: "http://portal.pieter.com?portal=true&ref=aialchemistslair.com",
		},
		{
			name:   "start_kind_omits_ref",
			target: "other.example", host: "aialchemistslair.com", kind: KindStart,
			want: "https://other.example?portal=true",
		},
		{
			name:   "no_host_omits_ref",
			target: "other.example", kind: KindExit,
			want: "https://other.example?portal=true",
		},
		{
			name:   "existing_params_preserved",
			target: "https://other.example/play?level=2", host: "h.com", kind: KindExit,
			want: "https://other.example/play?level=2&portal=true&ref=h.com",
		},
		{
			name:   "empty_target",
			target: "  ", kind: KindExit, wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := BuildDeparture(c.target, c.host, c.username, c.kind)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestResolveArrival(t *testing.T) {
	mustParse := func(s string) *url.URL {
		u, err := url.Parse(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return u
	}

	cases := []struct {
		name    string
		arrival *url.URL
		want    string
		wantErr error
	}{
		{
			name:    "nil_arrival",
			arrival: nil,
			wantErr: ErrNoReferrer,
		},
		{
			name:    "missing_ref",
			arrival: mustParse("https://aialchemistslair.com/?portal=true&username=bob"),
			wantErr: ErrNoReferrer,
		},
		{
			name:    "schemeless_ref_gets_https",
			arrival: mustParse("https://aialchemistslair.com/?ref=foo.com"),
			want:    "https://foo.com",
		},
		{
			name:    "params_forwarded_except_ref",
			arrival: mustParse("https://aialchemistslair.com/?portal=true&ref=foo.com&username=bob&x=1"),
			want:    "https://foo.com?portal=true&username=bob&x=1",
		},
		{
			name:    "ref_scheme_preserved",
			arrival: mustParse("https://aialchemistslair.com/?ref=http%3A%2F%2Fback.example&y=2"),
			want:    "http://back.example?y=2",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ResolveArrival(c.arrival)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestSessionResolveDestination(t *testing.T) {
	arrival, err := url.Parse("https://aialchemistslair.com/?portal=true&ref=sender.example")
	if err != nil {
		t.Fatal(err)
	}
	s := &Session{Hostname: "aialchemistslair.com", Username: "bob", Arrival: arrival}

	t.Run("exit_builds_departure", func(t *testing.T) {
		got, err := s.ResolveDestination(KindExit, "other.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "https://other.example?portal=true&ref=aialchemistslair.com&username=bob"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("start_ignores_target_and_uses_ref", func(t *testing.T) {
		got, err := s.ResolveDestination(KindStart, "should-be-ignored.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "https://sender.example?portal=true"
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("nil_session_start_has_no_ref", func(t *testing.T) {
		var nilSession *Session
		if _, err := nilSession.ResolveDestination(KindStart, ""); !errors.Is(err, ErrNoReferrer) {
			t.Fatalf("expected ErrNoReferrer, got %v", err)
		}
	})
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	n := NavigatorFunc(func(rawURL string) error {
		got = rawURL
		return nil
	})
	if err := n.Navigate("https://foo.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://foo.com" {
		t.Fatalf("navigator received %q", got)
	}
}
