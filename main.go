package main

import (
	"flag"
	"net/url"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"golang.design/x/clipboard"

	"github.com/AIalchemistART/AIalchemistsLAIR/portal"
)

func main() {
	startScene := flag.String("scene", "lair", "scene id to start in")
	username := flag.String("username", "", "identity appended to outbound portal URLs")
	arrival := flag.String("arrival", "", "URL the player arrived with (portal handoff)")
	hostname := flag.String("host", "aialchemistslair.com", "hostname sent as ref on exit portals")
	debug := flag.Bool("debug", false, "enable debug logging and scene hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	session := &portal.Session{
		Hostname: *hostname,
		Username: *username,
	}
	if *username == "" {
		session.Username = os.Getenv("PORTAL_USERNAME")
	}
	if *arrival != "" {
		u, err := url.Parse(*arrival)
		if err != nil {
			log.WithError(err).Warn("ignoring malformed arrival URL")
		} else {
			session.Arrival = u
		}
	}

	copyFn := func(string) {}
	if err := clipboard.Init(); err != nil {
		log.WithError(err).Debug("clipboard unavailable, portal link copy disabled")
	} else {
		copyFn = func(s string) { clipboard.Write(clipboard.FmtText, []byte(s)) }
	}

	game, err := NewGame(*startScene, session, copyFn, *debug)
	if err != nil {
		log.WithError(err).Fatal("failed to build game")
	}
	defer game.Close()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("AI Alchemist's Lair")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
