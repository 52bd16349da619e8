package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/Zachkp/resume-site/config"
	"github.com/Zachkp/resume-site/fx"
	"github.com/Zachkp/resume-site/theme"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the built-in tuning; reloaded on change")
	reduced := flag.Bool("reduced-motion", false, "start with reduced motion")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	prefsPath := flag.String("prefs", "", "preference file (defaults to the user config dir)")
	flag.Parse()

	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("Error loading tuning: %v", err)
	}

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		watcher, err = config.WatchTuning(*tuningPath)
		if err != nil {
			log.Printf("Tuning hot reload disabled: %v", err)
		}
	}

	themes := theme.NewManager(prefsStore(*prefsPath))

	var copyText func(string) error
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		copyText = func(s string) error {
			clipboard.Write(clipboard.FmtText, []byte(s))
			return nil
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("backdrop")

	host := fx.NewHost(fx.Options{
		Theme:   themes,
		Tuning:  tuning,
		Watcher: watcher,
		Reduced: *reduced,
		Width:   1280,
		Height:  720,
		Copy:    copyText,
		Open:    copyText,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	host.Attach()
	defer host.Detach()

	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}

func prefsStore(path string) theme.Store {
	if path == "" {
		p, err := theme.DefaultPath()
		if err != nil {
			log.Printf("No config dir, theme will not persist: %v", err)
			return theme.NewMemStore()
		}
		path = p
	}
	return theme.NewFileStore(path)
}
