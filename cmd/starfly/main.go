package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/lixenwraith/starfly/audio"
	"github.com/lixenwraith/starfly/config"
	"github.com/lixenwraith/starfly/engine"
	"github.com/lixenwraith/starfly/starfield"
	"github.com/lixenwraith/starfly/terminal"
)

var (
	configFlag    = flag.String("config", "", "Path to the settings file (default: <executable>.conf)")
	configureFlag = flag.Bool("configure", false, "Show configuration instructions and exit")
)

func main() {
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = defaultConfigPath()
	}
	cfg := config.Load(path)

	// There is no configuration dialog, matching the classic screensaver
	if *configureFlag {
		fmt.Printf("starfly has no configuration dialog.\nEdit %s to change settings (key = value lines).\n", path)
		return
	}

	if cfg.Sound {
		if err := audio.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio unavailable: %v (continuing without sound)\n", err)
		} else {
			defer audio.Stop()
		}
	}

	screen, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\x1b[31mSTARFLY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	session, err := engine.New(cfg, screen, starfield.NewSessionSource())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}
	session.Start()

	watcher := terminal.NewExitWatcher()
	runErr := watch(session, watcher, screen)

	session.Stop()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Session ended: %v\n", runErr)
		os.Exit(1)
	}
}

// watch blocks until user input ends the session or a frame fails
func watch(session *engine.Session, watcher *terminal.ExitWatcher, screen *terminal.Screen) error {
	for {
		select {
		case ev := <-screen.Events():
			if watcher.ShouldExit(ev) {
				return nil
			}
		case <-session.Done():
			return session.Err()
		}
	}
}

// defaultConfigPath derives the settings file from the executable,
// "starfly" next to the binary becomes "starfly.conf"
func defaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "starfly.conf"
	}
	base := strings.TrimSuffix(exe, filepath.Ext(exe))
	return base + ".conf"
}
