// showcase is a gallery of dialogs and input widgets. Events are logged to
// the configured log output and to a table inside the window.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/andrei-cloud/widgetdemos/internal/config"
	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
	"github.com/andrei-cloud/widgetdemos/internal/ui"
)

var defaults = config.Defaults{
	AppID:  "com.github.showcase",
	Width:  640,
	Height: 560,
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags("showcase")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(defaults, fs)
	if err != nil {
		return err
	}

	log, err := cfg.OpenLogger(nil)
	if err != nil {
		return err
	}
	defer log.Close()

	tk, err := toolkit.New(cfg.App.ID)
	if err != nil {
		log.Error("Startup", "Failure", err.Error())
		return err
	}

	sc, err := ui.NewShowcase(tk, log)
	if err != nil {
		log.Error("Startup", "Failure", err.Error())
		return err
	}
	log.SetCallback(sc.EventLog().Append)

	ui.Run(tk, sc.Window(), cfg.Window.Width, cfg.Window.Height)

	return nil
}
