// syncwidgets shows a slider and a spin button whose values follow each other.
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
	AppID:  "com.github.sync_widgets",
	Width:  400,
	Height: 140,
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "syncwidgets: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags("syncwidgets")
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

	sw, err := ui.NewSyncWidgets(tk, log.With("syncwidgets"))
	if err != nil {
		log.Error("Startup", "Failure", err.Error())
		return err
	}

	ui.Run(tk, sw.Window, cfg.Window.Width, cfg.Window.Height)

	return nil
}
