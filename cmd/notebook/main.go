// notebook opens a window with closable tabs, three "sheet N" tabs by default.
// With --notebook.session set, the open tabs are remembered between runs.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/andrei-cloud/widgetdemos/internal/config"
	"github.com/andrei-cloud/widgetdemos/internal/session"
	"github.com/andrei-cloud/widgetdemos/internal/toolkit"
	"github.com/andrei-cloud/widgetdemos/internal/ui"
)

var defaults = config.Defaults{
	AppID:  "com.github.notebook",
	Width:  640,
	Height: 480,
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "notebook: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags("notebook")
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

	var store *session.Store
	if cfg.Notebook.Session != "" {
		if store, err = session.NewStore(cfg.Notebook.Session); err != nil {
			log.Error("Startup", "Failure", err.Error())
			return err
		}
	}

	nb, err := ui.NewNotebook(tk, cfg.Notebook.Tabs, store, log.With("notebook"))
	if err != nil {
		log.Error("Startup", "Failure", err.Error())
		return err
	}

	log.Info("Startup", "OK", fmt.Sprintf("%d tabs", nb.Tabs().NPages()))
	ui.Run(tk, nb.Window(), cfg.Window.Width, cfg.Window.Height)

	return nil
}
