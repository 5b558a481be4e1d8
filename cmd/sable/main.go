package main

import (
	"flag"
	"fmt"
	"os"

	"sable-editor/app"
	"sable-editor/app/config"
	"sable-editor/app/fonts"
	"sable-editor/tui"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func main() {
	// parse flags for stuff like --debug etc.
	flag.Parse()

	if *app.ShowVersion {
		fmt.Printf("%s %s\n", app.Name(), app.Version)
		return
	}

	conf := config.New()
	if conf == nil {
		fmt.Fprintln(os.Stderr, "could not initialise configuration")
		os.Exit(1)
	}

	// a broken metrics table would corrupt every menu hit test, so a
	// configured file that fails to parse refuses startup
	table, err := fonts.Load(conf.MetricsPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootPath, err := app.ProjectRootDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// alt-screen and mouse reporting are requested by the root model's
	// View in bubbletea v2, not by program options
	p := tea.NewProgram(tui.InitialModel(rootPath, conf, table))

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
