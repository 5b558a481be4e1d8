package app

import (
	"flag"
	"os"
	"path/filepath"

	"sable-editor/app/debug"
)

var Debug = flag.Bool("debug", false, "Debug mode")
var NoNerdFonts = flag.Bool("no-nerd-fonts", false, "Disable nerd fonts")
var ShowVersion = flag.Bool("version", false, "Shows the version")
var WorkDir = flag.String("dir", "", "Project directory to browse (defaults to the working directory)")

func IsDev() bool {
	return os.Getenv("CHANNEL") == "dev"
}

func Name() string {
	name := "Sable Editor"

	return name
}

// ModuleName returns the name used for config and log directories.
func ModuleName() string {
	moduleName := "sable-editor"
	if channel := os.Getenv("CHANNEL"); channel != "" {
		moduleName += "-" + channel
	}

	return moduleName
}

// ProjectRootDir returns the directory the file tree browses.
// The --dir flag overrides the process working directory.
func ProjectRootDir() (string, error) {
	if *WorkDir != "" {
		abs, err := filepath.Abs(*WorkDir)
		if err != nil {
			debug.LogErr(err)
			return "", err
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		debug.LogErr(err)
		return "", err
	}

	return wd, nil
}

// ConfigDir returns the config directory
func ConfigDir() (string, error) {
	ConfigDir, err := os.UserConfigDir()
	if err != nil {
		msg := "Could not get config directory in app.go/ConfigDir()"
		debug.LogErr(msg, err)
		return "", err
	}

	appName := ModuleName()
	confDir := filepath.Join(ConfigDir, appName)

	if _, err := os.Stat(confDir); err != nil {
		os.Mkdir(confDir, 0755)
	}

	return confDir, nil
}

// ConfigFile returns the path to the config file
func ConfigFile() (string, error) {
	filename := ModuleName() + ".conf"

	configDir, err := ConfigDir()
	if err != nil {
		msg := "Could not get config dir in app.go/ConfigFile"
		debug.LogErr(msg, err)
		return "", err
	}

	configFile := filepath.Join(configDir, filename)

	return configFile, nil
}

// MetaFile returns the path to the meta info file which stores
// per-directory UI state like expansion flags.
func MetaFile() (string, error) {
	filename := ModuleName() + "_metainfos"

	configDir, err := ConfigDir()
	if err != nil {
		debug.LogErr(err)
		return "", err
	}

	return filepath.Join(configDir, filename), nil
}

func IsFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
