package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"sable-editor/app"
	"sable-editor/app/debug"

	"gopkg.in/ini.v1"
)

//go:embed default.conf
var defaultConf []byte

type Section int

const (
	General Section = iota
	Sidebar
	Editor
	Menu
)

// Map of Section enum values to their string representations
var sections = map[Section]string{
	General: "General",
	Sidebar: "Sidebar",
	Editor:  "Editor",
	Menu:    "Menu",
}

// String returns the string representation of a Section
func (s Section) String() string {
	return sections[s]
}

type Option int

const (
	NerdFonts Option = iota
	MetricsFile
	Visible
	Width
	IndentLines
	Placeholder
	ButtonPadding
	Expanded
)

// Map of Option enum values to their string names as used in the ini file
var options = map[Option]string{
	NerdFonts:     "NerdFonts",
	MetricsFile:   "MetricsFile",
	Visible:       "Visible",
	Width:         "Width",
	IndentLines:   "IndentLines",
	Placeholder:   "Placeholder",
	ButtonPadding: "ButtonPadding",
	Expanded:      "Expanded",
}

// String returns the string representation of an Option
func (o Option) String() string {
	return options[o]
}

// Value represents a single config entry
type Value struct {
	Value string
}

func (v Value) GetBool() bool {
	return v.Value == "true"
}

func (v Value) GetInt(fallback int) int {
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		return fallback
	}
	return n
}

// Config holds all config data
type Config struct {
	// path to the main config file
	filePath string

	// path to the meta data config file
	metaFilePath string

	// parsed default config file
	file *ini.File

	// parsed user config file
	userFile *ini.File

	// parsed meta data file
	metaFile *ini.File

	// timer used to debounce saving meta config changes
	flushTimer *time.Timer

	// mutex to synchronise flush operations
	flushMu sync.Mutex

	// delay before flushing changes to disk
	flushDelay time.Duration

	// cached nerdFonts config value
	nerdFonts *bool
}

func (c *Config) File() string { return c.filePath }

// New loads or creates a config file with default settings
func New() *Config {
	config := &Config{}

	filePath, err := app.ConfigFile()
	if err != nil {
		return config
	}

	if _, err := os.Stat(filePath); err != nil {
		if file, err := os.Create(filePath); err == nil {
			file.Close()
		} else {
			debug.LogErr(err)
		}
	}

	ini.PrettyFormat = false
	ini.PrettyEqual = true

	conf, err := ini.Load(defaultConf)
	if err != nil {
		debug.LogErr("Failed to read config file:", err)
		return nil
	}

	userConf, err := ini.Load(filePath)
	if err != nil {
		debug.LogErr("Failed to read user config file:", err)
		return nil
	}

	config.filePath = filePath
	config.file = conf
	config.userFile = userConf
	config.flushDelay = 400 * time.Millisecond

	// Meta info file

	metaFilePath, err := app.MetaFile()
	if err != nil {
		debug.LogErr(err)
		return nil
	}

	if _, err := os.Stat(metaFilePath); err != nil {
		if file, err := os.Create(metaFilePath); err == nil {
			file.Close()
		}
	}

	metaConf, err := ini.Load(metaFilePath)
	if err != nil {
		debug.LogErr("Failed to read meta infos file:", err)
		return nil
	}

	config.metaFilePath = metaFilePath
	config.metaFile = metaConf

	return config
}

// Value retrieves the value of a configuration option in a given section.
// The user config overrides the embedded defaults.
func (c *Config) Value(section Section, option Option) (Value, error) {
	if sect := c.userFile.Section(section.String()); sect != nil {
		if opt := sect.Key(option.String()); opt.String() != "" {
			return Value{opt.String()}, nil
		}
	}

	sect := c.file.Section(section.String())

	if sect == nil {
		return Value{}, fmt.Errorf("no section: %s", section.String())
	}

	if opt := sect.Key(option.String()); opt.String() != "" {
		return Value{opt.String()}, nil
	}

	return Value{}, fmt.Errorf(
		"couldn't find config option `%s` in section `%s`",
		option.String(),
		section.String(),
	)
}

// SetValue sets a configuration option value in the specified section
// and saves the config file immediately
func (c *Config) SetValue(section Section, option Option, value string) {
	c.userFile.
		Section(section.String()).
		Key(option.String()).
		SetValue(value)

	c.userFile.SaveTo(c.filePath)
}

// MetaValue retrieves a metadata value by path and option.
func (c *Config) MetaValue(path string, option Option) (string, error) {
	if c.metaFile == nil {
		return "", fmt.Errorf("could not find meta file")
	}

	return c.metaFile.Section(path).Key(option.String()).String(), nil
}

// SetMetaValue sets a metadata option value and schedules
// saving changes with debounce
func (c *Config) SetMetaValue(path string, option Option, value string) {
	if c.metaFile == nil {
		return
	}

	sect := c.metaFile.Section(path)
	opt := sect.Key(option.String())

	if opt.Value() == value {
		return
	}

	opt.SetValue(value)

	c.debounceFlush()
}

// debounceFlush uses a timer and mutex to delay and
// batch saving of metaFile changes
func (c *Config) debounceFlush() {
	c.flushMu.Lock()
	defer c.flushMu.Unlock()

	if c.flushTimer != nil {
		c.flushTimer.Stop()
	}

	c.flushTimer = time.AfterFunc(c.flushDelay, func() {
		c.flushMu.Lock()
		defer c.flushMu.Unlock()
		c.metaFile.SaveTo(c.metaFilePath)
	})
}

// NerdFonts determines whether nerd fonts are enabled either
// via the config file or the cli argument.
// The cli argument always overrides the value set in the config
func (c *Config) NerdFonts() bool {
	if c.nerdFonts != nil {
		return *c.nerdFonts
	}

	nf, err := c.Value(General, NerdFonts)

	// default is true
	nerdFonts := true

	if err == nil && nf.Value != "" {
		nerdFonts = nf.GetBool()
	}

	if app.IsFlagPassed("no-nerd-fonts") {
		nerdFonts = false
	}

	c.nerdFonts = &nerdFonts
	return nerdFonts
}

// MetricsPath returns the path of a user supplied glyph metrics file.
// An empty string means the embedded table is used.
func (c *Config) MetricsPath() string {
	v, err := c.Value(General, MetricsFile)
	if err != nil {
		return ""
	}
	return v.Value
}

// SidebarWidth returns the persisted sidebar width in cells.
func (c *Config) SidebarWidth(fallback int) int {
	v, err := c.Value(Sidebar, Width)
	if err != nil {
		return fallback
	}
	return v.GetInt(fallback)
}
