package debug

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

const appLogFile = "app.log"
const errorLogFile = "error.log"

type ErrorLvl int

const (
	Info ErrorLvl = iota
	Debug
	Warn
	Error
)

var errLvl = map[ErrorLvl]string{
	Info:  "INFO",
	Debug: "DEBUG",
	Warn:  "WARN",
	Error: "ERROR",
}

func (e ErrorLvl) String() string {
	return errLvl[e]
}

func LogInfo(args ...any) {
	logMsg(Info, args)
}

func LogDebug(args ...any) {
	logMsg(Debug, args)
}

func LogWarn(args ...any) {
	logMsg(Warn, args)
}

func LogErr(args ...any) {
	logMsg(Error, args)
}

func logMsg(level ErrorLvl, args ...any) {
	configDir, err := ConfigDir()
	if err != nil {
		return
	}

	logFile := appLogFile
	if level == Error {
		logFile = errorLogFile
	}

	file, err := os.OpenFile(
		filepath.Join(configDir, logFile),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return
	}
	defer file.Close()

	log.SetOutput(file)
	log.Printf(
		"[%s] %s: %s\n",
		time.Now().Format(time.TimeOnly),
		level.String(), args,
	)
}

// ConfigDir duplicates app.ConfigDir because importing the app
// package from here would be an import cycle.
func ConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appName := "sable-editor"
	if channel := os.Getenv("CHANNEL"); channel != "" {
		appName += "-" + channel
	}

	confDir := filepath.Join(userConfigDir, appName)

	if _, err := os.Stat(confDir); err != nil {
		os.Mkdir(confDir, 0755)
	}

	return confDir, nil
}
