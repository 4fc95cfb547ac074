package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/corey/loading-server/internal/domain/page"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "8080"

// PortEnv names the environment variable that overrides DefaultPort.
const PortEnv = "PORT"

// Config is the fully resolved startup configuration.
type Config struct {
	BaseDir  string // directory the page path is relative to
	FilePath string // BaseDir joined with the argument or page.DefaultFile
	Port     string // passed to the listener unvalidated

	Fs     afero.Fs       // default: OS filesystem
	Logger *logrus.Logger // default: stderr, no timestamps
}

// ExecutableDir returns the directory holding the running binary,
// with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveFilePath joins baseDir with arg, or with page.DefaultFile when arg
// is empty. The result is not checked for existence.
func ResolveFilePath(baseDir, arg string) string {
	if arg == "" {
		arg = page.DefaultFile
	}
	return filepath.Join(baseDir, arg)
}

// ResolvePort returns the PORT value from getenv, or DefaultPort.
func ResolvePort(getenv func(string) string) string {
	if port := getenv(PortEnv); port != "" {
		return port
	}
	return DefaultPort
}

// LoadConfig resolves the configuration from the positional args and the
// environment. Only args[0] is consulted; baseDir is normally ExecutableDir.
func LoadConfig(baseDir string, args []string, getenv func(string) string) Config {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	return Config{
		BaseDir:  baseDir,
		FilePath: ResolveFilePath(baseDir, arg),
		Port:     ResolvePort(getenv),
	}
}

// NewLogger returns the default startup logger.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}
