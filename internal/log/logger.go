package log

import (
	"os"
	"strings"
	"sync"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

var once sync.Once
var loggers map[string]*zap.Logger
var rw sync.RWMutex

// Name is the name type for a logger.
type Name string

// Value gets the string value.
func (n Name) Value() string {
	return string(n)
}

const (
	// Locg is the logger name for the client pipeline.
	Locg Name = "locg"
	// Web is the logger for web-related stuff.
	Web Name = "web"
	// CLI is the logger for the command line tools.
	CLI Name = "cli"
)

// Creates a new logger with a configuration based on the environment.
func loggerFromEnv(name string) *zap.Logger {
	env := strings.ToLower(os.Getenv("LOCG_ENVIRONMENT"))
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		return logger.Named(name)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger.Named(slug.Make(name))
}

// Logger safely gets a logger from a name (concurrent-safe).
func Logger(name Name) *zap.Logger {
	once.Do(func() {
		loggers = make(map[string]*zap.Logger)
	})
	defer rw.Unlock()
	rw.Lock()
	logger, ok := loggers[name.Value()]
	if !ok {
		l := loggerFromEnv(name.Value())
		loggers[name.Value()] = l
		return l
	}
	return logger
}

// LOCG is a method for getting the client pipeline logger.
func LOCG() *zap.Logger {
	return Logger(Locg)
}

// WEB is a method for getting the web logger.
func WEB() *zap.Logger {
	return Logger(Web)
}

// CMD is a method for getting the command line logger.
func CMD() *zap.Logger {
	return Logger(CLI)
}
