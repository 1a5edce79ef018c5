package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu  sync.RWMutex
	log *slog.Logger
)

// Init configures the global logger. Development gets human-readable text
// at debug level, everything else structured JSON at info level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	mu.Lock()
	log = slog.New(handler)
	mu.Unlock()
}

func std() *slog.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		return slog.Default()
	}
	return l
}

// kvArgs tolerates both proper key-value pairs and bare values
// (services frequently call logger.Error("msg", err)).
func kvArgs(args []any) []any {
	if len(args)%2 == 0 {
		paired := true
		for i := 0; i < len(args); i += 2 {
			if _, ok := args[i].(string); !ok {
				paired = false
				break
			}
		}
		if paired {
			return args
		}
	}

	out := make([]any, 0, len(args)*2)
	for _, a := range args {
		switch v := a.(type) {
		case error:
			out = append(out, "error", v)
		default:
			out = append(out, "detail", v)
		}
	}
	return out
}

func Debug(msg string, args ...any) {
	std().Debug(msg, kvArgs(args)...)
}

func Info(msg string, args ...any) {
	std().Info(msg, kvArgs(args)...)
}

func Warn(msg string, args ...any) {
	std().Warn(msg, kvArgs(args)...)
}

func Error(msg string, args ...any) {
	std().Error(msg, kvArgs(args)...)
}

// Fatal logs at error level and terminates the process.
func Fatal(msg string, args ...any) {
	std().Error(msg, kvArgs(args)...)
	os.Exit(1)
}
