package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Fields map[string]any

type Level int

const (
	LevelInfo Level = iota
	LevelError
	LevelOff
)

var sensitiveKeys = map[string]struct{}{
	"holder":        {},
	"holdername":    {},
	"holder_name":   {},
	"accountholder": {},
}

var (
	mu     sync.RWMutex
	level  = LevelInfo
	output = log.New(os.Stderr, "", log.LstdFlags)
)

func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// Configure sets the minimum level and the destination for subsequent log lines.
func Configure(lvl Level, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	level = lvl
	if w != nil {
		output = log.New(w, "", log.LstdFlags)
	}
}

func Info(message string, fields Fields) {
	if !enabled(LevelInfo) {
		return
	}
	printf("INFO %s %s", message, fieldsJSON(fields))
}

func Error(message string, err error, fields Fields) {
	if !enabled(LevelError) {
		return
	}

	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	printf("ERROR %s %s", message, fieldsJSON(base))
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func enabled(lvl Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return lvl >= level && level != LevelOff
}

func printf(format string, args ...any) {
	mu.RLock()
	out := output
	mu.RUnlock()
	out.Printf(format, args...)
}

func fieldsJSON(fields Fields) string {
	if fields == nil {
		fields = Fields{}
	}

	sanitized := SanitizePayload(fields)
	b, err := json.Marshal(sanitized)
	if err != nil {
		return `{}`
	}

	return string(b)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
