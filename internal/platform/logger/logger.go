package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Logger is a zap sugared logger that scrubs credentials out of key-value
// fields before they are encoded.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
	scrub         scrubber
}

type Option func(*Logger)

// WithRedaction toggles scrubbing. It is on by default.
func WithRedaction(on bool) Option {
	return func(l *Logger) { l.scrub.enabled = on }
}

// WithHashSalt salts the pseudonyms logged in place of user ids.
func WithHashSalt(salt string) Option {
	return func(l *Logger) { l.scrub.salt = strings.TrimSpace(salt) }
}

// New builds a logger for mode: "production" is JSON at info, "test" and
// "nop" discard everything, anything else is console output at debug.
func New(mode string, opts ...Option) (*Logger, error) {
	var (
		zl  *zap.Logger
		err error
	)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zl, err = cfg.Build()
	case "test", "nop":
		zl = zap.NewNop()
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zl, err = cfg.Build()
	}
	if err != nil {
		return nil, err
	}
	l := &Logger{SugaredLogger: zl.Sugar(), scrub: scrubber{enabled: true}}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, l.scrub.fields(keysAndValues)...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, l.scrub.fields(keysAndValues)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, l.scrub.fields(keysAndValues)...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, l.scrub.fields(keysAndValues)...)
}

func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Fatalw(msg, l.scrub.fields(keysAndValues)...)
}

func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(l.scrub.fields(keysAndValues)...),
		scrub:         l.scrub,
	}
}

const redacted = "[REDACTED]"

// secretKeyParts marks a field as a credential or personal data when its key
// contains any of them.
var secretKeyParts = []string{
	"token", "authorization", "bearer", "password", "secret",
	"api_key", "apikey", "groq", "email",
}

// pseudonymKeys are logged as a short salted digest so one user's requests
// can still be correlated.
var pseudonymKeys = []string{"user_id", "owner_id"}

type fieldClass int

const (
	fieldPlain fieldClass = iota
	fieldSecret
	fieldPseudonym
)

type scrubber struct {
	enabled bool
	salt    string
}

func classify(key string) fieldClass {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return fieldPlain
	}
	for _, part := range secretKeyParts {
		if strings.Contains(key, part) {
			return fieldSecret
		}
	}
	for _, k := range pseudonymKeys {
		if strings.Contains(key, k) {
			return fieldPseudonym
		}
	}
	return fieldPlain
}

func (s scrubber) fields(kv []interface{}) []interface{} {
	if !s.enabled || len(kv) == 0 {
		return kv
	}
	out := make([]interface{}, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		out = append(out, key, s.value(classify(key), kv[i+1]))
	}
	// odd trailing key is kept so zap can report it
	if len(kv)%2 == 1 {
		out = append(out, kv[len(kv)-1])
	}
	return out
}

func (s scrubber) value(class fieldClass, val interface{}) interface{} {
	switch class {
	case fieldSecret:
		return redacted
	case fieldPseudonym:
		return s.pseudonym(val)
	}
	switch v := val.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, inner := range v {
			out[k] = s.value(classify(k), inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, inner := range v {
			out[i] = s.value(fieldPlain, inner)
		}
		return out
	case string:
		if containsJWT(v) {
			return redacted
		}
		return v
	default:
		return val
	}
}

func (s scrubber) pseudonym(val interface{}) string {
	if val == nil {
		return ""
	}
	raw := strings.TrimSpace(fmt.Sprint(val))
	if raw == "" || raw == "0" {
		return ""
	}
	sum := sha256.Sum256([]byte(s.salt + raw))
	return "user:" + hex.EncodeToString(sum[:])[:12]
}

// containsJWT spots a compact JWS anywhere in s, including after "Bearer ".
// Every token this service issues starts with the base64 of `{"`.
func containsJWT(s string) bool {
	for _, word := range strings.Fields(s) {
		if strings.HasPrefix(word, "eyJ") && strings.Count(word, ".") == 2 {
			return true
		}
	}
	return false
}
