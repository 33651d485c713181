package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Host holds process knobs read from the base configuration. They are not connector
// settings and have no command-line flags.
type Host struct {
	RetryAttempts int           // Retry:Attempts, 1 or less disables retries
	RetryDelay    time.Duration // Retry:Delay, initial backoff delay
	Timeout       time.Duration // Timeout, for client construction and the prompt
	Debug         bool          // Debug, or DEBUG env
}

// LoadHost reads host knobs from src, falling back to defaults for missing keys.
// The DEBUG environment variable, when defined, overrides the Debug key.
func LoadHost(src Source, env EnvLookup) (Host, error) {
	res := Host{RetryAttempts: 3, RetryDelay: time.Second, Timeout: 60 * time.Second}

	lookup := func(key string) (string, bool) {
		if src == nil {
			return "", false
		}
		v, ok := src.Lookup(key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := lookup(Key("Retry", "Attempts")); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Host{}, fmt.Errorf("invalid Retry:Attempts %q", v)
		}
		res.RetryAttempts = n
	}

	var err error
	if res.RetryDelay, err = duration(lookup, Key("Retry", "Delay"), res.RetryDelay); err != nil {
		return Host{}, err
	}
	if res.Timeout, err = duration(lookup, "Timeout", res.Timeout); err != nil {
		return Host{}, err
	}

	dbg, ok := lookup("Debug")
	if env != nil {
		if v, envOk := env("DEBUG"); envOk {
			dbg, ok = v, true
		}
	}
	if ok && dbg != "" {
		if res.Debug, err = strconv.ParseBool(dbg); err != nil {
			return Host{}, fmt.Errorf("invalid Debug %q", dbg)
		}
	}
	return res, nil
}

// duration accepts Go durations ("1500ms", "2s") and bare numbers of seconds
func duration(lookup func(string) (string, bool), key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q, duration like 5s expected", key, v)
	}
	return d, nil
}
