// Package config provides the read-only configuration sources settings are merged from:
// a key/value base configuration loaded from files, and the process environment.
package config

import (
	"os"
	"sort"
	"strings"
)

// KeyDelimiter separates sections in hierarchical configuration keys, e.g. OpenAI:ApiKey
const KeyDelimiter = ":"

// Source is a read-only key/value lookup. Keys are hierarchical, joined with KeyDelimiter.
type Source interface {
	Lookup(key string) (string, bool)
}

// EnvLookup looks up an environment variable, reporting whether it is defined
type EnvLookup func(key string) (string, bool)

// OSEnv reads the process environment
var OSEnv EnvLookup = os.LookupEnv

// MapEnv makes EnvLookup from a fixed map, mostly for tests and embedding
func MapEnv(kv map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		v, ok := kv[key]
		return v, ok
	}
}

// Map is an in-memory Source with case-insensitive keys and last-writer-wins semantics
type Map struct {
	values map[string]string
}

// NewMap makes Map from kv. Keys differing only in case collapse into one; they are applied
// in sorted order, so the lexically greatest spelling wins, e.g. openai:model over OpenAI:Model.
func NewMap(kv map[string]string) *Map {
	m := &Map{values: make(map[string]string, len(kv))}
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.Set(k, kv[k])
	}
	return m
}

// Key joins sections into a hierarchical key
func Key(sections ...string) string {
	return strings.Join(sections, KeyDelimiter)
}

// Lookup returns the value for key, case-insensitive. Safe to call on nil Map.
func (m *Map) Lookup(key string) (string, bool) {
	if m == nil || m.values == nil {
		return "", false
	}
	v, ok := m.values[normalizeKey(key)]
	return v, ok
}

// Set stores value under key, replacing any previous value
func (m *Map) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[normalizeKey(key)] = value
}

// Merge copies all keys from other into m, values from other win
func (m *Map) Merge(other *Map) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		m.Set(k, v)
	}
}

// Len returns the number of keys
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
