package vos

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// VEnv represents a virtual environment.
type VEnv interface {
	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)

	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// Setenv sets the value of the environment variable named by the key.
	Setenv(key, value string) error

	// LookupEnv retrieves the value of the environment variable named by the key.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the key.
	Getenv(key string) string

	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string
}

const (
	EnvHome   = "HOME"
	EnvPWD    = "PWD"
	EnvOldPWD = "OLDPWD"
)

// NewMapEnv creates a new environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromEnvList creates an environment from "key=value" pairs such as
// the ones returned by os.Environ().
func NewMapEnvFromEnvList(environ []string) *MapEnv {
	out := &MapEnv{}
	CopyEnv(out, environ)
	return out
}

// CopyEnv copies the "key=value" pairs into dst.
func CopyEnv(dst VEnv, environ []string) {
	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		// Ignore error, it will never be set for MapEnv.
		_ = dst.Setenv(key, value)
	}
}

// MapEnv implements an in-memory VEnv.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ VEnv = (*MapEnv)(nil)

// UserHomeDir implements VEnv.UserHomeDir.
func (m *MapEnv) UserHomeDir() (string, error) {
	if home := m.Getenv(EnvHome); home != "" {
		return home, nil
	}
	return "", fmt.Errorf("$%s is not defined", EnvHome)
}

// Unsetenv implements VEnv.Unsetenv.
func (m *MapEnv) Unsetenv(key string) error {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
	return nil
}

// Setenv implements VEnv.Setenv.
func (m *MapEnv) Setenv(key, value string) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// LookupEnv implements VEnv.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv implements VEnv.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// ExpandTilde replaces a leading "~" in path with the home directory.
func (m *MapEnv) ExpandTilde(path string) string {
	home := m.Getenv(EnvHome)
	switch {
	case home == "":
		return path
	case path == "~":
		return home
	case strings.HasPrefix(path, "~"+string(os.PathSeparator)):
		return home + path[1:]
	default:
		return path
	}
}

// Environ implements VEnv.Environ, entries are sorted by key.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)

	return env
}
