package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Koanf is the process configuration tree. Values come from an optional
// dotenv file, the process environment and defaults registered with Add.
type Koanf struct {
	k *koanf.Koanf
}

// NewKoanf loads envPath (if it exists) and the environment. When watchEnv
// is set, changes to envPath reload the file and invoke callback.
func NewKoanf(envPath string, watchEnv bool, callback func()) (*Koanf, error) {
	app := &Koanf{k: koanf.New(".")}
	var f *file.File
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			f = file.Provider(envPath)
			if err := app.k.Load(f, dotenv.Parser()); err != nil {
				return nil, fmt.Errorf("loading %s: %w", envPath, err)
			}
		} else {
			color.Yellow.Println("No .env file found at " + envPath)
		}
	}
	if err := app.k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	if watchEnv && f != nil {
		err := f.Watch(func(event interface{}, err error) {
			if err != nil {
				log.Printf("watch error: %v", err)
				return
			}
			if err := app.k.Load(f, dotenv.Parser()); err != nil {
				log.Printf("reload %s: %v", envPath, err)
				return
			}
			if callback != nil {
				callback()
			}
		})
		if err != nil {
			log.Printf("watch %s: %v", envPath, err)
		}
	}
	return app, nil
}

// set reports whether path holds a non-empty value.
func (app *Koanf) set(path string) bool {
	v := app.k.Get(path)
	return v != nil && v != ""
}

func first(values []any) any {
	if len(values) > 0 {
		return values[0]
	}
	return nil
}

// Env reads a flat key such as an environment variable. Empty counts as unset.
func (app *Koanf) Env(envName string, defaultValue ...any) any {
	if app.set(envName) {
		return app.k.Get(envName)
	}
	return first(defaultValue)
}

func (app *Koanf) Add(name string, configuration any) {
	if err := app.k.Set(name, configuration); err != nil {
		panic(err)
	}
}

func (app *Koanf) Get(path string, defaultValue ...any) any {
	if app.k.Exists(path) {
		return app.k.Get(path)
	}
	return first(defaultValue)
}

// The typed getters fall back to the default when path is unset or its
// value does not convert.

func (app *Koanf) GetString(path string, defaultValue ...any) string {
	if app.set(path) {
		return app.k.String(path)
	}
	if d := first(defaultValue); d != nil {
		return fmt.Sprint(d)
	}
	return ""
}

// GetStrings accepts either a list or a comma separated string. Items are
// trimmed and empty ones dropped.
func (app *Koanf) GetStrings(path string, defaultValue ...any) []string {
	var raw []string
	switch v := app.Get(path, defaultValue...).(type) {
	case string:
		raw = strings.Split(v, ",")
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			raw = append(raw, fmt.Sprint(item))
		}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (app *Koanf) GetInt(path string, defaultValue ...any) int {
	if app.set(path) {
		if n, err := strconv.Atoi(strings.TrimSpace(app.k.String(path))); err == nil {
			return n
		}
	}
	d, _ := first(defaultValue).(int)
	return d
}

func (app *Koanf) GetBool(path string, defaultValue ...any) bool {
	if app.set(path) {
		if b, err := strconv.ParseBool(strings.TrimSpace(app.k.String(path))); err == nil {
			return b
		}
	}
	d, _ := first(defaultValue).(bool)
	return d
}

// GetDuration parses Go duration strings ("90s", "30m"). Defaults may be a
// time.Duration or such a string.
func (app *Koanf) GetDuration(path string, defaultValue ...any) time.Duration {
	if app.set(path) {
		if d, err := time.ParseDuration(strings.TrimSpace(app.k.String(path))); err == nil {
			return d
		}
	}
	switch d := first(defaultValue).(type) {
	case time.Duration:
		return d
	case string:
		parsed, _ := time.ParseDuration(d)
		return parsed
	}
	return 0
}
