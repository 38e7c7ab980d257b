package env

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultPath is the optional dotenv file read at startup.
const DefaultPath = ".env"

// Variables read by the CLI. Process environment wins over the dotenv file.
const (
	ConfigVar  = "COMPOUND2D_CONFIG"
	LogPathVar = "COMPOUND2D_LOG_PATH"
)

// Vars is the parsed content of a dotenv file.
type Vars map[string]string

// Parse reads KEY=VALUE lines from path. Empty lines and # comments are skipped, and one pair of
// surrounding quotes is removed from values. A missing file yields empty Vars.
func Parse(path string) (Vars, error) {
	vars := Vars{}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return vars, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		if !ok || key == "" {
			return nil, fmt.Errorf("%s:%d: expected KEY=VALUE", path, n)
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

// Load parses path and exports every variable not already set in the process environment.
func Load(path string) error {
	vars, err := Parse(path)
	if err != nil {
		return err
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value of key, or def when it is unset or empty.
func Get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
