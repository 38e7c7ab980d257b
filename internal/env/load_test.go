package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeFile(t, "# comment\n\nCOMPOUND2D_CONFIG=cfg/a.yaml\nexport NAME = \"two words\"\nSINGLE='x'\nEMPTY=\n")
	vars, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Vars{"COMPOUND2D_CONFIG": "cfg/a.yaml", "NAME": "two words", "SINGLE": "x", "EMPTY": ""}
	if len(vars) != len(want) {
		t.Fatalf("Expected %d vars, got %d: %v", len(want), len(vars), vars)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("Expected %s=%q, got %q", k, v, vars[k])
		}
	}
}

func TestParseMissingFile(t *testing.T) {
	vars, err := Parse(filepath.Join(t.TempDir(), "nope"))
	if err != nil || len(vars) != 0 {
		t.Errorf("Expected empty vars and no error, got %v, %v", vars, err)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(writeFile(t, "JUSTAKEY\n")); err == nil {
		t.Error("Expected error for line without '='")
	}
}

func TestLoadKeepsProcessEnvironment(t *testing.T) {
	t.Setenv(ConfigVar, "from-process.yaml")
	t.Setenv(LogPathVar, "")
	path := writeFile(t, ConfigVar+"=from-file.yaml\n"+LogPathVar+"=logs/x.txt\n")
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Get(ConfigVar, "def"); got != "from-process.yaml" {
		t.Errorf("Expected process value to win, got %q", got)
	}
	// LogPathVar was set (to empty) by t.Setenv, so the file value is not applied.
	if got := Get(LogPathVar, "def"); got != "def" {
		t.Errorf("Expected default for empty variable, got %q", got)
	}
}
