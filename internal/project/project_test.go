package project

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"pawnc/internal/diag"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pawnc.toml"), "")
	script := filepath.Join(root, "gamemodes", "sub", "main.pwn")
	writeFile(t, script, "new a;")

	for _, start := range []string{script, filepath.Dir(script), root} {
		path, ok, err := FindConfig(start)
		if err != nil || !ok {
			t.Fatalf("FindConfig(%s) = %q, %v, %v", start, path, ok, err)
		}
		if filepath.Base(path) != "pawnc.toml" {
			t.Fatalf("FindConfig(%s) = %q", start, path)
		}
	}

	gotRoot, ok, err := FindProjectRoot(script)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot: %v %v", ok, err)
	}
	wantRoot, _ := filepath.Abs(root)
	if gotRoot != wantRoot {
		t.Fatalf("FindProjectRoot = %q, want %q", gotRoot, wantRoot)
	}
}

func TestFindConfigPrefersNearestAndTOML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pawnc.toml"), "")
	nested := filepath.Join(root, "inner")
	writeFile(t, filepath.Join(nested, "pawnc.yaml"), "")
	writeFile(t, filepath.Join(nested, "pawnc.yml"), "")

	path, ok, err := FindConfig(nested)
	if err != nil || !ok || filepath.Base(path) != "pawnc.yaml" {
		t.Fatalf("FindConfig = %q, %v, %v", path, ok, err)
	}
}

func TestDiscoverNothing(t *testing.T) {
	m, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if ok || m != nil {
		t.Fatalf("Discover found %+v in an empty tree", m)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawnc.toml")
	writeFile(t, path, `
[lexer]
legacy_identifiers = true
bogus = 1

[diagnostics]
max = 25

[parse]
extensions = [".pwn", ".p"]
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Format != FormatTOML {
		t.Fatalf("format = %v", m.Format)
	}
	if !m.Config.Lexer.LegacyIdentifiers || m.Config.Diagnostics.Max != 25 {
		t.Fatalf("config = %+v", m.Config)
	}
	if !slices.Equal(m.Config.Parse.Extensions, []string{".pwn", ".p"}) {
		t.Fatalf("extensions = %v", m.Config.Parse.Extensions)
	}
	for key, want := range map[string]bool{
		KeyLegacyIdentifiers: true,
		KeyDiagnosticsMax:    true,
		KeyDiagnosticsColor:  false,
		KeyParseJobs:         false,
		KeyParseExtensions:   true,
	} {
		if got := m.IsSet(key); got != want {
			t.Errorf("IsSet(%s) = %v, want %v", key, got, want)
		}
	}
	if !slices.Equal(m.Unknown, []string{"lexer.bogus"}) {
		t.Fatalf("Unknown = %v", m.Unknown)
	}

	bag := diag.NewBag(0)
	m.Report(diag.BagReporter{Bag: bag})
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.ProjConfigUnknown || items[0].Severity != diag.SevWarning {
		t.Fatalf("report = %+v", items)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawnc.yaml")
	writeFile(t, path, `
diagnostics:
  color: "off"
parse:
  jobs: 3
  cache: true
extra: 1
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Format != FormatYAML {
		t.Fatalf("format = %v", m.Format)
	}
	if m.Config.Diagnostics.Color != "off" || m.Config.Parse.Jobs != 3 {
		t.Fatalf("config = %+v", m.Config)
	}
	if !m.IsSet(KeyDiagnosticsColor) || !m.IsSet(KeyParseJobs) || m.IsSet(KeyDiagnosticsMax) {
		t.Fatalf("defined keys wrong: %v", m.defined)
	}
	if !slices.Equal(m.Unknown, []string{"extra", "parse.cache"}) {
		t.Fatalf("Unknown = %v", m.Unknown)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad toml", "pawnc.toml", "[lexer\n", "failed to parse TOML"},
		{"bad yaml", "pawnc.yaml", "lexer: [1, 2\n", "failed to parse YAML"},
		{"negative max", "pawnc.toml", "[diagnostics]\nmax = -1\n", "[diagnostics].max"},
		{"bad color", "pawnc.yml", "diagnostics:\n  color: rainbow\n", "[diagnostics].color"},
		{"negative jobs", "pawnc.toml", "[parse]\njobs = -2\n", "[parse].jobs"},
		{"bad extension", "pawnc.toml", "[parse]\nextensions = [\"pwn\"]\n", "[parse].extensions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Load error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "pawnc.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load on missing file: %v", err)
	}
}
