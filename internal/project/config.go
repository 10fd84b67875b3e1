package project

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"pawnc/internal/diag"
	"pawnc/internal/source"
)

// Format is the syntax of a project file.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// Config mirrors the sections of the project file.
type Config struct {
	Lexer       LexerConfig       `toml:"lexer" yaml:"lexer"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Parse       ParseConfig       `toml:"parse" yaml:"parse"`
}

type LexerConfig struct {
	LegacyIdentifiers bool `toml:"legacy_identifiers" yaml:"legacy_identifiers"`
}

type DiagnosticsConfig struct {
	Max   int    `toml:"max" yaml:"max"`
	Color string `toml:"color" yaml:"color"`
}

type ParseConfig struct {
	Jobs       int      `toml:"jobs" yaml:"jobs"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
}

// Ключи, которые понимает pawnc; всё остальное — предупреждение PRJ5002.
const (
	KeyLegacyIdentifiers = "lexer.legacy_identifiers"
	KeyDiagnosticsMax    = "diagnostics.max"
	KeyDiagnosticsColor  = "diagnostics.color"
	KeyParseJobs         = "parse.jobs"
	KeyParseExtensions   = "parse.extensions"
)

var knownKeys = []string{
	KeyLegacyIdentifiers,
	KeyDiagnosticsMax,
	KeyDiagnosticsColor,
	KeyParseJobs,
	KeyParseExtensions,
}

// Manifest is a loaded project file.
type Manifest struct {
	Path    string
	Root    string
	Format  Format
	Config  Config
	defined map[string]bool
	Unknown []string // ключи, которые pawnc не знает, отсортированы
}

// IsSet reports whether key (e.g. "diagnostics.max") is present in the file.
func (m *Manifest) IsSet(key string) bool {
	return m != nil && m.defined[key]
}

// Report emits a warning for every unknown key.
func (m *Manifest) Report(r diag.Reporter) {
	if m == nil || r == nil {
		return
	}
	for _, key := range m.Unknown {
		diag.ReportWarning(r, diag.ProjConfigUnknown, source.Span{}, fmt.Sprintf("%s: unknown key %q", m.Path, key)).Emit()
	}
}

// Discover finds the project file for start and loads it.
// ok is false when no project file exists; that is not an error.
func Discover(start string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindConfig(start)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Load reads and validates a project file; the format follows the extension.
func Load(path string) (*Manifest, error) {
	// #nosec G304 -- path comes from FindConfig or the --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	m := &Manifest{Path: path, Root: filepath.Dir(path)}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m.Format = FormatYAML
		err = m.decodeYAML(data)
	default:
		m.Format = FormatTOML
		err = m.decodeTOML(data)
	}
	if err != nil {
		return nil, err
	}
	if err := m.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slices.Sort(m.Unknown)
	return m, nil
}

func (m *Manifest) decodeTOML(data []byte) error {
	meta, err := toml.Decode(string(data), &m.Config)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", m.Path, err)
	}
	m.defined = make(map[string]bool, len(knownKeys))
	for _, key := range knownKeys {
		if meta.IsDefined(strings.Split(key, ".")...) {
			m.defined[key] = true
		}
	}
	for _, k := range meta.Undecoded() {
		m.Unknown = append(m.Unknown, k.String())
	}
	return nil
}

func (m *Manifest) decodeYAML(data []byte) error {
	if err := yaml.Unmarshal(data, &m.Config); err != nil {
		return fmt.Errorf("%s: failed to parse YAML: %w", m.Path, err)
	}
	// второй проход только чтобы узнать, какие ключи реально заданы
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: failed to parse YAML: %w", m.Path, err)
	}
	m.defined = make(map[string]bool, len(knownKeys))
	for section, value := range raw {
		fields, isMap := value.(map[string]any)
		if !isMap {
			if value != nil || !slices.ContainsFunc(knownKeys, func(k string) bool { return strings.HasPrefix(k, section+".") }) {
				m.Unknown = append(m.Unknown, section)
			}
			continue
		}
		for field := range fields {
			key := section + "." + field
			if slices.Contains(knownKeys, key) {
				m.defined[key] = true
			} else {
				m.Unknown = append(m.Unknown, key)
			}
		}
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must be >= 0, got %d", c.Diagnostics.Max)
	}
	switch c.Diagnostics.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("[diagnostics].color must be auto, on or off, got %q", c.Diagnostics.Color)
	}
	if c.Parse.Jobs < 0 {
		return fmt.Errorf("[parse].jobs must be >= 0, got %d", c.Parse.Jobs)
	}
	for _, ext := range c.Parse.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("[parse].extensions: %q must look like \".pwn\"", ext)
		}
	}
	return nil
}
