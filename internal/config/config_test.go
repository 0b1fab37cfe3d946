package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Content: ContentConfig{
			Roster:     "content/heroes",
			ScriptsDir: "content/scripts",
		},
		Thief: ThiefConfig{
			Methods: []string{MethodHitAndRun, MethodSubtle, MethodRandom, MethodScripted},
			Targets: []string{"baker", "guard"},
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
content:
  roster: heroes.yaml
thief:
  methods: [subtle, random]
  targets: [baker, guard, merchant]
  seed: 42
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "heroes.yaml", cfg.Content.Roster)
	assert.Equal(t, []string{MethodSubtle, MethodRandom}, cfg.Thief.Methods)
	assert.Equal(t, []string{"baker", "guard", "merchant"}, cfg.Thief.Targets)
	assert.Equal(t, uint64(42), cfg.Thief.Seed)
	assert.Equal(t, 0, cfg.Thief.ScriptInstructionLimit)
}

func TestLoadDefaultsFromMinimalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "min.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, []string{MethodHitAndRun, MethodSubtle}, cfg.Thief.Methods)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Thief.HasMethod(MethodHitAndRun))
	assert.False(t, cfg.Thief.HasMethod(MethodScripted))
}

func TestLoadFromViper_InvalidRejected(t *testing.T) {
	v := viper.New()
	v.Set("logging.level", "trace")
	v.Set("logging.format", "json")
	v.Set("thief.methods", []string{MethodSubtle})
	_, err := LoadFromViper(v)
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateThiefMethodsEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Thief.Methods = nil
	assert.Error(t, cfg.Validate())
}

func TestValidateThiefUnknownMethod(t *testing.T) {
	cfg := validConfig()
	cfg.Thief.Methods = []string{MethodSubtle, "smash_and_grab"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smash_and_grab")
}

func TestValidateRandomNeedsTargets(t *testing.T) {
	cfg := validConfig()
	cfg.Thief.Targets = nil
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Thief.Targets = []string{"baker", ""}
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Thief.Methods = []string{MethodSubtle}
	cfg.Thief.Targets = nil
	assert.NoError(t, cfg.Validate(), "targets are only required for the random method")
}

func TestValidateScriptedNeedsScriptsDir(t *testing.T) {
	cfg := validConfig()
	cfg.Content.ScriptsDir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateNegativeInstructionLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Thief.ScriptInstructionLimit = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Thief.Methods = []string{"bogus"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "thief.methods")
}

// Property-based tests

func TestPropertyInstructionLimitNonNegativeAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(0, 10_000_000).Draw(t, "limit")
		cfg := validConfig()
		cfg.Thief.ScriptInstructionLimit = limit
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid limit %d rejected: %v", limit, err)
		}
	})
}

func TestPropertyUnknownMethodRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.StringMatching(`[a-z_]{1,12}`).Filter(func(s string) bool {
			switch s {
			case MethodHitAndRun, MethodSubtle, MethodRandom, MethodScripted:
				return false
			}
			return true
		}).Draw(t, "method")
		cfg := validConfig()
		cfg.Thief.Methods = append(cfg.Thief.Methods, m)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("unknown method %q accepted", m)
		}
	})
}
