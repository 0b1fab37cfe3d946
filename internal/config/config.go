// Package config provides Viper-based configuration loading for heroforge.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Stealing method identifiers accepted in thief.methods.
const (
	MethodHitAndRun = "hit_and_run"
	MethodSubtle    = "subtle"
	MethodRandom    = "random"
	MethodScripted  = "scripted"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig locates the optional content files.
type ContentConfig struct {
	// Roster is a hero roster file or a directory of roster files. Empty skips rosters.
	Roster string `mapstructure:"roster"`
	// ScriptsDir holds *.lua step scripts for the scripted method.
	ScriptsDir string `mapstructure:"scripts_dir"`
}

// ThiefConfig selects the stealing methods the driver runs.
type ThiefConfig struct {
	// Methods lists method identifiers in run order.
	Methods []string `mapstructure:"methods"`
	// Targets is the pool the random method picks from.
	Targets []string `mapstructure:"targets"`
	// Seed makes the random method reproducible. 0 uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// ScriptInstructionLimit caps Lua opcodes per step. 0 uses the scripting default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Thief   ThiefConfig   `mapstructure:"thief"`
}

// HasMethod reports whether id is listed in c.Methods.
func (c ThiefConfig) HasMethod(id string) bool {
	for _, m := range c.Methods {
		if m == id {
			return true
		}
	}
	return false
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateThief(c.Thief, c.Content); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateThief(t ThiefConfig, c ContentConfig) error {
	var errs []string
	if len(t.Methods) == 0 {
		errs = append(errs, "thief.methods must not be empty")
	}
	valid := map[string]bool{MethodHitAndRun: true, MethodSubtle: true, MethodRandom: true, MethodScripted: true}
	for _, m := range t.Methods {
		if !valid[m] {
			errs = append(errs, fmt.Sprintf("thief.methods entries must be one of [hit_and_run, subtle, random, scripted], got %q", m))
		}
	}
	if t.HasMethod(MethodRandom) {
		if len(t.Targets) == 0 {
			errs = append(errs, "thief.targets must not be empty when the random method is enabled")
		}
		for i, target := range t.Targets {
			if strings.TrimSpace(target) == "" {
				errs = append(errs, fmt.Sprintf("thief.targets[%d] must not be empty", i))
			}
		}
	}
	if t.HasMethod(MethodScripted) && c.ScriptsDir == "" {
		errs = append(errs, "content.scripts_dir must not be empty when the scripted method is enabled")
	}
	if t.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("thief.script_instruction_limit must be >= 0, got %d", t.ScriptInstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with HEROFORGE_ prefix
	v.SetEnvPrefix("HEROFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// Default returns the validated default configuration without reading a file.
// Environment overrides still apply.
func Default() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HEROFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("content.roster", "")
	v.SetDefault("content.scripts_dir", "")

	v.SetDefault("thief.methods", []string{MethodHitAndRun, MethodSubtle})
	v.SetDefault("thief.targets", []string{})
	v.SetDefault("thief.seed", 0)
	v.SetDefault("thief.script_instruction_limit", 0)
}
