package hero

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Declaration is one roster entry as written in YAML.
type Declaration struct {
	Profession Profession `yaml:"profession"`
	Name       string     `yaml:"name"`
	HairColor  HairColor  `yaml:"hair_color"`
	HairType   HairType   `yaml:"hair_type"`
	Armor      Armor      `yaml:"armor"`
	Weapon     Weapon     `yaml:"weapon"`
}

// Build runs the declaration through New.
func (d Declaration) Build() (Hero, error) {
	return New(d.Profession, d.Name, Options{
		HairColor: d.HairColor,
		HairType:  d.HairType,
		Armor:     d.Armor,
		Weapon:    d.Weapon,
	})
}

type rosterFile struct {
	Heroes []Declaration `yaml:"heroes"`
}

// ParseRoster decodes a roster document and builds every hero it declares, in order.
// Unknown keys are rejected.
//
// Postcondition: Returns all heroes (may be empty) or a non-nil error naming the
// first invalid entry.
func ParseRoster(data []byte) ([]Hero, error) {
	var rf rosterFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	heroes := make([]Hero, 0, len(rf.Heroes))
	for i, d := range rf.Heroes {
		h, err := d.Build()
		if err != nil {
			return nil, fmt.Errorf("roster entry %d (%q): %w", i, d.Name, err)
		}
		heroes = append(heroes, h)
	}
	return heroes, nil
}

// LoadRoster reads and builds the roster file at path.
//
// Precondition: path must name a readable YAML file.
func LoadRoster(path string) ([]Hero, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	heroes, err := ParseRoster(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return heroes, nil
}

// LoadRosters reads every .yaml/.yml file in dir in lexicographic order and
// concatenates their heroes.
//
// Precondition: dir must be a readable directory path.
func LoadRosters(dir string) ([]Hero, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)

	var heroes []Hero
	for _, path := range paths {
		hs, err := LoadRoster(path)
		if err != nil {
			return nil, err
		}
		heroes = append(heroes, hs...)
	}
	return heroes, nil
}
