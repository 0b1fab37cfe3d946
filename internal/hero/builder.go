package hero

import (
	"fmt"
	"strings"
)

// Builder stages hero attributes across successive calls.
//
// Profession and name are fixed at construction. A Builder is owned by a single
// goroutine; it is not safe for concurrent use.
type Builder struct {
	staged Hero
}

// NewBuilder creates a Builder for a hero with the given mandatory attributes.
// All optional attributes start at their None value.
//
// Precondition: profession must be a declared Profession; name must contain a non-space character.
// Postcondition: Returns a non-nil Builder, or an error wrapping ErrInvalidArgument.
func NewBuilder(profession Profession, name string) (*Builder, error) {
	if !profession.Valid() {
		return nil, fmt.Errorf("%w: profession must be set, got %s", ErrInvalidArgument, profession)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: hero name must not be empty", ErrInvalidArgument)
	}
	return &Builder{staged: Hero{profession: profession, name: name}}, nil
}

// WithHairColor stages c, replacing any previous hair color.
func (b *Builder) WithHairColor(c HairColor) *Builder {
	b.staged.hairColor = c
	return b
}

// WithHairType stages t, replacing any previous hair type.
func (b *Builder) WithHairType(t HairType) *Builder {
	b.staged.hairType = t
	return b
}

// WithArmor stages a, replacing any previous armor.
func (b *Builder) WithArmor(a Armor) *Builder {
	b.staged.armor = a
	return b
}

// WithWeapon stages w, replacing any previous weapon.
func (b *Builder) WithWeapon(w Weapon) *Builder {
	b.staged.weapon = w
	return b
}

// Build returns a snapshot of the staged attributes.
//
// Postcondition: The Builder remains usable; later setter calls do not affect
// heroes already returned.
func (b *Builder) Build() Hero {
	return b.staged
}

// Options carries the optional attributes for New. Zero fields mean None.
type Options struct {
	HairColor HairColor
	HairType  HairType
	Armor     Armor
	Weapon    Weapon
}

// New builds a hero in one call from its mandatory attributes and opts.
//
// Postcondition: Returns the same Hero that NewBuilder plus the four With calls would,
// or an error wrapping ErrInvalidArgument.
func New(profession Profession, name string, opts Options) (Hero, error) {
	b, err := NewBuilder(profession, name)
	if err != nil {
		return Hero{}, err
	}
	return b.WithHairColor(opts.HairColor).
		WithHairType(opts.HairType).
		WithArmor(opts.Armor).
		WithWeapon(opts.Weapon).
		Build(), nil
}
