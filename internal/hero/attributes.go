package hero

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profession is the mandatory hero category.
//
// The zero value is not a profession; NewBuilder rejects it.
type Profession uint8

const (
	Warrior Profession = iota + 1
	Thief
	Mage
	Priest
)

var professionNames = []string{"", "warrior", "thief", "mage", "priest"}

// Valid reports whether p is one of the declared professions.
func (p Profession) Valid() bool {
	return p >= Warrior && p <= Priest
}

func (p Profession) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Profession(%d)", uint8(p))
	}
	return professionNames[p]
}

// ParseProfession resolves a display name ("mage") or constant name ("MAGE").
//
// Postcondition: Returns a valid Profession, or an error wrapping ErrInvalidArgument.
func ParseProfession(s string) (Profession, error) {
	i, ok := lookup(professionNames, s)
	if !ok || i == 0 {
		return 0, fmt.Errorf("%w: unknown profession %q", ErrInvalidArgument, s)
	}
	return Profession(i), nil
}

// UnmarshalYAML decodes a profession from its name.
func (p *Profession) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value, "profession")
	if err != nil {
		return err
	}
	v, err := ParseProfession(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// HairColor is an optional hero attribute. The zero value is NoHairColor.
type HairColor uint8

const (
	NoHairColor HairColor = iota
	White
	Blond
	Red
	Brown
	Black
)

var hairColorNames = []string{"none", "white", "blond", "red", "brown", "black"}

func (c HairColor) String() string {
	return name(hairColorNames, int(c), "HairColor")
}

// ParseHairColor resolves a display name or constant name; "" and "none" yield NoHairColor.
func ParseHairColor(s string) (HairColor, error) {
	i, err := parseOptional(hairColorNames, s, "hair color")
	return HairColor(i), err
}

// UnmarshalYAML decodes a hair color from its name.
func (c *HairColor) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value, "hair color")
	if err != nil {
		return err
	}
	v, err := ParseHairColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// HairType is an optional hero attribute. The zero value is NoHairType.
type HairType uint8

const (
	NoHairType HairType = iota
	Bald
	Short
	Curly
	LongStraight
	LongCurly
)

var hairTypeNames = []string{"none", "bald", "short", "curly", "long straight", "long curly"}

func (t HairType) String() string {
	return name(hairTypeNames, int(t), "HairType")
}

// ParseHairType resolves a display name ("long curly") or constant name ("LONG_CURLY").
func ParseHairType(s string) (HairType, error) {
	i, err := parseOptional(hairTypeNames, s, "hair type")
	return HairType(i), err
}

// UnmarshalYAML decodes a hair type from its name.
func (t *HairType) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value, "hair type")
	if err != nil {
		return err
	}
	v, err := ParseHairType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Armor is an optional hero attribute. The zero value is NoArmor.
type Armor uint8

const (
	NoArmor Armor = iota
	Clothes
	Leather
	ChainMail
	PlateMail
)

var armorNames = []string{"none", "clothes", "leather", "chain mail", "plate mail"}

func (a Armor) String() string {
	return name(armorNames, int(a), "Armor")
}

// ParseArmor resolves a display name ("chain mail") or constant name ("CHAIN_MAIL").
func ParseArmor(s string) (Armor, error) {
	i, err := parseOptional(armorNames, s, "armor")
	return Armor(i), err
}

// UnmarshalYAML decodes armor from its name.
func (a *Armor) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value, "armor")
	if err != nil {
		return err
	}
	v, err := ParseArmor(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Weapon is an optional hero attribute. The zero value is NoWeapon.
type Weapon uint8

const (
	NoWeapon Weapon = iota
	Dagger
	Sword
	Axe
	Warhammer
	Bow
)

var weaponNames = []string{"none", "dagger", "sword", "axe", "warhammer", "bow"}

func (w Weapon) String() string {
	return name(weaponNames, int(w), "Weapon")
}

// ParseWeapon resolves a display name or constant name.
func ParseWeapon(s string) (Weapon, error) {
	i, err := parseOptional(weaponNames, s, "weapon")
	return Weapon(i), err
}

// UnmarshalYAML decodes a weapon from its name.
func (w *Weapon) UnmarshalYAML(value *yaml.Node) error {
	s, err := scalar(value, "weapon")
	if err != nil {
		return err
	}
	v, err := ParseWeapon(s)
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// scalar returns the text of a scalar node. Sequences and mappings are rejected
// so that a malformed attribute never decodes to its none value.
func scalar(value *yaml.Node, kind string) (string, error) {
	if value.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: %s must be a scalar name (line %d)", ErrInvalidArgument, kind, value.Line)
	}
	return value.Value, nil
}

func name(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

func parseOptional(names []string, s, kind string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	i, ok := lookup(names, s)
	if !ok {
		return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidArgument, kind, s)
	}
	return i, nil
}

// lookup matches s against names, ignoring case and treating '_' as a space.
func lookup(names []string, s string) (int, bool) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
	for i, n := range names {
		if n != "" && n == norm {
			return i, true
		}
	}
	return 0, false
}
