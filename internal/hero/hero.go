// Package hero defines the Hero model and the builder that assembles it.
package hero

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Hero is an immutable snapshot produced by Builder.Build.
//
// Hero is comparable: two snapshots with the same attributes are == equal.
type Hero struct {
	profession Profession
	name       string
	hairColor  HairColor
	hairType   HairType
	armor      Armor
	weapon     Weapon
}

func (h Hero) Profession() Profession { return h.profession }
func (h Hero) Name() string           { return h.name }
func (h Hero) HairColor() HairColor   { return h.hairColor }
func (h Hero) HairType() HairType     { return h.hairType }
func (h Hero) Armor() Armor           { return h.armor }
func (h Hero) Weapon() Weapon         { return h.weapon }

// String describes the hero in a single sentence, e.g.
//
//	"This is a thief named Desmond with bald head and wielding a bow."
func (h Hero) String() string {
	var sb strings.Builder
	sb.WriteString("This is a ")
	sb.WriteString(h.profession.String())
	sb.WriteString(" named ")
	sb.WriteString(h.name)
	if h.hairColor != NoHairColor || h.hairType != NoHairType {
		sb.WriteString(" with ")
		if h.hairColor != NoHairColor {
			sb.WriteString(h.hairColor.String())
			sb.WriteByte(' ')
		}
		if h.hairType != NoHairType {
			sb.WriteString(h.hairType.String())
			sb.WriteByte(' ')
		}
		if h.hairType == Bald {
			sb.WriteString("head")
		} else {
			sb.WriteString("hair")
		}
	}
	if h.armor != NoArmor {
		sb.WriteString(" wearing ")
		sb.WriteString(h.armor.String())
	}
	if h.weapon != NoWeapon {
		sb.WriteString(" and wielding a ")
		sb.WriteString(h.weapon.String())
	}
	sb.WriteByte('.')
	return sb.String()
}
