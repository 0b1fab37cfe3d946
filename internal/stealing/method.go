// Package stealing implements a fixed four-step stealing procedure whose
// individual steps are supplied by interchangeable methods.
package stealing

import (
	"github.com/cory-johannsen/heroforge/internal/report"
)

// Method supplies the behavior of each step of a theft.
//
// Steal always calls the steps in the order PickTarget, ConfuseTarget,
// StealTheItem, GiveBack, and passes the picked target to the last three.
type Method interface {
	// PickTarget selects the target to act upon.
	PickTarget() (string, error)
	ConfuseTarget(target string) error
	StealTheItem(target string) error
	GiveBack(target string) error
}

// Steal runs the four steps of m in order.
//
// After a target is picked, Steal reports "The target has been chosen as <target>."
// to r; a nil r discards the line. The first step error is returned unchanged and
// no later step runs.
//
// Precondition: m must be non-nil.
func Steal(m Method, r report.Reporter) error {
	target, err := m.PickTarget()
	if err != nil {
		return err
	}
	report.Reportf(report.OrDiscard(r), "The target has been chosen as %s.", target)
	if err := m.ConfuseTarget(target); err != nil {
		return err
	}
	if err := m.StealTheItem(target); err != nil {
		return err
	}
	return m.GiveBack(target)
}

// Name returns a short label for m, used in logs. Methods may implement
// interface{ Name() string } to override the default "custom".
func Name(m Method) string {
	if n, ok := m.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}
