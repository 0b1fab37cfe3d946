package stealing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/heroforge/internal/dice"
	"github.com/cory-johannsen/heroforge/internal/report"
)

// HitAndRunMethod grabs the handbag of an old goblin woman and runs.
type HitAndRunMethod struct {
	reporter report.Reporter
}

// NewHitAndRunMethod returns a HitAndRunMethod reporting to r (nil discards).
func NewHitAndRunMethod(r report.Reporter) *HitAndRunMethod {
	return &HitAndRunMethod{reporter: report.OrDiscard(r)}
}

func (m *HitAndRunMethod) Name() string { return "hit_and_run" }

func (m *HitAndRunMethod) PickTarget() (string, error) {
	return "old goblin woman", nil
}

func (m *HitAndRunMethod) ConfuseTarget(target string) error {
	report.Reportf(m.reporter, "Approach the %s from behind.", target)
	return nil
}

func (m *HitAndRunMethod) StealTheItem(string) error {
	m.reporter.Report("Grab the handbag and run away fast!")
	return nil
}

func (m *HitAndRunMethod) GiveBack(target string) error {
	report.Reportf(m.reporter, "Drop the handbag near the %s and walk off.", target)
	return nil
}

// SubtleMethod empties the shop keeper's wallet during a tearful hug.
type SubtleMethod struct {
	reporter report.Reporter
}

// NewSubtleMethod returns a SubtleMethod reporting to r (nil discards).
func NewSubtleMethod(r report.Reporter) *SubtleMethod {
	return &SubtleMethod{reporter: report.OrDiscard(r)}
}

func (m *SubtleMethod) Name() string { return "subtle" }

func (m *SubtleMethod) PickTarget() (string, error) {
	return "shop keeper", nil
}

func (m *SubtleMethod) ConfuseTarget(target string) error {
	report.Reportf(m.reporter, "Approach the %s with tears running and hug him!", target)
	return nil
}

func (m *SubtleMethod) StealTheItem(target string) error {
	report.Reportf(m.reporter, "While in close contact grab the %s's wallet.", target)
	return nil
}

func (m *SubtleMethod) GiveBack(target string) error {
	report.Reportf(m.reporter, "Slip the wallet back into the %s's pocket.", target)
	return nil
}

// ErrNoTargets is returned by NewRandomMethod for an empty or blank target pool.
var ErrNoTargets = errors.New("stealing: target pool must hold non-empty names")

// RandomMethod picks its target from a pool and then works like HitAndRunMethod.
type RandomMethod struct {
	HitAndRunMethod
	targets []string
	src     dice.Source
}

// NewRandomMethod returns a RandomMethod choosing uniformly from targets with src.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a RandomMethod owning a copy of targets, or an error
// wrapping ErrNoTargets.
func NewRandomMethod(targets []string, src dice.Source, r report.Reporter) (*RandomMethod, error) {
	if src == nil {
		panic("stealing.NewRandomMethod: precondition violated: src must be non-nil")
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	for i, t := range targets {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrNoTargets, i)
		}
	}
	pool := make([]string, len(targets))
	copy(pool, targets)
	return &RandomMethod{
		HitAndRunMethod: HitAndRunMethod{reporter: report.OrDiscard(r)},
		targets:         pool,
		src:             src,
	}, nil
}

func (m *RandomMethod) Name() string { return "random" }

func (m *RandomMethod) PickTarget() (string, error) {
	return dice.Pick(m.src, m.targets), nil
}
