package stealing

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/heroforge/internal/report"
)

// Thief steals with a current Method that can be swapped between runs.
type Thief struct {
	method   Method
	reporter report.Reporter
	logger   *zap.Logger
}

// NewThief creates a Thief that steals with method.
//
// Precondition: method and logger must be non-nil. A nil reporter discards lines.
func NewThief(method Method, r report.Reporter, logger *zap.Logger) *Thief {
	if method == nil {
		panic("stealing.NewThief: precondition violated: method must be non-nil")
	}
	if logger == nil {
		panic("stealing.NewThief: precondition violated: logger must be non-nil")
	}
	return &Thief{method: method, reporter: report.OrDiscard(r), logger: logger}
}

// ChangeMethod makes m the method used by the next Steal.
//
// Precondition: m must be non-nil.
func (t *Thief) ChangeMethod(m Method) {
	if m == nil {
		panic("stealing.Thief.ChangeMethod: precondition violated: method must be non-nil")
	}
	t.logger.Debug("changing stealing method",
		zap.String("from", Name(t.method)),
		zap.String("to", Name(m)),
	)
	t.method = m
}

// Method returns the current method.
func (t *Thief) Method() Method {
	return t.method
}

// Steal runs the current method once. Each run is logged with a fresh run ID.
//
// Postcondition: Returns nil, or the failing step's error unchanged.
func (t *Thief) Steal() error {
	log := t.logger.With(
		zap.String("run_id", uuid.New().String()),
		zap.String("method", Name(t.method)),
	)
	log.Debug("theft started")
	if err := Steal(t.method, t.reporter); err != nil {
		log.Warn("theft failed", zap.Error(err))
		return err
	}
	log.Info("theft completed")
	return nil
}
