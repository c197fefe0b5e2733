package submission

import (
	"context"
	"time"

	apperr "github.com/honeycarbs/jobshop/internal/errors"
	"github.com/honeycarbs/jobshop/pkg/logging"
)

// Desk accepts form submissions. Accepted forms are acknowledged and
// logged but never stored or forwarded.
type Desk interface {
	Submit(ctx context.Context, form Form) (Receipt, error)
}

type desk struct {
	validator *Validator
	logger    *logging.Logger
	now       func() time.Time
}

var _ Desk = (*desk)(nil)

type Option func(*desk)

func WithLogger(logger *logging.Logger) Option {
	return func(d *desk) {
		d.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *desk) {
		d.now = now
	}
}

func NewDesk(v *Validator, opts ...Option) Desk {
	d := &desk{
		validator: v,
		logger:    logging.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit validates form and, when it passes, runs a fresh flow for it
func (d *desk) Submit(ctx context.Context, form Form) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	if err := d.validator.Clean(form); err != nil {
		d.logger.Debug("Form rejected", "form", form.Kind(), "err", err)
		return Receipt{}, apperr.InvalidInput("invalid "+string(form.Kind())+" form", err)
	}

	receipt, err := NewFlow(form.Kind()).Submit(d.now())
	if err != nil {
		return Receipt{}, err
	}

	d.logger.Info("Form submitted", "form", receipt.Form, "reference", receipt.Reference)

	return receipt, nil
}
