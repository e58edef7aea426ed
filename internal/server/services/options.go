package services

import (
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/logging"
)

// Option tunes a service at construction.
type Option func(*options)

type options struct {
	logger logging.Logger
	now    func() time.Time
}

// WithLogger sets the service logger. A nil logger discards output.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock replaces time.Now for timestamps and storage keys. Readings are
// converted to UTC.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func newOptions(module string, opts []Option) options {
	o := options{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	o.logger = logging.OrDiscard(o.logger).With("module", module)
	clock := o.now
	if clock == nil {
		clock = time.Now
	}
	o.now = func() time.Time { return clock().UTC() }
	return o
}
