package sortedstring

import (
	"github.com/hashicorp/go-hclog"
)

// getOpts - iterate the inbound Options and return a struct
func getOpts(opt ...Option) options {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			o(&opts)
		}
	}
	return opts
}

// Option - how Options are passed as arguments
type Option func(*options)

type options struct {
	withMultipleWords bool
	withLogger        hclog.Logger
}

func getDefaultOptions() options {
	return options{
		withLogger: hclog.NewNullLogger(),
	}
}

// WithMultipleWords makes validation fail with ErrDelimiterNotFound when the
// text contains no delimiter. Without it, such text is a list of one word.
func WithMultipleWords() Option {
	return func(o *options) {
		o.withMultipleWords = true
	}
}

// WithLogger sets the logger used while validating and loading. A nil logger
// is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.withLogger = l
		}
	}
}
