package deskapi

import "sync/atomic"

// Component bundles the desk API handlers, their configuration, and
// routing helpers.
type Component struct {
	opts Options

	// generating guards PDF output: one render at a time.
	generating atomic.Bool
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}
