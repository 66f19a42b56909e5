// Package options holds the functional-option contract shared by the dropbox Transport and the oauth helpers.
package options

// NewClientOption interface contains functions that should be implemented by any option that configures a T
// (a *dropbox.Transport or an oauth configuration) at construction time.
// Example:
// ```
//
//	type userAgentOpt struct{ agent string }
//	func (o *userAgentOpt) Apply(t *dropbox.Transport) {
//		...
//	}
//	func (o *userAgentOpt) NewClientOptionName() string {
//		return "userAgent"
//	}
//
// ```
type NewClientOption[T any] interface {
	Apply(*T)
	NewClientOptionName() string
}

// ApplyOptions applies each non-nil option to target, in order.  Later options win.
func ApplyOptions[T any](target *T, opts ...NewClientOption[T]) {
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.Apply(target)
	}
}

// Names returns the option names in the order given.
func Names[T any](opts ...NewClientOption[T]) []string {
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		if o == nil {
			continue
		}
		names = append(names, o.NewClientOptionName())
	}
	return names
}
