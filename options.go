package calloutmath

// RenderOptions holds the view state and configuration of one decoration
// pass.
type RenderOptions struct {
	Settings    *Settings
	Classes     *Classes
	Selection   []Range
	Focus       bool
	Visible     []Range
	LivePreview bool
	Borders     bool
	Factory     MathWidgetFactory
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithSettings sets the settings flags.
func WithSettings(settings *Settings) Option {
	return func(opts *RenderOptions) {
		opts.Settings = settings
	}
}

// WithClasses sets the class names put on marks and lines.
func WithClasses(classes *Classes) Option {
	return func(opts *RenderOptions) {
		opts.Classes = classes
	}
}

// WithSelection sets the selection and cursor ranges.
func WithSelection(ranges ...Range) Option {
	return func(opts *RenderOptions) {
		opts.Selection = append(opts.Selection[:0:0], ranges...)
	}
}

// WithFocus sets whether the view has focus. Without focus the selection
// is ignored.
func WithFocus(focus bool) Option {
	return func(opts *RenderOptions) {
		opts.Focus = focus
	}
}

// WithVisible restricts decorations to the given viewport ranges.
func WithVisible(ranges ...Range) Option {
	return func(opts *RenderOptions) {
		opts.Visible = append(opts.Visible[:0:0], ranges...)
	}
}

// WithLivePreview sets whether the view renders Live Preview. Source mode
// gets no decorations.
func WithLivePreview(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.LivePreview = enable
	}
}

// WithBorders adds blockquote border decorations to the result.
func WithBorders(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Borders = enable
	}
}

// WithFactory sets the math widget factory.
func WithFactory(factory MathWidgetFactory) Option {
	return func(opts *RenderOptions) {
		opts.Factory = factory
	}
}

// defaultRenderOptions returns the default options: a focused Live Preview
// view with nothing selected.
func defaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Settings:    DefaultSettings(),
		Classes:     DefaultClasses(),
		Focus:       true,
		LivePreview: true,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
