package types

// MathSource is the text of a math region together with whether quote
// markers have already been stripped from it.
//
// A source is created Raw and becomes Corrected exactly once; correcting a
// Corrected source again is a no-op.
type MathSource struct {
	Text      string `json:"text" yaml:"text"`
	Corrected bool   `json:"corrected,omitempty" yaml:"corrected,omitempty"`
}

// RawMath wraps math text read straight from the document.
func RawMath(text string) MathSource {
	return MathSource{Text: text}
}

// CorrectedMath wraps math text that no longer carries quote markers.
func CorrectedMath(text string) MathSource {
	return MathSource{Text: text, Corrected: true}
}

// WithText returns a source with the same correction state and new text.
func (s MathSource) WithText(text string) MathSource {
	s.Text = text
	return s
}

// Settings holds the boundary flags of the callout math renderer.
type Settings struct {
	// Callout enables rendering math widgets inside callouts.
	Callout bool `json:"callout" yaml:"callout" mapstructure:"callout"`
	// MultiLine enables stripping quote markers from multi-line math.
	MultiLine bool `json:"multi_line" yaml:"multi_line" mapstructure:"multi_line"`
	// ShowSetupNotice logs a notice when no widget factory was installed.
	ShowSetupNotice bool `json:"show_setup_notice" yaml:"show_setup_notice" mapstructure:"show_setup_notice"`
}

// DefaultSettings returns the default settings: everything enabled.
func DefaultSettings() *Settings {
	return &Settings{
		Callout:         true,
		MultiLine:       true,
		ShowSetupNotice: true,
	}
}

// Classes names the style classes attached to mark and line decorations.
type Classes struct {
	QuoteLine   string `json:"quote_line" yaml:"quote_line" mapstructure:"quote_line"`
	Formatting  string `json:"formatting" yaml:"formatting" mapstructure:"formatting"`
	Transparent string `json:"transparent" yaml:"transparent" mapstructure:"transparent"`
	Border      string `json:"border" yaml:"border" mapstructure:"border"`
	CancelMath  string `json:"cancel_math" yaml:"cancel_math" mapstructure:"cancel_math"`
}

// DefaultClasses returns the class names used by Obsidian's Live Preview.
func DefaultClasses() *Classes {
	return &Classes{
		QuoteLine:   "HyperMD-quote",
		Formatting:  "cm-quote cm-formatting-quote",
		Transparent: "cm-transparent",
		Border:      "cm-blockquote-border cm-transparent",
		CancelMath:  "cancel-cm-math",
	}
}
