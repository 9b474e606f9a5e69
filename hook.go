package calloutmath

import "reflect"

// Hook installs the host's math widget factory the first time a widget
// construction offers one. Hosts call Offer from their widget construction
// path; once a factory is installed, further offers are no-ops.
type Hook struct {
	installed   bool
	factory     MathWidgetFactory
	onInstalled func(MathWidgetFactory)
}

// NewHook creates a Hook. onInstalled runs exactly once, when the first
// factory is installed; it is where dependent registration belongs.
func NewHook(onInstalled func(MathWidgetFactory)) *Hook {
	return &Hook{onInstalled: onInstalled}
}

// Offer inspects the value a widget was constructed from and installs it
// when it can build math widgets. It reports whether a factory is
// installed after the call.
func (h *Hook) Offer(candidate any) bool {
	if h.installed {
		return true
	}
	factory, ok := candidate.(MathWidgetFactory)
	if !ok || isNil(factory) {
		return false
	}

	h.installed = true
	h.factory = factory
	if h.onInstalled != nil {
		h.onInstalled(factory)
	}
	return true
}

// Installed reports whether a factory has been installed.
func (h *Hook) Installed() bool {
	return h.installed
}

// Factory returns the installed factory, or DefaultFactory before
// installation.
func (h *Hook) Factory() MathWidgetFactory {
	if !h.installed {
		return DefaultFactory
	}
	return h.factory
}

// Ready is called once the host layout is ready. It logs a setup notice
// when nothing has been installed yet and settings ask for it.
func (h *Hook) Ready(settings *Settings) bool {
	if settings == nil {
		settings = DefaultSettings()
	}
	if !h.installed && settings.ShowSetupNotice {
		Logger.Printf("math widget factory not installed yet; render some math outside callouts in Live Preview first")
	}
	return h.installed
}

// isNil catches typed nils, such as a nil pointer or FactoryFunc wrapped
// in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
