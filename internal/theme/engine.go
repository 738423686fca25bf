package theme

// Holds the active palette of a single visitor and advances it. The
// engine belongs to the event loop that drives its UI, it is not safe
// for concurrent use. Create one per session.
type Engine struct {
	palettes []Palette
	index    int

	subscribers []*subscriber
}

type subscriber struct {
	notify func(Palette)
}

// Creates an engine over a fixed, non-empty palette set. The first
// palette is active initially.
func NewEngine(palettes ...Palette) (*Engine, error) {
	if len(palettes) == 0 {
		return nil, &ConfigError{Reason: "at least one palette is required"}
	}

	seen := make(map[string]struct{}, len(palettes))
	for _, palette := range palettes {
		if palette.colors == nil {
			return nil, &ConfigError{Palette: palette.Name, Reason: "palette was not constructed with NewPalette"}
		}
		if _, ok := seen[palette.Name]; ok {
			return nil, &ConfigError{Palette: palette.Name, Reason: "duplicate palette name"}
		}
		seen[palette.Name] = struct{}{}
	}

	owned := make([]Palette, len(palettes))
	copy(owned, palettes)

	return &Engine{palettes: owned}, nil
}

// Returns the active palette.
func (e *Engine) Current() Palette {
	return e.palettes[e.index]
}

func (e *Engine) Index() int {
	return e.index
}

func (e *Engine) Len() int {
	return len(e.palettes)
}

// Returns the palettes in cycling order.
func (e *Engine) Palettes() []Palette {
	out := make([]Palette, len(e.palettes))
	copy(out, e.palettes)
	return out
}

// Advances to the next palette, wrapping around after the last one, and
// notifies every subscriber with the new palette.
func (e *Engine) Cycle() {
	e.index = (e.index + 1) % len(e.palettes)

	current := e.Current()
	for _, s := range e.subscribers {
		s.notify(current)
	}
}

// Registers a callback that runs after every cycle. The returned func
// removes the callback again, calling it more than once is fine.
func (e *Engine) Subscribe(notify func(Palette)) (unsubscribe func()) {
	s := &subscriber{notify: notify}
	e.subscribers = append(e.subscribers, s)

	return func() {
		for i, candidate := range e.subscribers {
			if candidate == s {
				e.subscribers = append(e.subscribers[:i], e.subscribers[i+1:]...)
				return
			}
		}
	}
}
