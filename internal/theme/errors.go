package theme

import "fmt"

// Returned when a palette or a palette set is malformed. These are only
// ever produced during startup, a running engine cannot fail.
type ConfigError struct {
	Palette string
	Token   Token
	Reason  string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Palette != "" && e.Token != "":
		return fmt.Sprintf("theme config: palette %q: token %q: %s", e.Palette, e.Token, e.Reason)
	case e.Palette != "":
		return fmt.Sprintf("theme config: palette %q: %s", e.Palette, e.Reason)
	default:
		return fmt.Sprintf("theme config: %s", e.Reason)
	}
}
