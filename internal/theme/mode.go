package theme

import "fmt"

// Mode is the user's appearance preference. It records intent, not the
// resolved appearance: ModeSystem defers to the terminal's reported scheme.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// ParseMode validates a stored or user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeDark, ModeSystem:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid theme mode: %q", s)
}

// Valid reports whether m is one of the three mode literals.
func (m Mode) Valid() bool {
	_, err := ParseMode(string(m))
	return err == nil
}

func (m Mode) String() string { return string(m) }
