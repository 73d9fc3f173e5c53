package filters

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-audio-filters/internal/filter"
)

// Window selects the taper applied to a windowed-sinc FIR design.
type Window int

const (
	// WindowHann is the raised cosine window (default).
	WindowHann Window = iota

	// WindowHamming is the Hamming window (0.54, 0.46).
	WindowHamming

	// WindowBlackman is the three-term Blackman window.
	WindowBlackman

	// WindowBoxcar applies no taper.
	WindowBoxcar
)

var windowNames = map[Window]string{
	WindowHann:     "hann",
	WindowHamming:  "hamming",
	WindowBlackman: "blackman",
	WindowBoxcar:   "boxcar",
}

// String returns the conventional name of the window.
func (w Window) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Window(%d)", int(w))
}

// ParseWindow returns the Window with the given name. Matching is case
// insensitive; "hanning" and "rectangular" are accepted as aliases.
func ParseWindow(name string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hann", "hanning":
		return WindowHann, nil
	case "hamming":
		return WindowHamming, nil
	case "blackman":
		return WindowBlackman, nil
	case "boxcar", "rectangular":
		return WindowBoxcar, nil
	default:
		return 0, fmt.Errorf("%w: unknown window %q", ErrInvalidRange, name)
	}
}

// coefficients returns the symmetric window of the given length.
func (w Window) coefficients(length int) ([]float64, error) {
	switch w {
	case WindowHann:
		return filter.Hann(length), nil
	case WindowHamming:
		return filter.Hamming(length), nil
	case WindowBlackman:
		return filter.Blackman(length), nil
	case WindowBoxcar:
		return filter.Boxcar(length), nil
	default:
		return nil, fmt.Errorf("%w: unknown window %v", ErrInvalidRange, w)
	}
}
