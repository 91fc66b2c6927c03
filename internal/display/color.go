package display

import (
	"io"
	"os"

	"github.com/harrison/lss/internal/config"
	"github.com/mattn/go-isatty"
)

// ShouldColor resolves a color mode for out. auto enables color only for a
// terminal and only when NO_COLOR is unset.
func ShouldColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
