// Package report renders the non-interactive screens as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/mortality/internal/config"
)

const reportWidth = 80

// ErrUnknownFormat is returned for output formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

//nolint:gochecknoglobals // Shared palette, mirrors the TUI colors.
var (
	dangerColor  = color.New(color.FgRed, color.Bold)
	birthColor   = color.New(color.FgGreen, color.Bold)
	primaryColor = color.New(color.FgBlue, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
	warningColor = color.New(color.FgYellow)
)

// write dispatches on format: structured formats encode payload, text calls render.
func write(w io.Writer, format string, payload any, render func(io.Writer) error) error {
	logrus.Debugf("Writing report as %s", format)
	switch format {
	case config.JSONOut:
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case config.YAMLOut:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
		return enc.Close()
	case config.TextOut, "":
		return render(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// textWriter accumulates the first write error so renderers can print
// line after line and check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) heading(title string) {
	t.printf("\n%s\n%s\n", title, strings.Repeat("=", reportWidth))
}

func (t *textWriter) banner(title, subtitle string) {
	t.printf("%s\n%s\n", strings.Repeat("=", reportWidth), strings.ToUpper(title))
	if subtitle != "" {
		t.printf("%s\n", mutedColor.Sprint(subtitle))
	}
	t.printf("%s\n", strings.Repeat("=", reportWidth))
}

func (t *textWriter) note(text string) {
	t.printf("\n%s\n", warningColor.Sprint(text))
}
