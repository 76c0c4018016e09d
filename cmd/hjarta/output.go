package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// yamlKey matches the key of a block mapping entry, optionally behind a sequence dash.
var yamlKey = regexp2.MustCompile(`^([ \t]*(?:- )*)([^\s#'"\-][^:\n]*?)(?=:(?: |$))`, regexp2.Multiline)

type printer struct {
	out     io.Writer
	key     *color.Color
	added   *color.Color
	removed *color.Color
	colored bool
}

// newPrinter colors output only when out is a terminal.
func newPrinter(out io.Writer, noColor bool) *printer {
	p := &printer{
		out:     out,
		key:     color.New(color.FgCyan),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		colored: !noColor && isTerminal(out),
	}

	for _, c := range []*color.Color{p.key, p.added, p.removed} {
		if p.colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd())
}

func (p *printer) yaml(data []byte) error {
	text := string(data)

	if p.colored {
		var err error

		text, err = p.colorKeys(text)
		if err != nil {
			return err
		}
	}

	_, err := io.WriteString(p.out, text)

	return err
}

func (p *printer) colorKeys(text string) (string, error) {
	colored, err := yamlKey.ReplaceFunc(text, func(m regexp2.Match) string {
		return m.GroupByNumber(1).String() + p.key.Sprint(m.GroupByNumber(2).String())
	}, -1, -1)
	if err != nil {
		return "", fmt.Errorf("color keys: %w", err)
	}

	return colored, nil
}

// diff writes a line diff of from and to, prefixing removed lines with "-", added
// lines with "+" and unchanged lines with a space.
func (p *printer) diff(from, to string) error {
	dmp := diffpatch.New()

	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			var err error

			switch d.Type {
			case diffpatch.DiffInsert:
				_, err = p.added.Fprint(p.out, "+"+line)
			case diffpatch.DiffDelete:
				_, err = p.removed.Fprint(p.out, "-"+line)
			case diffpatch.DiffEqual:
				_, err = io.WriteString(p.out, " "+line)
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}
