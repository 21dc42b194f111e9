package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blimu-dev/jscodegen/pkg/generator"
	"github.com/blimu-dev/jscodegen/pkg/render"
)

// NewLogger returns the text logger used by the commands
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeYAML(w io.Writer, results []generator.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range results {
		if err := enc.Encode(r.Tree); err != nil {
			return fmt.Errorf("encoding client %s: %w", r.Client, err)
		}
	}
	return enc.Close()
}

func writeRendered(w io.Writer, results []generator.Result, templatePath string) error {
	for _, r := range results {
		var err error
		if templatePath == "" {
			err = render.Summary(w, r.Tree)
		} else {
			err = render.File(w, templatePath, r.Tree)
		}
		if err != nil {
			return fmt.Errorf("rendering client %s: %w", r.Client, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// utility
func absPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if u, err := url.Parse(p); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}
