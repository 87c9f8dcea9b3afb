package humps

import (
	"context"
	"fmt"
	"io"
	"os"

	goconfig "github.com/kayac/go-config"
	"github.com/mattn/go-isatty"
)

// inputPath resolves the document to read: flag first, then config. An
// empty result or "-" means stdin.
func (app *App) inputPath(input string) string {
	if input == "" {
		return app.config.Input
	}
	return input
}

// render reads the input document and expands its template directives.
func (app *App) render(ctx context.Context, input string) (rendered []byte, err error) {
	loader := goconfig.New()
	if err := setupPlugins(ctx, app.config, loader); err != nil {
		return nil, err
	}

	// go-config panics on must_env with undefined variables.
	defer func() {
		if r := recover(); r != nil {
			rendered = nil
			err = fmt.Errorf("%v", r)
		}
	}()

	if input == "" || input == "-" {
		raw, err := app.readStdin()
		if err != nil {
			return nil, err
		}
		app.logVerbose("rendering %d bytes from stdin", len(raw))
		rendered, err = loader.ReadWithEnvBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to render stdin: %w", err)
		}
		return rendered, nil
	}

	app.logVerbose("rendering %s", input)
	rendered, err = loader.ReadWithEnv(input)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", input, err)
	}
	return rendered, nil
}

func (app *App) readStdin() ([]byte, error) {
	if f, ok := app.stdin.(*os.File); ok {
		if fd := f.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return nil, usageError("pass --input PATH or pipe a document", "no input")
		}
	}
	b, err := io.ReadAll(app.stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return b, nil
}

// load renders and parses the input document.
func (app *App) load(ctx context.Context, input, format string) (*Document, error) {
	input = app.inputPath(input)
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == "" {
		f = DetectFormat(input)
	}
	b, err := app.render(ctx, input)
	if err != nil {
		return nil, err
	}
	return ParseDocument(b, f)
}
