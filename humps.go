// Package humps converts identifiers and the keys of nested payloads between
// snake_case, camelCase and PascalCase while keeping initialisms such as ID,
// URL or IPv4 intact in both directions.
package humps

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fujiwara/tfstate-lookup/tfstate"
	goconfig "github.com/kayac/go-config"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// App runs the humps commands against a loaded config.
type App struct {
	config     *Config
	configPath string
	caser      *Caser

	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	verbose bool

	newBatchClient func(ctx context.Context, region string) (batchAPI, error)
}

// New creates a new App by loading the config file. An empty path uses the
// defaults.
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return &App{
		config:         cfg,
		configPath:     configPath,
		caser:          cfg.caser(),
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		newBatchClient: newBatchClient,
	}, nil
}

func (app *App) logVerbose(format string, args ...any) {
	if !app.verbose {
		return
	}
	fmt.Fprintf(app.stderr, "[verbose] "+format+"\n", args...)
}

// style resolves the target style: flag first, then config.
func (app *App) style(to string) (Style, error) {
	if to == "" {
		to = app.config.To
	}
	return ParseStyle(to)
}

// converter returns the key converter for the target style.
func (app *App) converter(to string) (Converter, error) {
	style, err := app.style(to)
	if err != nil {
		return nil, err
	}
	app.logVerbose("converting keys to %s with %d initialisms", style, app.caser.Initialisms().Len())
	return app.caser.Converter(style), nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func (app *App) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := app.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(app.stdout, "Created %s\n", path)
	return nil
}

// setupPlugins configures the go-config loader with tfstate FuncMaps.
func setupPlugins(ctx context.Context, cfg *Config, loader *goconfig.Loader) error {
	for _, p := range cfg.Plugins {
		if p.Name != "tfstate" {
			continue
		}
		funcMap, err := tfstate.FuncMap(ctx, p.Config.URL)
		if err != nil {
			return fmt.Errorf("failed to load tfstate from %s: %w", p.Config.URL, err)
		}
		loader.Funcs(funcMap)
	}
	return nil
}
