package humps

import (
	"context"
	"fmt"
)

// ConvertOption holds options for the convert command.
type ConvertOption struct {
	Words     []string
	To        string
	Plain     bool
	Separator string
}

// Convert prints each word converted to the target style.
func (app *App) Convert(opt ConvertOption) error {
	style, err := app.style(opt.To)
	if err != nil {
		return err
	}
	caser := app.caser
	if opt.Plain {
		caser = NewCaser(nil)
	}
	opts := app.config.options()
	if opt.Separator != "" {
		opts.Separator = opt.Separator
	}
	conv := caser.Converter(style)
	for _, w := range opt.Words {
		fmt.Fprintln(app.stdout, conv.Convert(w, opts))
	}
	return nil
}

// KeysOption holds options for the keys command.
type KeysOption struct {
	Input  string
	Format string
	To     string
	Output string
}

// Keys rewrites every key of the input document and prints the result.
func (app *App) Keys(ctx context.Context, opt KeysOption) error {
	conv, err := app.converter(opt.To)
	if err != nil {
		return err
	}
	doc, err := app.load(ctx, opt.Input, opt.Format)
	if err != nil {
		return err
	}
	b, err := doc.ConvertKeys(conv, app.config.options()).Marshal()
	if err != nil {
		return err
	}
	return app.writeOutput(opt.Output, b)
}
