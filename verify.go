package humps

import (
	"context"
	"fmt"
)

// VerifyOption holds options for the verify command.
type VerifyOption struct {
	Input  string
	Format string
}

// Verify checks that every key of the input document survives a
// snake_case -> camelCase -> snake_case round trip. Values under
// preserve_keys are not checked.
func (app *App) Verify(ctx context.Context, opt VerifyOption) error {
	doc, err := app.load(ctx, opt.Input, opt.Format)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var errs []string
	for _, key := range doc.ConvertibleKeys(app.config.options()) {
		if seen[key] {
			continue
		}
		seen[key] = true
		if msg := app.checkRoundTrip(key); msg != "" {
			errs = append(errs, msg)
		}
	}
	fmt.Fprintf(app.stdout, "OK: parsed %d unique keys\n", len(seen))

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(app.stdout, "NG: %s\n", e)
		}
		return fmt.Errorf("verification failed with %d error(s)", len(errs))
	}

	fmt.Fprintln(app.stdout, "OK: all keys round-trip")
	fmt.Fprintln(app.stdout, "Verify OK")
	return nil
}

// checkRoundTrip returns a description of the failure, or "" if key
// round-trips.
func (app *App) checkRoundTrip(key string) string {
	snake := app.caser.Decamelize(key, nil)
	camel := app.caser.CamelizeWithInitialism(snake)
	back := app.caser.Decamelize(camel, nil)
	if back == snake {
		return ""
	}
	return fmt.Sprintf("key %q does not round-trip: %q -> %q -> %q", key, snake, camel, back)
}
