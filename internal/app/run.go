package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/tickdown/internal/countdown"
	"github.com/vk/tickdown/internal/ctxlog"
	"github.com/vk/tickdown/internal/duration"
	"github.com/vk/tickdown/internal/font"
	"github.com/vk/tickdown/internal/sound"
)

// previewText is the sample clock rendered next to each font by ListFonts.
const previewText = "12:34:56"

// Run executes the main application logic: either the font listing side
// query, or a full countdown from resolving the duration to the
// completion alert.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListFonts {
		return a.listFonts()
	}

	// Font and duration are validated before any rendering begins; a bad
	// invocation never touches the terminal state.
	fnt, err := a.fonts.Lookup(a.config.FontName)
	if err != nil {
		return err
	}

	target, err := duration.Resolve(a.config.Duration, time.Now())
	if err != nil {
		return err
	}
	a.logger.Debug("Target instant resolved.", "target", target)

	result, err := countdown.Run(ctx, countdown.Options{
		Target:  target,
		Message: a.config.Message,
		Font:    fnt,
		Bell:    a.config.Bell,
	})
	if err != nil {
		return err
	}

	if result.Interrupted {
		fmt.Fprintln(a.outW, "Quitting...")
		return nil
	}

	return a.finish(fnt)
}

// finish prints the final frame and completion indicator to the normal
// screen and fires the configured alerts.
func (a *App) finish(fnt *font.Font) error {
	fmt.Fprintln(a.outW, fnt.Render(countdown.FormatClock(0)))
	if a.config.Message != "" {
		fmt.Fprintln(a.outW, a.config.Message)
	}
	fmt.Fprintln(a.outW, "Time's up!")

	if a.config.Bell {
		fmt.Fprint(a.outW, "\a")
	}
	if a.config.SoundPath != "" {
		if err := sound.Play(a.config.SoundPath); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// listFonts prints every registered font with a sample clock face. It is a
// side query: no countdown is started.
func (a *App) listFonts() error {
	for _, name := range a.fonts.Names() {
		fnt, err := a.fonts.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "%s\n%s\n\n", name, fnt.Render(previewText))
	}
	return nil
}
