package sizetug

import (
	"context"

	"github.com/rivo/tview"

	"github.com/filetug/sizetug/pkg/sizetug/stapp"
)

// SetupApp makes a new Window the root of app.
func SetupApp(ctx context.Context, app *tview.Application, session *Session, options ...WindowOption) *Window {
	return setupWindow(ctx, stapp.NewApp(app), session, options...)
}

func setupWindow(ctx context.Context, app stapp.App, session *Session, options ...WindowOption) *Window {
	app.EnableMouse(true)
	app.EnablePaste(true)
	w := NewWindow(ctx, app, session, options...)
	app.SetRoot(w, true)
	app.SetFocus(w.initialFocus)
	return w
}
