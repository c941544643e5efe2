// Package stapp narrows *tview.Application to the calls the UI makes so they
// can be replaced in tests.
package stapp

import (
	"github.com/rivo/tview"
)

type App interface {
	Run() error
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
	EnablePaste(bool)
}

type Focuser = func(p tview.Primitive)

type RootSetter = func(root tview.Primitive, fullscreen bool)

type AppMethod func(na *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{
		setFocus:    func(tview.Primitive) {},
		setRoot:     func(tview.Primitive, bool) {},
		enableMouse: func(bool) {},
		enablePaste: func(bool) {},
		run:         func() error { return nil },
		stop:        func() {},
	}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.enablePaste = func(b bool) {
			_ = app.EnablePaste(b)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithSetFocus(setFocus Focuser) AppMethod {
	return func(na *appProxy) {
		na.setFocus = setFocus
	}
}

func WithSetRoot(setRoot RootSetter) AppMethod {
	return func(na *appProxy) {
		na.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppMethod {
	return func(na *appProxy) {
		na.enableMouse = enableMouse
	}
}

func WithEnablePaste(enablePaste func(bool)) AppMethod {
	return func(na *appProxy) {
		na.enablePaste = enablePaste
	}
}

func WithRun(run func() error) AppMethod {
	return func(na *appProxy) {
		na.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(na *appProxy) {
		na.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	setFocus    Focuser
	setRoot     RootSetter
	enableMouse func(bool)
	enablePaste func(bool)
	run         func() error
	stop        func()
}

func (n appProxy) EnableMouse(b bool) {
	n.enableMouse(b)
}

func (n appProxy) EnablePaste(b bool) {
	n.enablePaste(b)
}

func (n appProxy) SetFocus(p tview.Primitive) {
	n.setFocus(p)
}

func (n appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	n.setRoot(root, fullscreen)
}

func (n appProxy) Run() error {
	return n.run()
}

func (n appProxy) Stop() {
	n.stop()
}
