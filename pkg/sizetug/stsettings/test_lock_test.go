package stsettings

import "sync"

var settingsTestLock sync.Mutex

func withTestGlobalLock(t interface {
	Helper()
	Cleanup(func())
}) {
	t.Helper()
	settingsTestLock.Lock()
	t.Cleanup(func() {
		settingsTestLock.Unlock()
	})
}
