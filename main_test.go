package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filetug/sizetug/pkg/dirsize"
	"github.com/filetug/sizetug/pkg/sizetug"
	"github.com/filetug/sizetug/pkg/sizetug/stsettings"
)

// withOutput captures stdout and stderr and restores the seams.
func withOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	oldStdout, oldStderr := stdout, stderr
	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	stdout, stderr = out, errOut
	t.Cleanup(func() {
		stdout, stderr = oldStdout, oldStderr
	})
	return out, errOut
}

func withTerminal(t *testing.T, terminal bool) {
	t.Helper()
	old := isTerminal
	isTerminal = func() bool { return terminal }
	t.Cleanup(func() { isTerminal = old })
}

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	old := defaultConfigPath
	defaultConfigPath = func() (string, error) { return path, nil }
	t.Cleanup(func() { defaultConfigPath = old })
}

func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), make([]byte, 1<<20), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b", "c.bin"), make([]byte, 2<<20), 0o644))
	return root
}

func TestParseFlags(t *testing.T) {
	o, flags, err := parseFlags([]string{"--print", "-o", "json", "--sort", "name", "--asc", "/tmp"})
	require.NoError(t, err)
	assert.True(t, o.print)
	assert.Equal(t, "json", o.output)
	assert.Equal(t, "name", o.sort)
	assert.True(t, o.asc)
	assert.Equal(t, "/tmp", o.path)
	assert.True(t, flags.Changed("sort"))

	_, _, err = parseFlags([]string{"-o", "xml"})
	assert.EqualError(t, err, `invalid output format "xml": must be table or json`)

	_, _, err = parseFlags([]string{"a", "b"})
	assert.Error(t, err)

	_, _, err = parseFlags([]string{"--unknown"})
	assert.Error(t, err)
}

func TestSettings_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("sort:\n  key: name\n  direction: asc\nhide_dotfiles: true\n"), 0o644))

	o, flags, err := parseFlags([]string{"--config", configPath})
	require.NoError(t, err)
	cfg, state, err := settings(o, flags)
	require.NoError(t, err)
	assert.True(t, cfg.HideDotfiles)
	assert.Equal(t, dirsize.SortState{Key: dirsize.ByName, Direction: dirsize.Ascending}, state)

	o, flags, err = parseFlags([]string{"--config", configPath, "--sort", "size", "--asc=false", "--hide-dotfiles=false"})
	require.NoError(t, err)
	cfg, state, err = settings(o, flags)
	require.NoError(t, err)
	assert.False(t, cfg.HideDotfiles)
	assert.Equal(t, dirsize.LargestFirst, state)
}

func TestSettings_Errors(t *testing.T) {
	o, flags, err := parseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.NoError(t, err)
	_, _, err = settings(o, flags)
	assert.Error(t, err)

	withConfigPath(t, filepath.Join(t.TempDir(), "missing.yaml"))
	o, flags, err = parseFlags([]string{"--sort", "date"})
	require.NoError(t, err)
	_, _, err = settings(o, flags)
	assert.ErrorContains(t, err, "unknown sort key")

	oldLoad := loadConfig
	defer func() { loadConfig = oldLoad }()
	loadConfig = func(string, bool) (stsettings.Config, error) {
		return stsettings.Config{}, errors.New("broken")
	}
	_, _, err = settings(o, flags)
	assert.EqualError(t, err, "broken")
}

func TestExecute_Version(t *testing.T) {
	out, _ := withOutput(t)
	require.NoError(t, execute([]string{"--version"}))
	assert.Equal(t, version+"\n", out.String())
}

func TestExecute_Help(t *testing.T) {
	_, errOut := withOutput(t)
	require.NoError(t, execute([]string{"--help"}))
	assert.Contains(t, errOut.String(), "sizetug [flags] [path]")
	assert.Contains(t, errOut.String(), "--hide-dotfiles")
}

func TestExecute_PrintJSON(t *testing.T) {
	withConfigPath(t, "")
	root := newTree(t)
	out, _ := withOutput(t)

	require.NoError(t, execute([]string{"--print", "-o", "json", "--sort", "size", root}))

	var got struct {
		Root    string `json:"root"`
		Entries []struct {
			Name string `json:"name"`
			MB   string `json:"mb"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, root, got.Root)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "b", got.Entries[0].Name)
	assert.Equal(t, "2.00", got.Entries[0].MB)
	assert.Equal(t, "a.txt", got.Entries[1].Name)
}

func TestExecute_NotTerminalPrintsTable(t *testing.T) {
	withConfigPath(t, "")
	withTerminal(t, false)
	root := newTree(t)
	out, _ := withOutput(t)

	require.NoError(t, execute([]string{root}))
	assert.Contains(t, out.String(), "a.txt")
	assert.Contains(t, out.String(), "Total size:")
}

func TestExecute_ScanError(t *testing.T) {
	withConfigPath(t, "")
	withOutput(t)
	err := execute([]string{"--print", filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestExecute_Interactive(t *testing.T) {
	withConfigPath(t, "")
	withTerminal(t, true)
	withOutput(t)
	root := newTree(t)
	logPath := filepath.Join(t.TempDir(), "sizetug.log")

	oldNewApp, oldRun := newApp, run
	defer func() { newApp, run = oldNewApp, oldRun }()

	var gotOptions int
	newApp = func(_ context.Context, session *sizetug.Session, options ...sizetug.WindowOption) application {
		assert.NotNil(t, session)
		gotOptions = len(options)
		return fakeApp{}
	}
	runCalled := false
	run = func(application) { runCalled = true }

	require.NoError(t, execute([]string{"--log", logPath, root}))
	assert.True(t, runCalled)
	assert.Equal(t, 2, gotOptions)
	_, err := os.Stat(logPath)
	assert.NoError(t, err)

	err = execute([]string{"--log", filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.ErrorContains(t, err, "opening log file")
}

func TestMainRoot(t *testing.T) {
	oldExit := osExit
	defer func() { osExit = oldExit }()
	_, errOut := withOutput(t)

	exitCode := -1
	osExit = func(code int) { exitCode = code }

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"sizetug", "--output", "xml"}

	main()
	assert.Equal(t, 1, exitCode)
	assert.True(t, strings.HasPrefix(errOut.String(), "sizetug: invalid output format"))
}

func Test_newApp(t *testing.T) {
	oldSetupApp := setupApp
	defer func() {
		setupApp = oldSetupApp
	}()
	setupAppCalled := false
	setupApp = func(ctx context.Context, app *tview.Application, session *sizetug.Session, options ...sizetug.WindowOption) *sizetug.Window {
		setupAppCalled = true
		return nil
	}

	app := newApp(context.Background(), nil)
	if app == nil {
		t.Errorf("newApp returned nil")
	}
	if !setupAppCalled {
		t.Errorf("expected newApp to call setupApp")
	}
}

type fakeApp struct {
	err error
}

func (f fakeApp) Run() error {
	if f.err == nil {
		return nil
	}
	return fmt.Errorf("app failed: %w", f.err)
}

func Test_run(t *testing.T) {
	_, errOut := withOutput(t)

	var expectedErr = errors.New("test error")
	run(fakeApp{err: expectedErr})

	if !strings.Contains(errOut.String(), expectedErr.Error()) {
		t.Errorf("expected stderr to contain %q, got %q", expectedErr.Error(), errOut.String())
	}
}
