package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iwmenu/config"
	"iwmenu/iwctl"
	"iwmenu/log"
)

// TestMain runs before all tests to set up the test environment.
func TestMain(m *testing.M) {
	// Initialize the logger before any tests run
	log.Initialize()
	defer log.Close()

	exitCode := m.Run()
	os.Exit(exitCode)
}

// fakeRunner records every invocation and plays back a canned result.
type fakeRunner struct {
	calls  [][]string
	result iwctl.Result
}

func (f *fakeRunner) run(args ...string) iwctl.Result {
	f.calls = append(f.calls, args)
	return f.result
}

func newTestHome(cfg *config.Config, runner *fakeRunner) *home {
	return newHome(context.Background(), cfg, runner.run)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press sends navigation keys, e.g. press(h, "down", "down", "enter").
func press(h *home, presses ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, p := range presses {
		_, cmd = h.Update(keyMsg(p))
	}
	return cmd
}

// typeLine types the text rune by rune and submits it with enter. Empty text
// submits the prompt unchanged.
func typeLine(h *home, text string) {
	for _, r := range text {
		h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	press(h, "enter")
}

// selectItem navigates a freshly entered menu to the given index and confirms.
func selectItem(h *home, index int) tea.Cmd {
	for i := 0; i < index; i++ {
		press(h, "down")
	}
	return press(h, "enter")
}

func TestStationConnect_UsesStoredDefaultStation(t *testing.T) {
	runner := &fakeRunner{result: iwctl.Result{Stdout: "connected\n"}}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 6) // Station
	selectItem(h, 1) // Connect to network
	typeLine(h, "")  // wlan prompt left empty, default applies
	typeLine(h, "HomeNet")
	typeLine(h, "") // security left empty, not appended

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"station", "wlan0", "connect", "HomeNet"}, runner.calls[0])

	assert.Equal(t, stateOutput, h.state)
	assert.Contains(t, h.View(), "iwctl station wlan0 connect HomeNet")
	assert.Contains(t, h.View(), "connected")
}

func TestStationConnect_OptionalSecurityAppended(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 6)
	selectItem(h, 1)
	typeLine(h, "")
	typeLine(h, "HomeNet")
	typeLine(h, "psk")

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"station", "wlan0", "connect", "HomeNet", "psk"}, runner.calls[0])
}

func TestDeviceSetProperty(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{}, runner)

	selectItem(h, 3) // Devices
	selectItem(h, 2) // Set device property
	typeLine(h, "wlan0")
	typeLine(h, "Powered")
	typeLine(h, "off")

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"device", "wlan0", "set-property", "Powered", "off"}, runner.calls[0])
}

func TestAutoConnect_InvalidValueRejectedLocally(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 9) // Station Debug
	selectItem(h, 3) // Set AutoConnect on/off
	typeLine(h, "")  // wlan default
	typeLine(h, "maybe")

	assert.Empty(t, runner.calls, "the external tool must not be invoked")
	assert.Equal(t, stateOutput, h.state)
	assert.Contains(t, h.View(), "Invalid value. Please type 'on' or 'off'.")
	assert.Contains(t, h.View(), "$ "+"N/A")
}

func TestAutoConnect_ValueIsLowered(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 9)
	selectItem(h, 3)
	typeLine(h, "")
	typeLine(h, "ON")

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"debug", "wlan0", "autoconnect", "on"}, runner.calls[0])
}

func TestStationPrompt_NoValueAndNoDefault(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{}, runner)

	selectItem(h, 6)
	selectItem(h, 1)
	typeLine(h, "") // no wlan, no default

	assert.Empty(t, runner.calls)
	assert.Equal(t, stateOutput, h.state)
	assert.Contains(t, h.View(), "No wlan specified and no default station configured.")
}

func TestAdapterPrompt_NoValueAndNoDefault(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 0) // Adapters
	selectItem(h, 1) // Show adapter info
	typeLine(h, "")

	assert.Empty(t, runner.calls)
	assert.Contains(t, h.View(), "No adapter specified and no default adapter configured.")
}

func TestEmptyRequiredParameterAborts(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 6) // Station
	selectItem(h, 1) // Connect to network
	typeLine(h, "")  // wlan default
	typeLine(h, "")  // empty SSID

	assert.Empty(t, runner.calls)
	assert.Contains(t, h.View(), "No network name.")
}

func TestPromptEscAbandonsActionQuietly(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 6)
	selectItem(h, 1)
	press(h, "esc")

	assert.Empty(t, runner.calls)
	assert.Equal(t, stateMenu, h.state)
	assert.Nil(t, h.output)
	assert.Contains(t, h.View(), "IWCTL STATION SUBMENU")
}

func TestNonZeroExitCodeShownWhenStderrEmpty(t *testing.T) {
	runner := &fakeRunner{result: iwctl.Result{ExitCode: 2}}
	h := newTestHome(&config.Config{}, runner)

	selectItem(h, 3) // Devices
	selectItem(h, 0) // List devices

	assert.Equal(t, stateOutput, h.state)
	assert.Contains(t, h.View(), "stderr:")
	assert.Contains(t, h.View(), "Exit code: 2")
}

func TestStderrShownVerbatimOnFailure(t *testing.T) {
	runner := &fakeRunner{result: iwctl.Result{Stderr: "Operation failed\n", ExitCode: 1}}
	h := newTestHome(&config.Config{}, runner)

	selectItem(h, 3)
	selectItem(h, 0)

	view := h.View()
	assert.Contains(t, view, "Operation failed")
	assert.NotContains(t, view, "Exit code:")
}

func TestOutputDismissReturnsToSubmenu(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{}, runner)

	selectItem(h, 3)
	selectItem(h, 0)
	require.Equal(t, stateOutput, h.state)

	press(h, "x")
	assert.Equal(t, stateMenu, h.state)
	assert.Contains(t, h.View(), "IWCTL DEVICES SUBMENU")
}

func TestSubmenuBackReturnsToMainMenu(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{}, runner)

	selectItem(h, 1) // Ad-Hoc
	require.Contains(t, h.View(), "IWCTL AD-HOC SUBMENU")

	press(h, "q")
	assert.Equal(t, stateMenu, h.state)
	assert.Contains(t, h.View(), "IWCTL HELPER")
}

func TestMainMenuQuit(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{}, runner)

	cmd := press(h, "q")
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestVersionActionFromMainMenu(t *testing.T) {
	runner := &fakeRunner{result: iwctl.Result{Stdout: "iwctl version 2.16\n"}}
	h := newTestHome(&config.Config{}, runner)

	selectItem(h, 10)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"version"}, runner.calls[0])
	assert.Contains(t, h.View(), "iwctl version 2.16")
}

func TestChangeDefaults_PersistsNonEmptyReplacements(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))

	runner := &fakeRunner{}
	cfg := &config.Config{Station: "wlan0", Adapter: "phy0"}
	h := newTestHome(cfg, runner)

	selectItem(h, 6) // Station
	selectItem(h, 9) // Change default station / adapter
	typeLine(h, "wlan1")
	typeLine(h, "") // keep the current adapter

	assert.Empty(t, runner.calls)
	assert.Equal(t, "wlan1", cfg.Station)
	assert.Equal(t, "phy0", cfg.Adapter)
	assert.Contains(t, h.View(), "Defaults updated:")

	// The change is persisted immediately.
	loaded := config.LoadConfig()
	assert.Equal(t, "wlan1", loaded.Station)
	assert.Equal(t, "phy0", loaded.Adapter)
}

func TestOptionalParametersOmittedWhenEmpty(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 6) // Station
	selectItem(h, 8) // Get BSSes
	typeLine(h, "")  // wlan default
	typeLine(h, "")  // network: omitted
	typeLine(h, "psk")

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"station", "wlan0", "get-bsses", "psk"}, runner.calls[0])
}

func TestBuildArgs(t *testing.T) {
	act := &action{
		Args: []string{"station", "{wlan}", "connect", "{ssid}"},
		Prompts: []promptSpec{
			askWlan("station connect"),
			reqText("Network name (SSID): ", "ssid", "No network name."),
			optText("Security: "),
		},
	}

	tests := []struct {
		name     string
		values   []string
		expected []string
	}{
		{
			name:     "optional empty value omitted",
			values:   []string{"wlan0", "HomeNet", ""},
			expected: []string{"station", "wlan0", "connect", "HomeNet"},
		},
		{
			name:     "optional value appended",
			values:   []string{"wlan0", "HomeNet", "psk"},
			expected: []string{"station", "wlan0", "connect", "HomeNet", "psk"},
		},
		{
			// A value that looks like a later placeholder stays literal.
			name:     "placeholder-shaped value not resubstituted",
			values:   []string{"{ssid}", "HomeNet", ""},
			expected: []string{"station", "{ssid}", "connect", "HomeNet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildArgs(act, tt.values))
		})
	}
}

func TestPromptLabelShowsCurrentDefault(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Station: "wlan0"}, runner)

	selectItem(h, 6)
	selectItem(h, 1)

	require.Equal(t, statePrompt, h.state)
	assert.Contains(t, h.View(), `wlan for station connect (current default: "wlan0") [Enter = use default]`)
}

func TestPropertyValueLabelReferencesPropertyName(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHome(&config.Config{Adapter: "phy0"}, runner)

	selectItem(h, 0) // Adapters
	selectItem(h, 2) // Set adapter property
	typeLine(h, "")  // adapter default
	typeLine(h, "Powered")

	require.Equal(t, statePrompt, h.state)
	assert.Contains(t, h.View(), "Property value for Powered (e.g. on/off)")
}
