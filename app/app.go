package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"iwmenu/config"
	"iwmenu/iwctl"
	"iwmenu/log"
	"iwmenu/ui"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, cfg, iwctl.Run),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

type state int

const (
	// stateMenu is the state when a menu (main or submenu) is displayed.
	stateMenu state = iota
	// statePrompt is the state when a parameter of a pending action is
	// being collected.
	statePrompt
	// stateOutput is the state when the output screen is displayed.
	stateOutput
)

// pendingAction tracks an action whose parameters are still being collected.
type pendingAction struct {
	act *action
	// next indexes the prompt currently shown.
	next int
	// values holds the resolved responses, parallel to act.Prompts.
	values []string
}

type home struct {
	ctx context.Context

	// appConfig stores the persisted default station/adapter. It is only
	// ever touched from the program's single update loop.
	appConfig *config.Config

	// run invokes the external tool. Tests substitute a fake.
	run iwctl.Runner

	// state is the current discrete state of the application.
	state state

	// menuStack tracks the entered menus; index 0 is the main menu.
	menuStack []*menuDef
	// menu is the component for the menu on top of the stack. It is
	// rebuilt fresh every time a menu is (re)entered, so the highlight
	// does not persist across showings.
	menu *ui.Menu

	// prompt collects the current parameter while state is statePrompt.
	prompt *ui.Prompt
	// pending is the action whose prompts are being walked.
	pending *pendingAction

	// output is the result screen while state is stateOutput.
	output *ui.Output

	width, height int
}

func newHome(ctx context.Context, cfg *config.Config, run iwctl.Runner) *home {
	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		run:       run,
		state:     stateMenu,
		menuStack: []*menuDef{&mainMenu},
	}
	h.enterMenu()
	return h
}

// enterMenu rebuilds the menu component for the top of the stack.
func (h *home) enterMenu() {
	top := h.menuStack[len(h.menuStack)-1]
	h.menu = ui.NewMenu(top.Title, top.labels(), 0)
	h.menu.SetSize(h.width, h.height)
	h.state = stateMenu
}

func (h *home) Init() tea.Cmd {
	return nil
}

func (h *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.menu.SetSize(msg.Width, msg.Height)
		if h.prompt != nil {
			h.prompt.SetSize(msg.Width, msg.Height)
		}
		if h.output != nil {
			h.output.SetSize(msg.Width, msg.Height)
		}
		return h, nil
	case tea.KeyMsg:
		return h.handleKeyPress(msg)
	}

	if h.state == statePrompt && h.prompt != nil {
		return h, h.prompt.Update(msg)
	}
	return h, nil
}

func (h *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch h.state {
	case stateMenu:
		choice, done := h.menu.HandleKeyPress(msg)
		if !done {
			return h, nil
		}
		return h.handleMenuChoice(choice)

	case statePrompt:
		if !h.prompt.HandleKeyPress(msg) {
			return h, nil
		}
		if h.prompt.Canceled {
			// The whole pending action is abandoned.
			h.pending = nil
			h.prompt = nil
			h.enterMenu()
			return h, nil
		}
		value := h.prompt.Value()
		h.prompt = nil
		h.handlePromptValue(value)
		return h, nil

	case stateOutput:
		if h.output.HandleKeyPress(msg) {
			h.output = nil
			h.enterMenu()
		}
		return h, nil
	}
	return h, nil
}

func (h *home) handleMenuChoice(choice int) (tea.Model, tea.Cmd) {
	top := h.menuStack[len(h.menuStack)-1]
	item := top.Items[choice]

	switch {
	case item.Submenu != nil:
		h.menuStack = append(h.menuStack, item.Submenu)
		h.enterMenu()
	case item.Action != nil:
		h.startAction(item.Action)
	default:
		// Back from a submenu, quit from the main menu.
		if len(h.menuStack) > 1 {
			h.menuStack = h.menuStack[:len(h.menuStack)-1]
			h.enterMenu()
			return h, nil
		}
		return h, tea.Quit
	}
	return h, nil
}

// startAction begins collecting the action's parameters, or runs it directly
// when it has none.
func (h *home) startAction(act *action) {
	h.pending = &pendingAction{act: act}
	if len(act.Prompts) == 0 {
		h.executePending()
		return
	}
	h.showPrompt()
}

// promptLabel builds the display label for the pending prompt.
func (h *home) promptLabel(spec promptSpec) string {
	switch spec.Kind {
	case promptStation:
		return fmt.Sprintf("wlan for %s (current default: %q) [Enter = use default]: ",
			spec.Label, h.appConfig.Station)
	case promptAdapter:
		return fmt.Sprintf("Adapter/phy for %s (current default: %q) [Enter = use default]: ",
			spec.Label, h.appConfig.Adapter)
	}

	if h.pending.act.Defaults {
		current := h.appConfig.Station
		if h.pending.next == 1 {
			current = h.appConfig.Adapter
		}
		return fmt.Sprintf(spec.Label, current)
	}

	// Free-text labels may reference earlier values, e.g. the property
	// name in the value prompt.
	label := spec.Label
	for i := 0; i < h.pending.next; i++ {
		if token := h.pending.act.Prompts[i].Token; token != "" {
			label = strings.ReplaceAll(label, "{"+token+"}", h.pending.values[i])
		}
	}
	return label
}

func (h *home) showPrompt() {
	h.prompt = ui.NewPrompt(h.promptLabel(h.pending.act.Prompts[h.pending.next]), "")
	h.prompt.SetSize(h.width, h.height)
	h.state = statePrompt
}

// handlePromptValue validates and records one collected value, then advances
// to the next prompt or executes the action.
func (h *home) handlePromptValue(value string) {
	p := h.pending
	spec := p.act.Prompts[p.next]

	switch spec.Kind {
	case promptStation:
		if value == "" {
			value = h.appConfig.Station
		}
		if value == "" {
			h.abortPending("No wlan specified and no default station configured.")
			return
		}
	case promptAdapter:
		if value == "" {
			value = h.appConfig.Adapter
		}
		if value == "" {
			h.abortPending("No adapter specified and no default adapter configured.")
			return
		}
	case promptOnOff:
		value = strings.ToLower(value)
		if value != "on" && value != "off" {
			h.abortPending("Invalid value. Please type 'on' or 'off'.")
			return
		}
	case promptText:
		if value == "" && !spec.Optional {
			h.abortPending(spec.EmptyError)
			return
		}
	}

	p.values = append(p.values, value)
	p.next++
	if p.next < len(p.act.Prompts) {
		h.showPrompt()
		return
	}
	h.executePending()
}

// abortPending rejects the action locally: an error screen is shown and the
// external tool is not invoked.
func (h *home) abortPending(message string) {
	h.pending = nil
	h.showOutput(ui.NewErrorOutput(message))
}

// executePending runs the fully-collected action and shows the result.
func (h *home) executePending() {
	p := h.pending
	h.pending = nil

	if p.act.Defaults {
		h.applyDefaults(p)
		return
	}

	args := buildArgs(p.act, p.values)
	log.InfoLog.Printf("running %s", iwctl.Invocation(args...))
	res := h.run(args...)

	stderr := res.Stderr
	if stderr == "" && res.ExitCode != 0 {
		stderr = fmt.Sprintf("Exit code: %d", res.ExitCode)
	}
	h.showOutput(ui.NewOutput(p.act.Title, iwctl.Invocation(args...), res.Stdout, stderr))
}

// applyDefaults handles the one preference-mutating action: fields are
// overwritten only when the replacement is non-empty, and the record is
// persisted immediately.
func (h *home) applyDefaults(p *pendingAction) {
	if p.values[0] != "" {
		h.appConfig.Station = p.values[0]
	}
	if p.values[1] != "" {
		h.appConfig.Adapter = p.values[1]
	}
	if err := config.SaveConfig(h.appConfig); err != nil {
		log.ErrorLog.Printf("failed to save config: %v", err)
	}

	text := fmt.Sprintf("Defaults updated:\n\n  Station: %q\n  Adapter: %q\n",
		h.appConfig.Station, h.appConfig.Adapter)
	h.showOutput(ui.NewOutput(p.act.Title, ui.PlaceholderCommand, text, ""))
}

func (h *home) showOutput(out *ui.Output) {
	h.output = out
	h.output.SetSize(h.width, h.height)
	h.state = stateOutput
}

// buildArgs fills the argv template with the collected values. Tokenless
// (optional) values are appended in prompt order when non-empty.
func buildArgs(act *action, values []string) []string {
	args := make([]string, len(act.Args))
	copy(args, act.Args)

	// Placeholder positions are resolved against the pristine template, so a
	// collected value that happens to look like a later placeholder is never
	// substituted again.
	for i, spec := range act.Prompts {
		if spec.Token == "" {
			continue
		}
		placeholder := "{" + spec.Token + "}"
		for j, arg := range act.Args {
			if arg == placeholder {
				args[j] = values[i]
			}
		}
	}

	for i, spec := range act.Prompts {
		if spec.Token == "" && values[i] != "" {
			args = append(args, values[i])
		}
	}
	return args
}

func (h *home) View() string {
	switch h.state {
	case statePrompt:
		return h.prompt.String()
	case stateOutput:
		return h.output.String()
	default:
		return h.menu.String()
	}
}
