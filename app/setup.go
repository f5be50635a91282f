package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"iwmenu/config"
	"iwmenu/iwctl"
	"iwmenu/log"
)

// FirstRunSetup prompts for the default station and adapter when either is
// missing. It runs before the alternate screen is entered: the device list and
// the prompts are plain stdio. Once both defaults are stored it is never
// entered again.
func FirstRunSetup(cfg *config.Config, run iwctl.Runner) {
	if cfg.Station != "" && cfg.Adapter != "" {
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.InfoLog.Printf("stdin is not a terminal, skipping first-run setup")
		return
	}

	fmt.Println("First run setup for iwmenu")
	fmt.Println("--------------------------")
	fmt.Println("Running: iwctl device list")
	fmt.Println()

	res := run("device", "list")
	if res.Stdout != "" {
		fmt.Println(iwctl.StripEscapes(res.Stdout))
	}
	if res.Stderr != "" {
		fmt.Println(iwctl.StripEscapes(res.Stderr))
	}
	if res.ExitCode != 0 {
		fmt.Printf("\nWARNING: iwctl returned exit code %d\n\n", res.ExitCode)
	}

	fmt.Println(wordwrap.String("Please configure the defaults substituted into prompts "+
		"left empty. Both can be changed later from the Station submenu.", 72))

	reader := bufio.NewReader(os.Stdin)
	if station := readLine(reader, "Default station (wlan, e.g. wlan0): "); station != "" {
		cfg.Station = station
	}
	if adapter := readLine(reader, "Default adapter (phy, e.g. phy0 or wlan0): "); adapter != "" {
		cfg.Adapter = adapter
	}

	if err := config.SaveConfig(cfg); err != nil {
		log.ErrorLog.Printf("failed to save config: %v", err)
	}

	fmt.Println("\nDefaults saved. Launching TUI.")
	readLine(reader, "Press Enter to continue...")
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	// On EOF whatever was read still counts as the response.
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
