// Package app implements the main terminal user interface for iwmenu.
//
// It provides a Bubble Tea-based TUI that walks the iwctl submenu dispatch
// tables, collects action parameters through prompts, and renders captured
// command output. The main entry point is the Run function which initializes
// and starts the application.
package app
