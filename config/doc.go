// Package config handles application configuration loading and management.
//
// Configuration is stored in the user config dir under iwmenu/config.json and
// holds the default station and adapter substituted into empty prompts.
package config
