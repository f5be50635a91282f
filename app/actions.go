package app

// The submenu dispatch tables. Every submenu is data: a labeled list of
// actions, each holding an argv template and the prompts that fill it. One
// interpreter in app.go walks these tables; no submenu has its own control
// flow.

type promptKind int

const (
	// promptText is a free-text parameter.
	promptText promptKind = iota
	// promptStation resolves a wireless interface, falling back to the
	// stored default station when the response is empty.
	promptStation
	// promptAdapter resolves a physical radio, falling back to the stored
	// default adapter.
	promptAdapter
	// promptOnOff accepts exactly "on" or "off".
	promptOnOff
)

// promptSpec describes one parameter an action collects before running.
type promptSpec struct {
	Kind promptKind
	// Label is the prompt text. For station/adapter prompts it is the
	// action context interpolated into the standard wlan/phy prompt.
	// Earlier values may be referenced as {token}.
	Label string
	// Token names the {token} placeholder this value fills in the argv
	// template. Optional prompts carry no token; their values are appended
	// to the argv only when non-empty.
	Token string
	// Optional prompts accept an empty response.
	Optional bool
	// EmptyError is the message shown when a required response is empty.
	EmptyError string
}

// action is one selectable submenu entry.
type action struct {
	// Label is the menu item text.
	Label string
	// Title heads the output screen.
	Title string
	// Args is the argv template; {token} placeholders are filled from
	// prompt values and optional values are appended at the end.
	Args []string
	// Prompts are collected in order before the invocation.
	Prompts []promptSpec
	// Defaults marks the one action that edits the stored preferences
	// instead of invoking the external tool.
	Defaults bool
}

// menuItem is one row of a menu: a submenu, an action, or (with both unset)
// the Back/Quit entry.
type menuItem struct {
	Label   string
	Submenu *menuDef
	Action  *action
}

type menuDef struct {
	Title string
	Items []menuItem
}

func askWlan(context string) promptSpec {
	return promptSpec{Kind: promptStation, Label: context, Token: "wlan"}
}

func askPhy(context string) promptSpec {
	return promptSpec{Kind: promptAdapter, Label: context, Token: "phy"}
}

func reqText(label, token, emptyError string) promptSpec {
	return promptSpec{Kind: promptText, Label: label, Token: token, EmptyError: emptyError}
}

func optText(label string) promptSpec {
	return promptSpec{Kind: promptText, Label: label, Optional: true}
}

var adaptersMenu = menuDef{
	Title: "IWCTL ADAPTERS SUBMENU",
	Items: []menuItem{
		{Label: "List adapters", Action: &action{
			Title: "Adapters - List",
			Args:  []string{"adapter", "list"},
		}},
		{Label: "Show adapter info", Action: &action{
			Title:   "Adapters - Show",
			Args:    []string{"adapter", "{phy}", "show"},
			Prompts: []promptSpec{askPhy("show")},
		}},
		{Label: "Set adapter property", Action: &action{
			Title: "Adapters - Set property",
			Args:  []string{"adapter", "{phy}", "set-property", "{name}", "{value}"},
			Prompts: []promptSpec{
				askPhy("set-property"),
				reqText("Property name (e.g. Powered): ", "name", "No property name."),
				reqText("Property value for {name} (e.g. on/off): ", "value", "No property value."),
			},
		}},
		{Label: "Back"},
	},
}

var adHocMenu = menuDef{
	Title: "IWCTL AD-HOC SUBMENU",
	Items: []menuItem{
		{Label: "List Ad-Hoc devices", Action: &action{
			Title: "Ad-Hoc - List",
			Args:  []string{"ad-hoc", "list"},
		}},
		{Label: "Start Ad-Hoc network", Action: &action{
			Title: "Ad-Hoc - Start",
			Args:  []string{"ad-hoc", "{wlan}", "start", "{ssid}", "{pass}"},
			Prompts: []promptSpec{
				askWlan("Ad-Hoc start"),
				reqText("Network name (SSID, can contain spaces; no quotes needed): ", "ssid", "No network name."),
				reqText("Passphrase: ", "pass", "No passphrase."),
			},
		}},
		{Label: "Start open Ad-Hoc network", Action: &action{
			Title: "Ad-Hoc - Start open",
			Args:  []string{"ad-hoc", "{wlan}", "start_open", "{ssid}"},
			Prompts: []promptSpec{
				askWlan("Ad-Hoc start_open"),
				reqText("Open Ad-Hoc network name (SSID): ", "ssid", "No network name."),
			},
		}},
		{Label: "Stop Ad-Hoc on wlan", Action: &action{
			Title:   "Ad-Hoc - Stop",
			Args:    []string{"ad-hoc", "{wlan}", "stop"},
			Prompts: []promptSpec{askWlan("Ad-Hoc stop")},
		}},
		{Label: "Back"},
	},
}

var accessPointMenu = menuDef{
	Title: "IWCTL AP SUBMENU",
	Items: []menuItem{
		{Label: "List AP-mode devices", Action: &action{
			Title: "AP - List",
			Args:  []string{"ap", "list"},
		}},
		{Label: "Start access point", Action: &action{
			Title: "AP - Start",
			Args:  []string{"ap", "{wlan}", "start", "{ssid}", "{pass}"},
			Prompts: []promptSpec{
				askWlan("AP start"),
				reqText("AP network name (SSID): ", "ssid", "No network name."),
				reqText("Passphrase: ", "pass", "No passphrase."),
			},
		}},
		{Label: "Start access point from profile", Action: &action{
			Title: "AP - Start profile",
			Args:  []string{"ap", "{wlan}", "start-profile", "{ssid}"},
			Prompts: []promptSpec{
				askWlan("AP start-profile"),
				reqText(`Profile name / "network name": `, "ssid", "No profile name."),
			},
		}},
		{Label: "Stop access point", Action: &action{
			Title:   "AP - Stop",
			Args:    []string{"ap", "{wlan}", "stop"},
			Prompts: []promptSpec{askWlan("AP stop")},
		}},
		{Label: "Show AP info", Action: &action{
			Title:   "AP - Show",
			Args:    []string{"ap", "{wlan}", "show"},
			Prompts: []promptSpec{askWlan("AP show")},
		}},
		{Label: "Scan (AP)", Action: &action{
			Title:   "AP - Scan",
			Args:    []string{"ap", "{wlan}", "scan"},
			Prompts: []promptSpec{askWlan("AP scan")},
		}},
		{Label: "Get AP networks", Action: &action{
			Title:   "AP - Get networks",
			Args:    []string{"ap", "{wlan}", "get-networks"},
			Prompts: []promptSpec{askWlan("AP get-networks")},
		}},
		{Label: "Back"},
	},
}

var devicesMenu = menuDef{
	Title: "IWCTL DEVICES SUBMENU",
	Items: []menuItem{
		{Label: "List devices", Action: &action{
			Title: "Devices - List",
			Args:  []string{"device", "list"},
		}},
		{Label: "Show device info", Action: &action{
			Title:   "Devices - Show",
			Args:    []string{"device", "{wlan}", "show"},
			Prompts: []promptSpec{askWlan("device show")},
		}},
		{Label: "Set device property", Action: &action{
			Title: "Devices - Set property",
			Args:  []string{"device", "{wlan}", "set-property", "{name}", "{value}"},
			Prompts: []promptSpec{
				askWlan("device set-property"),
				reqText("Property name: ", "name", "No property name."),
				reqText("Property value: ", "value", "No property value."),
			},
		}},
		{Label: "Back"},
	},
}

const knownNetworkNamePrompt = "Known network name (as shown in list, may need quotes normally): "

var knownNetworksMenu = menuDef{
	Title: "IWCTL KNOWN NETWORKS SUBMENU",
	Items: []menuItem{
		{Label: "List known networks", Action: &action{
			Title: "Known Networks - List",
			Args:  []string{"known-networks", "list"},
		}},
		{Label: "Show known network", Action: &action{
			Title:   "Known Networks - Show",
			Args:    []string{"known-networks", "{ssid}", "show"},
			Prompts: []promptSpec{reqText(knownNetworkNamePrompt, "ssid", "No network name.")},
		}},
		{Label: "Forget known network", Action: &action{
			Title:   "Known Networks - Forget",
			Args:    []string{"known-networks", "{ssid}", "forget"},
			Prompts: []promptSpec{reqText(knownNetworkNamePrompt, "ssid", "No network name.")},
		}},
		{Label: "Set known network property", Action: &action{
			Title: "Known Networks - Set property",
			Args:  []string{"known-networks", "{ssid}", "set-property", "{name}", "{value}"},
			Prompts: []promptSpec{
				reqText(knownNetworkNamePrompt, "ssid", "No network name."),
				reqText("Property name: ", "name", "No property name."),
				reqText("Property value: ", "value", "No property value."),
			},
		}},
		{Label: "Back"},
	},
}

var wscMenu = menuDef{
	Title: "IWCTL WSC SUBMENU",
	Items: []menuItem{
		{Label: "List WSC-capable devices", Action: &action{
			Title: "WSC - List",
			Args:  []string{"wsc", "list"},
		}},
		{Label: "PushButton mode", Action: &action{
			Title:   "WSC - PushButton",
			Args:    []string{"wsc", "{wlan}", "push-button"},
			Prompts: []promptSpec{askWlan("WSC")},
		}},
		{Label: "Start user PIN mode", Action: &action{
			Title: "WSC - Start user PIN",
			Args:  []string{"wsc", "{wlan}", "start-user-pin", "{pin}"},
			Prompts: []promptSpec{
				askWlan("WSC"),
				reqText("PIN (e.g. 12345670): ", "pin", "No PIN entered."),
			},
		}},
		{Label: "Start PIN (generated)", Action: &action{
			Title:   "WSC - Start PIN (generated)",
			Args:    []string{"wsc", "{wlan}", "start-pin"},
			Prompts: []promptSpec{askWlan("WSC")},
		}},
		{Label: "Cancel WSC", Action: &action{
			Title:   "WSC - Cancel",
			Args:    []string{"wsc", "{wlan}", "cancel"},
			Prompts: []promptSpec{askWlan("WSC")},
		}},
		{Label: "Back"},
	},
}

var stationMenu = menuDef{
	Title: "IWCTL STATION SUBMENU",
	Items: []menuItem{
		{Label: "List station devices", Action: &action{
			Title: "Station - List",
			Args:  []string{"station", "list"},
		}},
		{Label: "Connect to network", Action: &action{
			Title: "Station - Connect",
			Args:  []string{"station", "{wlan}", "connect", "{ssid}"},
			Prompts: []promptSpec{
				askWlan("station connect"),
				reqText("Network name (SSID): ", "ssid", "No network name."),
				optText("Security (optional, e.g. psk, leave empty for default): "),
			},
		}},
		{Label: "Connect to hidden network", Action: &action{
			Title: "Station - Connect hidden",
			Args:  []string{"station", "{wlan}", "connect-hidden", "{ssid}"},
			Prompts: []promptSpec{
				askWlan("station connect-hidden"),
				reqText("Hidden network name (SSID): ", "ssid", "No network name."),
			},
		}},
		{Label: "Disconnect", Action: &action{
			Title:   "Station - Disconnect",
			Args:    []string{"station", "{wlan}", "disconnect"},
			Prompts: []promptSpec{askWlan("station disconnect")},
		}},
		{Label: "Get networks", Action: &action{
			Title: "Station - Get networks",
			Args:  []string{"station", "{wlan}", "get-networks"},
			Prompts: []promptSpec{
				askWlan("station get-networks"),
				optText("Mode (optional: rssi-dbms / rssi-bars, empty for default): "),
			},
		}},
		{Label: "Get hidden access points", Action: &action{
			Title: "Station - Get hidden APs",
			Args:  []string{"station", "{wlan}", "get-hidden-access-points"},
			Prompts: []promptSpec{
				askWlan("station get-hidden-access-points"),
				optText("Mode (optional: rssi-dbms, empty for default): "),
			},
		}},
		{Label: "Scan for networks", Action: &action{
			Title:   "Station - Scan",
			Args:    []string{"station", "{wlan}", "scan"},
			Prompts: []promptSpec{askWlan("station scan")},
		}},
		{Label: "Show station info", Action: &action{
			Title:   "Station - Show",
			Args:    []string{"station", "{wlan}", "show"},
			Prompts: []promptSpec{askWlan("station show")},
		}},
		{Label: "Get BSSes", Action: &action{
			Title: "Station - Get BSSes",
			Args:  []string{"station", "{wlan}", "get-bsses"},
			Prompts: []promptSpec{
				askWlan("station get-bsses"),
				optText("Network (optional SSID, empty = all): "),
				optText("Security (optional, e.g. psk, empty = any): "),
			},
		}},
		{Label: "Change default station / adapter", Action: &action{
			Title:    "Station - Defaults updated",
			Defaults: true,
			Prompts: []promptSpec{
				{Kind: promptText, Label: "New default station (current %q, empty = keep): ", Optional: true},
				{Kind: promptText, Label: "New default adapter (current %q, empty = keep): ", Optional: true},
			},
		}},
		{Label: "Back"},
	},
}

var dppMenu = menuDef{
	Title: "IWCTL DPP SUBMENU",
	Items: []menuItem{
		{Label: "List DPP-capable devices", Action: &action{
			Title: "DPP - List",
			Args:  []string{"dpp", "list"},
		}},
		{Label: "Start DPP Enrollee", Action: &action{
			Title:   "DPP - Start Enrollee",
			Args:    []string{"dpp", "{wlan}", "start-enrollee"},
			Prompts: []promptSpec{askWlan("DPP")},
		}},
		{Label: "Start DPP Configurator", Action: &action{
			Title:   "DPP - Start Configurator",
			Args:    []string{"dpp", "{wlan}", "start-configurator"},
			Prompts: []promptSpec{askWlan("DPP")},
		}},
		{Label: "Stop DPP", Action: &action{
			Title:   "DPP - Stop",
			Args:    []string{"dpp", "{wlan}", "stop"},
			Prompts: []promptSpec{askWlan("DPP")},
		}},
		{Label: "Show DPP state", Action: &action{
			Title:   "DPP - Show",
			Args:    []string{"dpp", "{wlan}", "show"},
			Prompts: []promptSpec{askWlan("DPP")},
		}},
		{Label: "Back"},
	},
}

var pkexMenu = menuDef{
	Title: "IWCTL PKEX SUBMENU",
	Items: []menuItem{
		{Label: "List PKEX-capable devices", Action: &action{
			Title: "PKEX - List",
			Args:  []string{"pkex", "list"},
		}},
		{Label: "Stop PKEX", Action: &action{
			Title:   "PKEX - Stop",
			Args:    []string{"pkex", "{wlan}", "stop"},
			Prompts: []promptSpec{askWlan("PKEX")},
		}},
		{Label: "Show PKEX state", Action: &action{
			Title:   "PKEX - Show",
			Args:    []string{"pkex", "{wlan}", "show"},
			Prompts: []promptSpec{askWlan("PKEX")},
		}},
		{Label: "Start PKEX enrollee", Action: &action{
			Title: "PKEX - Enroll",
			Args:  []string{"pkex", "{wlan}", "enroll", "{key}"},
			Prompts: []promptSpec{
				askWlan("PKEX"),
				reqText("Shared code key: ", "key", "No key."),
				optText("Identifier (optional, empty for none): "),
			},
		}},
		{Label: "Start PKEX configurator", Action: &action{
			Title: "PKEX - Configure",
			Args:  []string{"pkex", "{wlan}", "configure", "{key}"},
			Prompts: []promptSpec{
				askWlan("PKEX"),
				reqText("Shared code key: ", "key", "No key."),
				optText("Identifier (optional, empty for none): "),
			},
		}},
		{Label: "Back"},
	},
}

var stationDebugMenu = menuDef{
	Title: "IWCTL STATION DEBUG SUBMENU",
	Items: []menuItem{
		{Label: "Connect to specific BSS (BSSID)", Action: &action{
			Title: "Debug - Connect BSSID",
			Args:  []string{"debug", "{wlan}", "connect", "{bssid}"},
			Prompts: []promptSpec{
				askWlan("debug"),
				reqText("BSSID (e.g. 00:11:22:33:44:55): ", "bssid", "No BSSID."),
			},
		}},
		{Label: "Roam to BSS (BSSID)", Action: &action{
			Title: "Debug - Roam BSSID",
			Args:  []string{"debug", "{wlan}", "roam", "{bssid}"},
			Prompts: []promptSpec{
				askWlan("debug"),
				reqText("BSSID to roam to: ", "bssid", "No BSSID."),
			},
		}},
		{Label: "Get networks (debug)", Action: &action{
			Title:   "Debug - Get networks",
			Args:    []string{"debug", "{wlan}", "get-networks"},
			Prompts: []promptSpec{askWlan("debug")},
		}},
		{Label: "Set AutoConnect on/off", Action: &action{
			Title: "Debug - AutoConnect",
			Args:  []string{"debug", "{wlan}", "autoconnect", "{value}"},
			Prompts: []promptSpec{
				askWlan("debug"),
				{Kind: promptOnOff, Label: "AutoConnect (on/off): ", Token: "value"},
			},
		}},
		{Label: "Back"},
	},
}

var mainMenu = menuDef{
	Title: "IWCTL HELPER",
	Items: []menuItem{
		{Label: "Adapters", Submenu: &adaptersMenu},
		{Label: "Ad-Hoc", Submenu: &adHocMenu},
		{Label: "Access Point", Submenu: &accessPointMenu},
		{Label: "Devices", Submenu: &devicesMenu},
		{Label: "Known Networks", Submenu: &knownNetworksMenu},
		{Label: "WiFi Simple Configuration", Submenu: &wscMenu},
		{Label: "Station", Submenu: &stationMenu},
		{Label: "Device Provisioning (DPP)", Submenu: &dppMenu},
		{Label: "Shared Code Device Provisioning (PKEX)", Submenu: &pkexMenu},
		{Label: "Station Debug", Submenu: &stationDebugMenu},
		{Label: "version", Action: &action{
			Title: "iwctl version",
			Args:  []string{"version"},
		}},
		{Label: "quit"},
	},
}

// labels returns the menu item labels in display order.
func (m *menuDef) labels() []string {
	out := make([]string, len(m.Items))
	for i, item := range m.Items {
		out[i] = item.Label
	}
	return out
}
