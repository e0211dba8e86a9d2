package core

import "strings"

// Scopes used by the bindings below.
const (
	ScopeHome         = "home"
	ScopePanelTabs    = "panel:tabs"
	ScopePanelHistory = "panel:history"
	ScopePanelBar     = "panel:bar"
	ScopeSettings     = "screen:settings"
	ScopeChoice       = "screen:settings:choice"
	ScopeEditor       = "screen:settings:editor"
)

var panelScopes = []string{ScopePanelTabs, ScopePanelHistory, ScopePanelBar}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeHome}},
		{Keys: []string{"t"}, Action: "open-panel", Description: "tabs", Scopes: []string{ScopeHome}},
		{Keys: []string{"h"}, Action: "open-history", Description: "history", Scopes: []string{ScopeHome}},
		{Keys: []string{"s"}, Action: "open-settings", Description: "settings", Scopes: []string{ScopeHome}},
		{Keys: []string{"y"}, Action: "copy-url", Description: "copy url", Scopes: []string{ScopeHome}},

		{Keys: []string{"up", "k"}, Action: "up", Description: "up", Scopes: []string{ScopePanelTabs, ScopePanelHistory, ScopeSettings, ScopeChoice}},
		{Keys: []string{"down", "j"}, Action: "down", Description: "down", Scopes: []string{ScopePanelTabs, ScopePanelHistory, ScopeSettings, ScopeChoice}},
		{Keys: []string{"left", "h"}, Action: "left", Description: "left", Scopes: append([]string{ScopeSettings}, panelScopes...)},
		{Keys: []string{"right", "l"}, Action: "right", Description: "right", Scopes: append([]string{ScopeSettings}, panelScopes...)},
		{Keys: []string{"enter", " "}, Action: "select", Description: "select", Scopes: append([]string{ScopeSettings, ScopeChoice}, panelScopes...)},
		{Keys: []string{"L"}, Action: "long-press", Description: "long press", Scopes: panelScopes},
		{Keys: []string{"x", "delete"}, Action: "close-tab", Description: "close tab", Scopes: []string{ScopePanelTabs}},
		{Keys: []string{"tab"}, Action: "focus-bar", Description: "bar", Scopes: panelScopes},
		{Keys: []string{"["}, Action: "bar-scroll-left", Description: "scroll bar", Scopes: panelScopes},
		{Keys: []string{"]"}, Action: "bar-scroll-right", Description: "", Scopes: panelScopes},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: append([]string{ScopeSettings, ScopeChoice, ScopeEditor}, panelScopes...)},
		{Keys: []string{"t"}, Action: "close", Scopes: panelScopes},
		{Keys: []string{"enter"}, Action: "confirm", Description: "save", Scopes: []string{ScopeEditor}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
