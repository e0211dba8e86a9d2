package panel

import "github.com/jask/tabdeck/internal/resource"

// Button is one entry of the button bar.
type Button int

const (
	ButtonDeleteAll Button = iota
	ButtonIncognito
	ButtonHistory
	ButtonTabs
	ButtonAddTab
	ButtonClose
)

// BarButtons lists the bar left to right. Delete-all exists only in history
// mode.
func BarButtons(historyMode bool) []Button {
	buttons := []Button{ButtonIncognito, ButtonHistory, ButtonTabs, ButtonAddTab, ButtonClose}
	if historyMode {
		return append([]Button{ButtonDeleteAll}, buttons...)
	}
	return buttons
}

// Icon picks the glyph; the two mode toggles show whether they are active.
func (b Button) Icon(historyMode bool) resource.IconID {
	switch b {
	case ButtonDeleteAll:
		return resource.IconDelete
	case ButtonIncognito:
		return resource.IconIncognito
	case ButtonHistory:
		if historyMode {
			return resource.IconHistoryActive
		}
		return resource.IconHistory
	case ButtonTabs:
		if historyMode {
			return resource.IconTabs
		}
		return resource.IconTabsActive
	case ButtonAddTab:
		return resource.IconAdd
	case ButtonClose:
		return resource.IconClose
	}
	return resource.IconNone
}

func (b Button) Label() resource.StringID {
	switch b {
	case ButtonDeleteAll:
		return resource.PanelDeleteAll
	case ButtonIncognito:
		return resource.PanelIncognito
	case ButtonHistory:
		return resource.PanelHistory
	case ButtonTabs:
		return resource.PanelTabs
	case ButtonAddTab:
		return resource.PanelAddTab
	case ButtonClose:
		return resource.PanelClose
	}
	return resource.None
}

// Active reports whether a mode toggle reflects the current mode.
func (b Button) Active(historyMode bool) bool {
	return (b == ButtonHistory && historyMode) || (b == ButtonTabs && !historyMode)
}
