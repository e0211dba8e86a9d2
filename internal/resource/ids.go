// Package resource resolves string and icon identifiers for the UI.
package resource

// StringID names a localized message. The empty id means "no text".
type StringID string

const (
	None StringID = ""

	AppTitle   StringID = "app_title"
	HomeNoTab  StringID = "home_no_tab"
	HomeHint   StringID = "home_hint"
	StatusCopy StringID = "status_copied"

	PanelDeleteAll   StringID = "panel_delete_all"
	PanelIncognito   StringID = "panel_incognito"
	PanelHistory     StringID = "panel_history"
	PanelTabs        StringID = "panel_tabs"
	PanelAddTab      StringID = "panel_add_tab"
	PanelClose       StringID = "panel_close"
	PanelNoTabs      StringID = "panel_no_tabs"
	PanelNoHistory   StringID = "panel_no_history"
	PanelNewTab      StringID = "panel_new_tab"
	PanelUntitled    StringID = "panel_untitled"
	PanelIncogPrefix StringID = "panel_incognito_prefix"

	SettingsTitle          StringID = "settings_title"
	SettingsReversed       StringID = "settings_reversed"
	SettingsReversedSum    StringID = "settings_reversed_summary"
	SettingsTwoColumns     StringID = "settings_two_columns"
	SettingsTwoColumnsSum  StringID = "settings_two_columns_summary"
	SettingsStartHistory   StringID = "settings_start_history"
	SettingsLanguage       StringID = "settings_language"
	SettingsLanguageEN     StringID = "settings_language_en"
	SettingsLanguageDE     StringID = "settings_language_de"
	SettingsLongPress      StringID = "settings_long_press"
	SettingsLongPressSum   StringID = "settings_long_press_summary"
	SettingsLongPressShort StringID = "settings_long_press_short"
	SettingsLongPressMed   StringID = "settings_long_press_medium"
	SettingsLongPressLong  StringID = "settings_long_press_long"
	SettingsHomepage       StringID = "settings_homepage"
	SettingsHistoryLimit   StringID = "settings_history_limit"
	SettingsClearHistory   StringID = "settings_clear_history"
	SettingsClearedHistory StringID = "settings_cleared_history"
	SettingsVersion        StringID = "settings_version"
	SettingsInvalid        StringID = "settings_invalid"

	LinkProjectSite   StringID = "link_project_site"
	LinkLatestRelease StringID = "link_latest_release"
	LinkSocial        StringID = "link_social"
	LinkChangeLogs    StringID = "link_change_logs"
	LinkContributors  StringID = "link_contributors"
	LinkArticles      StringID = "link_articles"
)

// IconID names a glyph.
type IconID int

const (
	IconNone IconID = iota
	IconGlobe
	IconHistory
	IconHistoryActive
	IconTabs
	IconTabsActive
	IconIncognito
	IconAdd
	IconClose
	IconDelete
	IconReverse
	IconColumns
	IconLanguage
	IconTimer
	IconHome
	IconNumber
	IconInfo
	IconLink
	IconCode
	IconRelease
	IconPeople
	IconArticle
	IconHistoryStart
)

var glyphs = map[IconID]string{
	IconGlobe:         "◎",
	IconHistory:       "◔",
	IconHistoryActive: "◕",
	IconTabs:          "▢",
	IconTabsActive:    "▣",
	IconIncognito:     "◐",
	IconAdd:           "+",
	IconClose:         "✕",
	IconDelete:        "⌫",
	IconReverse:       "⇅",
	IconColumns:       "▥",
	IconLanguage:      "¶",
	IconTimer:         "⧗",
	IconHome:          "⌂",
	IconNumber:        "#",
	IconInfo:          "ℹ",
	IconLink:          "↗",
	IconCode:          "⌘",
	IconRelease:       "⇪",
	IconPeople:        "☺",
	IconArticle:       "≡",
	IconHistoryStart:  "↺",
}

// Glyph returns the glyph for id, or a blank cell for unknown ids.
func Glyph(id IconID) string {
	if g, ok := glyphs[id]; ok {
		return g
	}
	return " "
}

// Resolver turns identifiers into display text.
type Resolver interface {
	Text(id StringID) string
	Icon(id IconID) string
}
