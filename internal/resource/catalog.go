package resource

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Languages lists the locales shipped with the binary.
var Languages = []string{"en", "de"}

// Catalog resolves messages from the embedded TOML locales.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

var _ Resolver = (*Catalog)(nil)

// NewCatalog loads every embedded locale and localizes for lang.
// Unknown or empty languages fall back to English.
func NewCatalog(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", f, err)
		}
	}

	c := &Catalog{bundle: bundle}
	c.SetLanguage(lang)
	return c, nil
}

// SetLanguage switches the active locale.
func (c *Catalog) SetLanguage(lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	c.tag = tag
	c.localizer = i18n.NewLocalizer(c.bundle, tag.String(), language.English.String())
}

func (c *Catalog) Language() language.Tag { return c.tag }

// Text returns the message for id. Missing messages render as the id itself.
func (c *Catalog) Text(id StringID) string {
	return c.Format(id, nil)
}

// Format renders id with template data.
func (c *Catalog) Format(id StringID, data map[string]any) string {
	if id == None {
		return ""
	}
	// A non-nil error also reports fallbacks to English, which still yield a message.
	msg, _ := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(id),
		TemplateData: data,
	})
	if msg == "" {
		return string(id)
	}
	return msg
}

func (c *Catalog) Icon(id IconID) string { return Glyph(id) }
