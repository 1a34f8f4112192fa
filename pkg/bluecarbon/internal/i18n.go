package internal

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Catalog holds the bundled message files and matches requested locales against them.
type Catalog struct {
	bundle  *i18n.Bundle
	tags    []language.Tag
	matcher language.Matcher
}

var (
	catalogOnce    sync.Once
	defaultCatalog *Catalog
	catalogErr     error
)

// DefaultCatalog returns the catalog built from the embedded message files.
func DefaultCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		defaultCatalog, catalogErr = NewCatalog(localeFS, "locales")
	})
	return defaultCatalog, catalogErr
}

// NewCatalog loads every active.<lang>.toml file in dir. English is the fallback language.
func NewCatalog(fsys embed.FS, dir string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := path.Join(dir, entry.Name())
		data, err := fsys.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	tags := []language.Tag{language.English}
	for _, tag := range bundle.LanguageTags() {
		if tag != language.English {
			tags = append(tags, tag)
		}
	}

	return &Catalog{
		bundle:  bundle,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Languages returns the bundled languages, fallback first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

// Translator returns a translator for the closest bundled match of lang.
// Unsupported or malformed tags fall back to English.
func (c *Catalog) Translator(lang string) *Translator {
	requested, err := language.Parse(lang)
	if err != nil {
		requested = language.English
	}
	_, idx, _ := c.matcher.Match(requested)
	tag := c.tags[idx]

	return &Translator{
		localizer: i18n.NewLocalizer(c.bundle, tag.String()),
		tag:       tag,
	}
}

// Translator renders catalog messages in one language.
// A nil Translator returns message ids unchanged.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// Language returns the BCP 47 tag the translator renders.
func (t *Translator) Language() string {
	if t == nil {
		return language.English.String()
	}
	return t.tag.String()
}

// T returns the message for id, or id itself when no language defines it.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf is T with template data, e.g. {"Role": "Auditor"} for "Sign in as {{.Role}}".
func (t *Translator) Tf(id string, data map[string]any) string {
	if t == nil {
		return id
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		if msg != "" {
			return msg
		}
		GetInternalLogger().Debug("missing message", "id", id, "lang", t.tag.String(), "error", err)
		return id
	}
	return msg
}
