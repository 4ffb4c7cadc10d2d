package i18n

import (
	"embed"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to
const BaseLocale = "en"

// Key identifies a localized message
type Key string

// Message keys used by the /goto flow
const (
	KeyNotInGuild        Key = "goto.not_in_guild"
	KeyNotInVoice        Key = "goto.not_in_voice"
	KeyNoOccupants       Key = "goto.no_occupants"
	KeyNoVoiceChannels   Key = "goto.no_voice_channels"
	KeyNoDestinations    Key = "goto.no_destinations"
	KeyPickerPrompt      Key = "goto.picker_prompt"
	KeyPickerPlaceholder Key = "goto.picker_placeholder"
	KeyPickerOption      Key = "goto.picker_option"
	KeyPickerCancel      Key = "goto.picker_cancel"
	KeyInvalidSelection  Key = "goto.invalid_selection"
	KeyIdenticalChannel  Key = "goto.identical_channel"
	KeyCancelled         Key = "goto.cancelled"
	KeyMoving            Key = "goto.moving"
	KeyMoved             Key = "goto.moved"
	KeyMoveFailures      Key = "goto.move_failures"
	KeyError             Key = "goto.error"

	KeyCommandDescription Key = "goto.command_description"
)

var allKeys = []Key{
	KeyNotInGuild, KeyNotInVoice, KeyNoOccupants, KeyNoVoiceChannels, KeyNoDestinations,
	KeyPickerPrompt, KeyPickerPlaceholder, KeyPickerOption, KeyPickerCancel,
	KeyInvalidSelection, KeyIdenticalChannel, KeyCancelled,
	KeyMoving, KeyMoved, KeyMoveFailures, KeyError,
	KeyCommandDescription,
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog renders localized messages for one locale
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// Load builds a catalog for the locale from the embedded locale files.
// overridePath optionally points to a YAML file replacing some messages of that locale.
func Load(locale, overridePath string) (*Catalog, error) {
	files, err := loadEmbedded()
	if err != nil {
		return nil, err
	}

	if locale == "" {
		locale = BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid locale", goerr.V("locale", locale))
	}
	if _, ok := files[tag]; !ok {
		return nil, goerr.New("unsupported locale",
			goerr.V("locale", locale),
			goerr.V("supported", SupportedLocales()))
	}

	if overridePath != "" {
		override, err := loadOverride(overridePath, tag)
		if err != nil {
			return nil, err
		}
		merged := make(map[string]string, len(files[tag].Messages))
		for k, v := range files[tag].Messages {
			merged[k] = v
		}
		for k, v := range override.Messages {
			merged[k] = v
		}
		files[tag] = catalogFile{Locale: files[tag].Locale, Messages: merged}
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.Make(BaseLocale)))
	for t, file := range files {
		for key, msg := range file.Messages {
			if err := builder.SetString(t, key, msg); err != nil {
				return nil, goerr.Wrap(err, "failed to register message",
					goerr.V("locale", file.Locale),
					goerr.V("key", key))
			}
		}
	}

	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// MustLoad is Load for known-good arguments; it panics on error
func MustLoad(locale string) *Catalog {
	c, err := Load(locale, "")
	if err != nil {
		panic(err)
	}
	return c
}

// Text renders the message for key with printf-style arguments
func (c *Catalog) Text(key Key, args ...any) string {
	return c.printer.Sprintf(string(key), args...)
}

// Locale returns the catalog's locale
func (c *Catalog) Locale() string {
	return c.tag.String()
}

// SupportedLocales lists the embedded locales
func SupportedLocales() []string {
	entries, err := fs.Glob(embeddedLocales, "locales/*.yaml")
	if err != nil {
		return nil
	}
	locales := make([]string, 0, len(entries))
	for _, e := range entries {
		locales = append(locales, strings.TrimSuffix(strings.TrimPrefix(e, "locales/"), ".yaml"))
	}
	sort.Strings(locales)
	return locales
}

func loadEmbedded() (map[language.Tag]catalogFile, error) {
	paths, err := fs.Glob(embeddedLocales, "locales/*.yaml")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list locale files")
	}

	files := make(map[language.Tag]catalogFile, len(paths))
	for _, path := range paths {
		data, err := fs.ReadFile(embeddedLocales, path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read locale file", goerr.V("path", path))
		}
		file, err := parseCatalogFile(data)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid locale file", goerr.V("path", path))
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid locale in file", goerr.V("path", path))
		}
		files[tag] = file
	}

	base, ok := files[language.Make(BaseLocale)]
	if !ok {
		return nil, goerr.New("base locale is not embedded", goerr.V("locale", BaseLocale))
	}
	for _, key := range allKeys {
		if _, ok := base.Messages[string(key)]; !ok {
			return nil, goerr.New("base locale is missing a message", goerr.V("key", key))
		}
	}

	return files, nil
}

func loadOverride(path string, tag language.Tag) (*catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "messages file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read messages file", goerr.V("path", path))
	}

	file, err := parseCatalogFile(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid messages file", goerr.V("path", path))
	}

	if file.Locale != "" {
		fileTag, err := language.Parse(file.Locale)
		if err != nil || fileTag != tag {
			return nil, goerr.New("messages file locale does not match",
				goerr.V("path", path),
				goerr.V("file_locale", file.Locale),
				goerr.V("locale", tag.String()))
		}
	}

	known := make(map[string]bool, len(allKeys))
	for _, key := range allKeys {
		known[string(key)] = true
	}
	for key := range file.Messages {
		if !known[key] {
			return nil, goerr.New("unknown message key", goerr.V("path", path), goerr.V("key", key))
		}
	}

	return &file, nil
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return catalogFile{}, goerr.Wrap(err, "failed to parse YAML")
	}
	if file.Messages == nil {
		return catalogFile{}, goerr.New("messages map is required")
	}
	return file, nil
}
