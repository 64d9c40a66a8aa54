package boost

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-boostform/pkg/htmltag"
	"github.com/goliatone/go-boostform/pkg/markup"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/render"
)

// Option configures a Helper.
type Option func(*config)

type config struct {
	tags          render.TagEmitter
	introspector  render.Introspector
	request       render.Request
	blocks        render.BlockRegistry
	translator    render.Translator
	locale        string
	inputDefaults optmap.Map
	classes       Classes
	themeConfig   *theme.RendererConfig
	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
	sanitizer     *markup.Sanitizer
	logger        *slog.Logger
	now           func() time.Time
	webroot       string
	imageBase     string
}

// WithTagEmitter overrides the tag emission helper.
func WithTagEmitter(tags render.TagEmitter) Option {
	return func(cfg *config) {
		cfg.tags = tags
	}
}

// WithIntrospector sets the source of model fields used by Inputs.
func WithIntrospector(introspector render.Introspector) Option {
	return func(cfg *config) {
		cfg.introspector = introspector
	}
}

// WithRequest sets the current request, consulted for the auto legend.
func WithRequest(request render.Request) Option {
	return func(cfg *config) {
		cfg.request = request
	}
}

// WithBlocks sets the content block registry PostLink appends to.
func WithBlocks(blocks render.BlockRegistry) Option {
	return func(cfg *config) {
		cfg.blocks = blocks
	}
}

// WithTranslator sets the translator for captions and legends.
func WithTranslator(translator render.Translator) Option {
	return func(cfg *config) {
		cfg.translator = translator
	}
}

// WithLocale sets the locale passed to the translator.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		cfg.locale = render.NormalizeLocale(locale)
	}
}

// WithInputDefaults merges defaults over the component input defaults for
// every Input call.
func WithInputDefaults(defaults optmap.Map) Option {
	return func(cfg *config) {
		cfg.inputDefaults = optmap.Merge(cfg.inputDefaults, defaults)
	}
}

// WithClasses overrides class slots; empty slots keep their current value.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = cfg.classes.Override(classes)
	}
}

// WithThemeConfig reads class slots from the form.* tokens of a resolved
// theme configuration.
func WithThemeConfig(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.themeConfig = cfg
	}
}

// WithThemeSelector resolves name and variant through selector when the
// helper is built and reads class slots from the selection's tokens.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
		cfg.themeName = strings.TrimSpace(name)
		cfg.themeVariant = strings.TrimSpace(variant)
	}
}

// WithSanitizer cleans free-form content (beforeInput, afterInput, legends).
func WithSanitizer(sanitizer *markup.Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitizer = sanitizer
	}
}

// WithLogger attaches a logger; transformations that no-op log at debug.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock overrides the time source used by DateTime.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithWebroot sets the base path of image submit captions (default "/") and
// the directory relative captions live in (default "img/").
func WithWebroot(webroot, imageBase string) Option {
	return func(cfg *config) {
		if webroot != "" {
			cfg.webroot = webroot
		}
		if imageBase != "" {
			cfg.imageBase = imageBase
		}
	}
}

// Helper renders Bootstrap form markup around a delegate renderer.
type Helper struct {
	renderer      render.FormRenderer
	tags          render.TagEmitter
	introspector  render.Introspector
	request       render.Request
	blocks        render.BlockRegistry
	translator    render.Translator
	locale        string
	inputDefaults optmap.Map
	formDefaults  optmap.Map
	classes       Classes
	sanitizer     *markup.Sanitizer
	logger        *slog.Logger
	now           func() time.Time
	webroot       string
	imageBase     string
}

// New constructs a Helper wrapping renderer.
func New(renderer render.FormRenderer, options ...Option) (*Helper, error) {
	if renderer == nil {
		return nil, errors.New("boost: form renderer is required")
	}
	cfg := config{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
		webroot:   "/",
		imageBase: "img/",
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	classes := DefaultClasses()
	if cfg.themeConfig != nil {
		classes = classes.Override(ClassesFromTokens(cfg.themeConfig.Tokens))
	}
	if cfg.themeSelector != nil {
		selection, err := cfg.themeSelector.Select(cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("boost: select theme %q: %w", cfg.themeName, err)
		}
		classes = classes.Override(ClassesFromTokens(selectionTokens(selection)))
	}
	classes = classes.Override(cfg.classes)

	h := &Helper{
		renderer:      renderer,
		tags:          cfg.tags,
		introspector:  cfg.introspector,
		request:       cfg.request,
		blocks:        cfg.blocks,
		translator:    cfg.translator,
		locale:        cfg.locale,
		inputDefaults: cfg.inputDefaults,
		classes:       classes,
		sanitizer:     cfg.sanitizer,
		logger:        cfg.logger,
		now:           cfg.now,
		webroot:       cfg.webroot,
		imageBase:     cfg.imageBase,
	}
	if h.tags == nil {
		h.tags = htmltag.New()
	}
	return h, nil
}

// Renderer returns the delegate renderer.
func (h *Helper) Renderer() render.FormRenderer {
	return h.renderer
}

// Classes returns the resolved class slots.
func (h *Helper) Classes() Classes {
	return h.classes
}

func (h *Helper) translate(key string, args ...any) string {
	return render.Translate(h.translator, h.locale, key, args...)
}

func (h *Helper) clean(fragment string) string {
	if h.sanitizer == nil {
		return fragment
	}
	return h.sanitizer.Sanitize(fragment)
}
