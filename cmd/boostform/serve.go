package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-boostform"
	"github.com/goliatone/go-boostform/pkg/config"
	"github.com/goliatone/go-boostform/pkg/model"
	"github.com/goliatone/go-boostform/pkg/openapi"
	"github.com/goliatone/go-boostform/pkg/render"
	"github.com/goliatone/go-boostform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-boostform/pkg/view"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

const defaultStylesheet = "https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css"

type serveFlags struct {
	schema     string
	config     string
	addr       string
	templates  string
	stylesheet string
}

func parseServeFlags(args []string) (serveFlags, error) {
	var f serveFlags
	set := flag.NewFlagSet("serve", flag.ContinueOnError)
	set.StringVar(&f.schema, "schema", env("BOOSTFORM_SCHEMA", ""), "OpenAPI document path or URL")
	set.StringVar(&f.config, "config", env("BOOSTFORM_CONFIG", ""), "helper configuration file (JSON or YAML)")
	set.StringVar(&f.addr, "addr", env("BOOSTFORM_ADDR", ":8080"), "listen address")
	set.StringVar(&f.templates, "templates", "", "directory overriding the embedded preview templates")
	set.StringVar(&f.stylesheet, "stylesheet", defaultStylesheet, "Bootstrap stylesheet URL")
	if err := set.Parse(args); err != nil {
		return f, err
	}
	return f, nil
}

func runServe(ctx context.Context, args []string) error {
	flags, err := parseServeFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	introspector, err := loadSchema(ctx, flags.schema)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv, err := newServer(cfg, introspector, flags, logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              flags.addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("serving form previews", "addr", flags.addr, "models", introspector.Models())
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type server struct {
	cfg          config.Config
	introspector *openapi.Introspector
	engine       *gotemplate.Engine
	stylesheet   string
	logger       *slog.Logger
}

func newServer(cfg config.Config, introspector *openapi.Introspector, flags serveFlags, logger *slog.Logger) (*server, error) {
	files, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, err
	}
	engineOpts := []gotemplate.Option{
		gotemplate.WithFS(files),
		gotemplate.WithGlobalData(map[string]any{"stylesheet": flags.stylesheet}),
	}
	if flags.templates != "" {
		engineOpts = append(engineOpts, gotemplate.WithBaseDir(flags.templates))
	}
	engine, err := gotemplate.New(engineOpts...)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &server{
		cfg:          cfg,
		introspector: introspector,
		engine:       engine,
		stylesheet:   flags.stylesheet,
		logger:       logger,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Get("/forms/{model}/{action}", s.form)
	return r
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	s.write(w, "index", map[string]any{"models": s.introspector.Models()})
}

func (s *server) form(w http.ResponseWriter, r *http.Request) {
	modelName := chi.URLParam(r, "model")
	fields := s.introspector.Fields(modelName)
	if len(fields) == 0 {
		http.NotFound(w, r)
		return
	}

	values, errs := bindQuery(modelName, r)
	form, err := boostform.NewForm(s.cfg, boostform.Request{
		Model:        modelName,
		Introspector: s.introspector,
		Request:      view.FromHTTP(r),
		Values:       values,
		Errors:       errs,
	}, boostform.WithLogger(s.logger))
	if err != nil {
		s.fail(w, err)
		return
	}

	action := chi.URLParam(r, "action")
	data := map[string]any{
		"model":     modelName,
		"action":    action,
		"fields":    previewFields(fields, splitList(r.URL.Query().Get("exclude"))),
		"url":       r.URL.Path,
		"deleteURL": "/forms/" + modelName + "/delete",
		"submit":    "Submit",
	}
	for name, fn := range form.TemplateFuncs() {
		data[name] = fn
	}
	s.write(w, "form", data)
}

func (s *server) write(w http.ResponseWriter, name string, data map[string]any) {
	html, err := s.engine.Render(name, data)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("render preview", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// previewFields lists name and label of every field not excluded.
func previewFields(fields []model.Field, exclude []string) []any {
	out := make([]any, 0, len(fields))
	for _, field := range fields {
		if slices.Contains(exclude, field.Name) {
			continue
		}
		out = append(out, map[string]any{"name": field.Name, "label": model.Humanize(field.Name)})
	}
	return out
}

// bindQuery reads preview values from the query string: "title=Hello" binds
// Model.title and "error.title=Too short" records a validation message.
func bindQuery(modelName string, r *http.Request) (map[string]any, render.ErrorSet) {
	values := map[string]any{}
	messages := map[string][]string{}
	for key, vals := range r.URL.Query() {
		if key == "exclude" || len(vals) == 0 {
			continue
		}
		if field, ok := strings.CutPrefix(key, "error."); ok {
			messages[modelName+"."+field] = vals
			continue
		}
		values[modelName+"."+key] = vals[0]
	}
	return values, render.NewErrorSet(messages)
}
