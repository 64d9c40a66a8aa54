package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-boostform"
	"github.com/goliatone/go-boostform/pkg/optmap"
	"github.com/goliatone/go-boostform/pkg/prompt"
	"github.com/goliatone/go-boostform/pkg/view"
)

type renderFlags struct {
	schema      string
	config      string
	model       string
	action      string
	url         string
	submit      string
	legend      bool
	exclude     string
	output      string
	interactive bool
}

func parseRenderFlags(args []string) (renderFlags, error) {
	var f renderFlags
	set := flag.NewFlagSet("render", flag.ContinueOnError)
	set.StringVar(&f.schema, "schema", env("BOOSTFORM_SCHEMA", ""), "OpenAPI document path or URL")
	set.StringVar(&f.config, "config", env("BOOSTFORM_CONFIG", ""), "helper configuration file (JSON or YAML)")
	set.StringVar(&f.model, "model", "", "model (schema component) to render")
	set.StringVar(&f.action, "action", "add", "request action used for the legend (add, edit, ...)")
	set.StringVar(&f.url, "url", "", "form action URL")
	set.StringVar(&f.submit, "submit", "Submit", "submit caption; empty omits the button")
	set.BoolVar(&f.legend, "legend", true, "wrap the fields in a fieldset with a legend")
	set.StringVar(&f.exclude, "exclude", "", "comma separated fields to skip")
	set.StringVar(&f.output, "output", "", "output file (stdout if empty)")
	set.BoolVar(&f.interactive, "interactive", false, "prompt for field values before rendering")
	if err := set.Parse(args); err != nil {
		return f, err
	}
	return f, nil
}

func runRender(ctx context.Context, args []string, stdout io.Writer) error {
	flags, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	return renderForm(ctx, flags, prompt.NewSurveyDriver(), stdout)
}

func renderForm(ctx context.Context, flags renderFlags, driver prompt.Driver, stdout io.Writer) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	introspector, err := loadSchema(ctx, flags.schema)
	if err != nil {
		return err
	}
	modelName, err := pickModel(introspector, flags.model)
	if err != nil {
		return err
	}
	exclude := splitList(flags.exclude)

	var values map[string]any
	if flags.interactive {
		values, err = prompt.Collect(ctx, driver, modelName, introspector.Fields(modelName), prompt.WithSkip(exclude...))
		if err != nil {
			return err
		}
	}

	form, err := boostform.NewForm(cfg, boostform.Request{
		Model:        modelName,
		Introspector: introspector,
		Request:      view.StaticRequest(flags.action),
		Values:       values,
	})
	if err != nil {
		return err
	}

	createOpts := optmap.Map{}
	if flags.url != "" {
		createOpts["url"] = flags.url
	}
	html, err := form.RenderModel(createOpts, optmap.Map{"legend": flags.legend}, exclude, flags.submit)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		_, err = fmt.Fprintf(stdout, "Form written to %s\n", flags.output)
		return err
	}
	_, err = fmt.Fprintln(stdout, html)
	return err
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
