// Command boostform renders Bootstrap forms for the models of an OpenAPI
// document, either once to stdout or from a preview server.
//
//	boostform render -schema api.yaml -model Widget -action edit
//	boostform serve -schema api.yaml -addr :8080
//
// BOOSTFORM_SCHEMA, BOOSTFORM_CONFIG and BOOSTFORM_ADDR supply flag
// defaults; a .env file in the working directory is read when present.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/goliatone/go-boostform/pkg/config"
	"github.com/goliatone/go-boostform/pkg/openapi"
)

const usage = `usage: boostform <command> [flags]

commands:
  render   render one form to stdout or a file
  serve    serve form previews over HTTP
`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(context.Background(), os.Args[2:], os.Stdout)
	case "serve":
		err = runServe(context.Background(), os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("boostform %s: %v", os.Args[1], err)
	}
}

func env(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func loadConfig(path string) (config.Config, error) {
	if strings.TrimSpace(path) == "" {
		return config.Config{}, nil
	}
	return config.LoadFile(path)
}

func loadSchema(ctx context.Context, location string) (*openapi.Introspector, error) {
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("schema location is required (flag -schema or BOOSTFORM_SCHEMA)")
	}
	return openapi.Load(ctx, location, openapi.WithExternalRefs(true))
}

// pickModel returns name, or the only model of the document when name is
// empty.
func pickModel(introspector *openapi.Introspector, name string) (string, error) {
	models := introspector.Models()
	if name = strings.TrimSpace(name); name != "" {
		for _, model := range models {
			if model == name {
				return name, nil
			}
		}
		return "", fmt.Errorf("model %q not found (have %s)", name, strings.Join(models, ", "))
	}
	if len(models) == 1 {
		return models[0], nil
	}
	return "", fmt.Errorf("model flag is required (have %s)", strings.Join(models, ", "))
}
