package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"
)

// Option configures document loading and introspection.
type Option func(*config)

type config struct {
	files        fs.FS
	httpClient   *http.Client
	allowHTTP    bool
	timeout      time.Duration
	externalRefs bool
	validate     bool
}

// WithFileSystem resolves relative locations inside files instead of the OS
// filesystem.
func WithFileSystem(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithHTTPClient enables http(s) locations using client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
		cfg.allowHTTP = client != nil
	}
}

// WithHTTPFallback enables http(s) locations with a default client capped at
// timeout.
func WithHTTPFallback(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.allowHTTP = true
		cfg.timeout = timeout
	}
}

// WithExternalRefs lets kin-openapi follow $refs into other documents.
func WithExternalRefs(enabled bool) Option {
	return func(cfg *config) {
		cfg.externalRefs = enabled
	}
}

// WithValidation validates the document before introspection.
func WithValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validate = enabled
	}
}

func newConfig(options []Option) config {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Load reads the document at location (a path, an fs.FS name when
// WithFileSystem is set, or an http(s) URL) and introspects it.
func Load(ctx context.Context, location string, options ...Option) (*Introspector, error) {
	cfg := newConfig(options)
	data, err := cfg.read(ctx, location)
	if err != nil {
		return nil, err
	}
	return fromData(ctx, data, cfg)
}

func (cfg config) read(ctx context.Context, location string) ([]byte, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("openapi: location is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		if !cfg.allowHTTP {
			return nil, errors.New("openapi: http support disabled")
		}
		return cfg.fetch(ctx, location)
	case cfg.files != nil:
		data, err := fs.ReadFile(cfg.files, location)
		if err != nil {
			return nil, fmt.Errorf("openapi: read %q: %w", location, err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("openapi: read %q: %w", location, err)
		}
		return data, nil
	}
}

func (cfg config) fetch(ctx context.Context, url string) ([]byte, error) {
	client := cfg.httpClient
	if client == nil {
		client = &http.Client{Timeout: cfg.timeout}
	} else if cfg.timeout > 0 && client.Timeout == 0 {
		clone := *client
		clone.Timeout = cfg.timeout
		client = &clone
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi: build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi: fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("openapi: fetch %q: unexpected status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi: read body: %w", err)
	}
	return data, nil
}
