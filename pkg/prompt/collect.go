package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-boostform/pkg/model"
)

// Option customises Collect.
type Option func(*collector)

// WithDefaults pre-fills prompts from existing values keyed by dotted path
// ("Widget.name").
func WithDefaults(values map[string]any) Option {
	return func(c *collector) {
		c.defaults = values
	}
}

// WithSkip excludes the named fields from prompting.
func WithSkip(names ...string) Option {
	return func(c *collector) {
		for _, name := range names {
			c.skip[name] = true
		}
	}
}

type collector struct {
	driver   Driver
	model    string
	defaults map[string]any
	skip     map[string]bool
}

// Collect asks for a value per field and returns them keyed by dotted path,
// ready for basicform.WithValues. Primary keys and binary fields are not
// prompted.
func Collect(ctx context.Context, driver Driver, modelName string, fields []model.Field, options ...Option) (map[string]any, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	c := &collector{
		driver: driver,
		model:  strings.TrimSpace(modelName),
		skip:   map[string]bool{},
	}
	for _, option := range options {
		if option != nil {
			option(c)
		}
	}
	if c.model != "" {
		if err := driver.Info(ctx, "Values for "+model.Humanize(model.Underscore(c.model))); err != nil {
			return nil, err
		}
	}

	values := make(map[string]any, len(fields))
	for _, field := range fields {
		if field.PrimaryKey || field.Type == model.FieldTypeBinary || c.skip[field.Name] {
			continue
		}
		value, err := c.ask(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		values[c.key(field.Name)] = value
	}
	return values, nil
}

func (c *collector) key(name string) string {
	if c.model == "" {
		return name
	}
	return c.model + "." + name
}

func (c *collector) defaultString(name string) string {
	value, ok := c.defaults[c.key(name)]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func (c *collector) ask(ctx context.Context, field model.Field) (any, error) {
	message := model.Humanize(field.Name)
	current := c.defaultString(field.Name)

	switch {
	case field.Type == model.FieldTypeBoolean:
		answer, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: current == "1" || strings.EqualFold(current, "true"),
		})
		if err != nil {
			return nil, err
		}
		if answer {
			return "1", nil
		}
		return "0", nil

	case len(field.Choices) > 0:
		options := make([]string, 0, len(field.Choices))
		index := 0
		for i, choice := range field.Choices {
			label := choice.Label
			if label == "" {
				label = choice.Value
			}
			options = append(options, label)
			if choice.Value == current {
				index = i
			}
		}
		selected, err := c.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: index,
		})
		if err != nil {
			return nil, err
		}
		if selected < 0 || selected >= len(field.Choices) {
			return nil, fmt.Errorf("selection %d out of range", selected)
		}
		return field.Choices[selected].Value, nil

	case field.Type == model.FieldTypeText:
		return c.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current})

	case isSecret(field.Name):
		return c.driver.Password(ctx, InputConfig{Message: message, Validator: validator(field)})

	default:
		return c.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   current,
			Validator: validator(field),
		})
	}
}

func isSecret(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "password") || strings.Contains(lower, "passwd")
}

// validator checks required presence, length and numeric syntax.
func validator(field model.Field) func(string) error {
	return func(answer string) error {
		answer = strings.TrimSpace(answer)
		if answer == "" {
			if field.Required {
				return errors.New("value is required")
			}
			return nil
		}
		if field.Length > 0 && len([]rune(answer)) > field.Length {
			return fmt.Errorf("value exceeds %d characters", field.Length)
		}
		switch field.Type {
		case model.FieldTypeInteger:
			if _, err := strconv.ParseInt(answer, 10, 64); err != nil {
				return errors.New("value must be an integer")
			}
		case model.FieldTypeFloat:
			if _, err := strconv.ParseFloat(answer, 64); err != nil {
				return errors.New("value must be a number")
			}
		}
		return nil
	}
}
