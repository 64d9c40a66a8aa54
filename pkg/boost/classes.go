package boost

import (
	theme "github.com/goliatone/go-theme"
)

// Theme token names for the class slots.
const (
	TokenDiv           = "form.div"
	TokenLabel         = "form.label"
	TokenWrapInput     = "form.wrapInput"
	TokenInput         = "form.input"
	TokenCheckboxDiv   = "form.checkboxDiv"
	TokenCheckboxLabel = "form.checkboxLabel"
	TokenCheckboxInput = "form.checkboxInput"
	TokenError         = "form.error"
	TokenErrorClass    = "form.errorClass"
	TokenSelect        = "form.select"
	TokenPicker        = "form.picker"
	TokenSubmit        = "form.submit"
	TokenSubmitDiv     = "form.submitDiv"
)

// Classes are the CSS classes the helper applies.
type Classes struct {
	Div           string
	Label         string
	WrapInput     string
	Input         string
	CheckboxDiv   string
	CheckboxLabel string
	CheckboxInput string
	Error         string
	ErrorClass    string
	Select        string
	Picker        string
	Submit        string
	SubmitDiv     string
}

// DefaultClasses returns the Bootstrap 4 classes.
func DefaultClasses() Classes {
	return Classes{
		Div:           "form-group row",
		Label:         "col-xs-12 col-md-3 form-control-label",
		WrapInput:     "col-xs-12 col-md-9",
		Input:         "form-control form-control-static",
		CheckboxDiv:   "form-check",
		CheckboxLabel: "form-check-label",
		CheckboxInput: "form-check-input",
		Error:         "help-block text-danger",
		ErrorClass:    "has-error error",
		Select:        "c-select",
		Picker:        "js-date-time-picker",
		Submit:        "btn btn-primary",
		SubmitDiv:     "submit",
	}
}

// Override returns c with every non-empty slot of other applied.
func (c Classes) Override(other Classes) Classes {
	for _, slot := range []struct {
		dst *string
		src string
	}{
		{&c.Div, other.Div},
		{&c.Label, other.Label},
		{&c.WrapInput, other.WrapInput},
		{&c.Input, other.Input},
		{&c.CheckboxDiv, other.CheckboxDiv},
		{&c.CheckboxLabel, other.CheckboxLabel},
		{&c.CheckboxInput, other.CheckboxInput},
		{&c.Error, other.Error},
		{&c.ErrorClass, other.ErrorClass},
		{&c.Select, other.Select},
		{&c.Picker, other.Picker},
		{&c.Submit, other.Submit},
		{&c.SubmitDiv, other.SubmitDiv},
	} {
		if slot.src != "" {
			*slot.dst = slot.src
		}
	}
	return c
}

// ClassesFromTokens reads the form.* tokens of a theme.
func ClassesFromTokens(tokens map[string]string) Classes {
	return Classes{
		Div:           tokens[TokenDiv],
		Label:         tokens[TokenLabel],
		WrapInput:     tokens[TokenWrapInput],
		Input:         tokens[TokenInput],
		CheckboxDiv:   tokens[TokenCheckboxDiv],
		CheckboxLabel: tokens[TokenCheckboxLabel],
		CheckboxInput: tokens[TokenCheckboxInput],
		Error:         tokens[TokenError],
		ErrorClass:    tokens[TokenErrorClass],
		Select:        tokens[TokenSelect],
		Picker:        tokens[TokenPicker],
		Submit:        tokens[TokenSubmit],
		SubmitDiv:     tokens[TokenSubmitDiv],
	}
}

// selectionTokens flattens a theme selection: manifest tokens overlaid with
// the selected variant's tokens.
func selectionTokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}

// Tokens returns the classes keyed by their form.* token names.
func (c Classes) Tokens() map[string]string {
	return map[string]string{
		TokenDiv:           c.Div,
		TokenLabel:         c.Label,
		TokenWrapInput:     c.WrapInput,
		TokenInput:         c.Input,
		TokenCheckboxDiv:   c.CheckboxDiv,
		TokenCheckboxLabel: c.CheckboxLabel,
		TokenCheckboxInput: c.CheckboxInput,
		TokenError:         c.Error,
		TokenErrorClass:    c.ErrorClass,
		TokenSelect:        c.Select,
		TokenPicker:        c.Picker,
		TokenSubmit:        c.Submit,
		TokenSubmitDiv:     c.SubmitDiv,
	}
}
