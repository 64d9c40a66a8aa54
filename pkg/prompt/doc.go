// Package prompt collects field values interactively so a form can be
// previewed with realistic bound data. The survey-backed Driver is the
// default; tests supply their own.
package prompt
