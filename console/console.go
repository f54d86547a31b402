// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package console holds the controller logic shared by the hedgectl
// commands: validating user input, parsing request bodies, and
// rendering results and errors as text.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Andreicr1/hedge-control/restclient"
	"github.com/Andreicr1/hedge-control/restdata"
)

// ErrRequired is returned when a required input is missing.
type ErrRequired struct {
	// Names lists the inputs that are all required.
	Names []string
}

func (e ErrRequired) Error() string {
	switch len(e.Names) {
	case 0:
		return "input is required"
	case 1:
		return e.Names[0] + " is required"
	}
	last := len(e.Names) - 1
	return strings.Join(e.Names[:last], ", ") + " and " + e.Names[last] + " are required"
}

// ErrBodyRequired is returned by Body when there is no request body.
var ErrBodyRequired = errors.New("Request body is required")

// Required trims value and returns it, or ErrRequired if nothing is
// left.
func Required(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrRequired{Names: []string{name}}
	}
	return value, nil
}

// RequiredAll checks a group of inputs that must all be supplied
// together, such as a period start and end.  names and values are
// parallel.  If any is blank, the error names the whole group.
func RequiredAll(names []string, values ...string) ([]string, error) {
	trimmed := make([]string, len(values))
	missing := false
	for i, value := range values {
		trimmed[i] = strings.TrimSpace(value)
		if trimmed[i] == "" {
			missing = true
		}
	}
	if missing {
		return nil, ErrRequired{Names: names}
	}
	return trimmed, nil
}

// Body parses a request body typed by the user.
func Body(text string) (restdata.Value, error) {
	value, err := restdata.Parse(text)
	if err != nil {
		return restdata.Value{}, fmt.Errorf("Invalid JSON: %v", unwrapInvalid(err))
	}
	if value.IsAbsent() {
		return restdata.Value{}, ErrBodyRequired
	}
	return value, nil
}

func unwrapInvalid(err error) error {
	var invalid restdata.ErrInvalidJSON
	if errors.As(err, &invalid) && invalid.Err != nil {
		return invalid.Err
	}
	return err
}

// Console writes command output.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// Run calls fn and prints its result, if it has one.  If fn fails,
// the error is printed and also returned.
func (c Console) Run(fn func() (restdata.Value, error)) error {
	value, err := fn()
	if err != nil {
		fmt.Fprint(c.Err, FormatError(err))
		return err
	}
	if text := restdata.Pretty(value); text != "" {
		fmt.Fprintln(c.Out, text)
	}
	return nil
}

// FormatError renders an error as the first line "HTTP <status>:
// <message>", followed by a blank line and the pretty-printed details
// if there are any.  Errors that never reached the server show "?" as
// the status.
func FormatError(err error) string {
	status := "?"
	var details restdata.Value
	var httpErr *restclient.Error
	if errors.As(err, &httpErr) {
		status = fmt.Sprint(httpErr.Status)
		details = httpErr.Details
	}
	out := fmt.Sprintf("HTTP %s: %s\n", status, err.Error())
	if text := restdata.Pretty(details); text != "" {
		out += "\n" + text + "\n"
	}
	return out
}

// Observation prints the observability probes: health and readiness
// as "label: value" lines, then the metrics export.
func (c Console) Observation(obs restclient.Observation) {
	c.section("Health", obs.Health)
	c.section("Ready", obs.Ready)
	fmt.Fprintln(c.Out, "Metrics")
	fmt.Fprint(c.Out, obs.Metrics)
	if obs.Metrics != "" && !strings.HasSuffix(obs.Metrics, "\n") {
		fmt.Fprintln(c.Out)
	}
}

func (c Console) section(title string, value restdata.Value) {
	fmt.Fprintln(c.Out, title)
	fields := value.Fields()
	if fields == nil && !value.IsAbsent() {
		fmt.Fprintf(c.Out, "  %s\n", value.Text())
	}
	for _, field := range fields {
		fmt.Fprintf(c.Out, "  %s: %s\n", field.Label, field.Value)
	}
	fmt.Fprintln(c.Out)
}
