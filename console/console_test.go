// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Andreicr1/hedge-control/restclient"
	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	value, err := Required("order_id", "  o-1 ")
	if assert.NoError(t, err) {
		assert.Equal(t, "o-1", value)
	}

	_, err = Required("order_id", "   ")
	if assert.Error(t, err) {
		assert.Equal(t, "order_id is required", err.Error())
		assert.IsType(t, ErrRequired{}, err)
	}
}

func TestRequiredAll(t *testing.T) {
	names := []string{"period_start", "period_end"}
	values, err := RequiredAll(names, " 2026-01-01", "2026-01-31 ")
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"2026-01-01", "2026-01-31"}, values)
	}

	_, err = RequiredAll(names, "2026-01-01", "")
	if assert.Error(t, err) {
		assert.Equal(t, "period_start and period_end are required", err.Error())
	}

	_, err = RequiredAll([]string{"object_type", "object_id", "as_of_date"}, "", "", "")
	if assert.Error(t, err) {
		assert.Equal(t, "object_type, object_id and as_of_date are required", err.Error())
	}
}

func TestBody(t *testing.T) {
	value, err := Body(` {"quantity_mt": 10} `)
	if assert.NoError(t, err) {
		assert.Equal(t, "10", value.Get("quantity_mt").Text())
	}

	_, err = Body("  ")
	assert.Equal(t, ErrBodyRequired, err)
	assert.Equal(t, "Request body is required", err.Error())

	_, err = Body(`{"quantity_mt": }`)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Invalid JSON: ")
	}
}

func TestRunSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	c := Console{Out: &out, Err: &errOut}
	err := c.Run(func() (restdata.Value, error) {
		return restdata.Parse(`{"id":"o-1"}`)
	})
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"o-1\"\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunNoBody(t *testing.T) {
	var out, errOut bytes.Buffer
	c := Console{Out: &out, Err: &errOut}
	err := c.Run(func() (restdata.Value, error) { return restdata.Value{}, nil })
	assert.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestRunHTTPError(t *testing.T) {
	details, err := restdata.Parse(`{"detail":"Order not found"}`)
	require.NoError(t, err)
	httpErr := &restclient.Error{
		Status:     404,
		StatusText: "Not Found",
		URL:        "https://api.example.com/api/v1/orders/x",
		Details:    details,
	}

	var out, errOut bytes.Buffer
	c := Console{Out: &out, Err: &errOut}
	err = c.Run(func() (restdata.Value, error) { return restdata.Value{}, httpErr })
	assert.Equal(t, httpErr, err)
	assert.Empty(t, out.String())
	assert.Equal(t,
		"HTTP 404: Request failed with status 404 Not Found\n\n{\n  \"detail\": \"Order not found\"\n}\n",
		errOut.String())
}

func TestFormatErrorNoStatus(t *testing.T) {
	assert.Equal(t, "HTTP ?: connection refused\n", FormatError(errors.New("connection refused")))
}

func TestFormatErrorTextDetails(t *testing.T) {
	err := &restclient.Error{Status: 500, StatusText: "Internal Server Error", Details: restdata.TextValue("boom")}
	assert.Equal(t, "HTTP 500: Request failed with status 500 Internal Server Error\n\nboom\n", FormatError(err))
}

func TestObservation(t *testing.T) {
	health, err := restdata.Parse(`{"status":"ok","version":"1.2"}`)
	require.NoError(t, err)
	ready, err := restdata.Parse(`{"status":"ready","checks":{"db":true}}`)
	require.NoError(t, err)

	var out bytes.Buffer
	Console{Out: &out}.Observation(restclient.Observation{
		Health:  health,
		Ready:   ready,
		Metrics: "up 1",
	})
	assert.Equal(t, "Health\n  status: ok\n  version: 1.2\n\n"+
		"Ready\n  status: ready\n  checks: {\"db\":true}\n\n"+
		"Metrics\nup 1\n", out.String())
}
