// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/Andreicr1/hedge-control/restdata"
)

// GetJSON retrieves the JSON document at a logical API path.  An HTTP
// failure produces an *Error whose Details is the parsed response
// body, or absent if it was not JSON.  A successful response whose
// body is not JSON yields an absent Value and no error.
func (c *Client) GetJSON(ctx context.Context, path string) (restdata.Value, error) {
	resp, reqURL, err := c.do(ctx, "GET", path, nil, restdata.JSONMediaType)
	if err != nil {
		return restdata.Value{}, err
	}
	defer resp.Body.Close()
	return c.readJSON(resp, reqURL)
}

// GetText retrieves the plain-text document at a logical API path.
// An HTTP failure produces an *Error whose Details is the response
// text.
func (c *Client) GetText(ctx context.Context, path string) (string, error) {
	resp, reqURL, err := c.do(ctx, "GET", path, nil, restdata.TextMediaType)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.Logger.WithError(err).WithField("url", reqURL).Debug("could not read response body")
		body = nil
	}
	text := string(body)
	if !isSuccess(resp) {
		return "", newHTTPError(resp, reqURL, restdata.TextValue(text))
	}
	return text, nil
}

// PostJSON sends body, serialized as JSON, to a logical API path and
// returns the JSON response.  The outcome is reported the same way as
// GetJSON.
func (c *Client) PostJSON(ctx context.Context, path string, body interface{}) (restdata.Value, error) {
	in, err := restdata.Marshal(body)
	if err != nil {
		return restdata.Value{}, err
	}
	resp, reqURL, err := c.do(ctx, "POST", path, in, restdata.JSONMediaType)
	if err != nil {
		return restdata.Value{}, err
	}
	defer resp.Body.Close()
	return c.readJSON(resp, reqURL)
}

// do resolves path and performs one request.  If in is non-nil it is
// sent as a JSON body.  The caller must close the response body.
func (c *Client) do(ctx context.Context, method, path string, in []byte, accept string) (*http.Response, string, error) {
	target, err := c.URL(path)
	if err != nil {
		return nil, target, err
	}
	reqURL, err := c.absolute(target)
	if err != nil {
		return nil, target, err
	}

	var body io.Reader
	if in != nil {
		body = bytes.NewReader(in)
	}
	req, err := http.NewRequest(method, reqURL, body)
	if err != nil {
		return nil, reqURL, err
	}
	req = req.WithContext(ctx)
	if in != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, reqURL, err
	}
	return resp, responseURL(resp, reqURL), nil
}

// absolute resolves a same-origin path against the location.
func (c *Client) absolute(target string) (string, error) {
	if IsAbsoluteURL(target) {
		return target, nil
	}
	loc := c.Location()
	if loc == nil || loc.Host == "" {
		return "", ErrNoLocation
	}
	ref, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	return loc.ResolveReference(ref).String(), nil
}

// readJSON consumes a JSON response.  Body read and parse failures
// degrade to an absent value.
func (c *Client) readJSON(resp *http.Response, reqURL string) (restdata.Value, error) {
	var value restdata.Value
	body, err := ioutil.ReadAll(resp.Body)
	if err == nil {
		value, err = restdata.ParseBytes(body)
	}
	if err != nil {
		c.Logger.WithError(err).WithField("url", reqURL).Debug("could not read JSON response body")
		value = restdata.Value{}
	}
	if !isSuccess(resp) {
		return restdata.Value{}, newHTTPError(resp, reqURL, value)
	}
	return value, nil
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// statusText extracts the reason phrase from a response's status line.
func statusText(resp *http.Response) string {
	code, text := "", resp.Status
	if i := strings.IndexByte(text, ' '); i >= 0 {
		code, text = text[:i], text[i+1:]
	} else {
		code, text = text, ""
	}
	if code == "" || strings.Trim(code, "0123456789") != "" {
		return resp.Status
	}
	return text
}

func responseURL(resp *http.Response, fallback string) string {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return fallback
}

func newHTTPError(resp *http.Response, reqURL string, details restdata.Value) *Error {
	return &Error{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		URL:        reqURL,
		Details:    details,
	}
}

// getFrom retrieves a JSON document from some other path.  template
// is interpreted as a URI template, modified by vars.
func (c *Client) getFrom(ctx context.Context, template string, vars map[string]interface{}) (restdata.Value, error) {
	path, err := restdata.Expand(template, vars)
	if err != nil {
		return restdata.Value{}, err
	}
	return c.GetJSON(ctx, path)
}

// postTo submits body to some other path.  template is interpreted
// as a URI template, modified by vars.
func (c *Client) postTo(ctx context.Context, template string, vars map[string]interface{}, body interface{}) (restdata.Value, error) {
	path, err := restdata.Expand(template, vars)
	if err != nil {
		return restdata.Value{}, err
	}
	return c.PostJSON(ctx, path, body)
}
