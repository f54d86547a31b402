// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an HTTP client for the Hedge Control
// back-office REST API.
//
// The stub server in github.com/Andreicr1/hedge-control/cmd/hedgestub
// serves a compatible API.  Call New() with the URL the console was
// opened from and a durable store; for instance,
//
//     c, err := restclient.New("http://localhost:8000/?apiBaseUrl=http://localhost:8000", memory.New())
//
// Every call resolves the API base URL afresh, in priority order,
// from the location's apiBaseUrl query parameter (which is also saved
// to the store), the static base URL, and the value previously saved
// in the store.  With no base URL at all, requests go to the
// location's own origin.
package restclient

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/Andreicr1/hedge-control/memory"
	"github.com/sirupsen/logrus"
)

// Client issues requests against the back office.  It is safe for
// concurrent use.
type Client struct {
	// HTTPClient performs the actual requests.  It should not set
	// a timeout.
	HTTPClient *http.Client

	// Logger receives debug-level reports of storage failures.
	Logger logrus.FieldLogger

	store hedgecontrol.Store

	lock          sync.RWMutex
	location      *url.URL
	staticBaseURL string
}

// New creates a new client.  location is the URL the client acts on
// behalf of and may be empty.  If store is nil, a process-local store
// is used.
func New(location string, store hedgecontrol.Store) (*Client, error) {
	if store == nil {
		store = memory.New()
	}
	c := &Client{
		HTTPClient: http.DefaultClient,
		Logger:     logrus.StandardLogger(),
		store:      store,
	}
	if err := c.SetLocation(location); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLocation changes the URL the client acts on behalf of.  The
// empty string clears it.
func (c *Client) SetLocation(location string) error {
	var loc *url.URL
	if location != "" {
		var err error
		loc, err = url.Parse(location)
		if err != nil {
			return err
		}
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.location = loc
	return nil
}

// Location returns a copy of the current location, or nil.
func (c *Client) Location() *url.URL {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.location == nil {
		return nil
	}
	loc := *c.location
	return &loc
}

// SetStaticBaseURL changes the statically configured base URL.  It
// takes effect on the next request.
func (c *Client) SetStaticBaseURL(baseURL string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.staticBaseURL = baseURL
}

// StaticBaseURL returns the statically configured base URL.
func (c *Client) StaticBaseURL() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.staticBaseURL
}

// Store returns the durable store the client remembers its base URL
// in.
func (c *Client) Store() hedgecontrol.Store {
	return c.store
}

// BaseURL resolves the API base URL as the next request would see it.
// Resolving it saves any apiBaseUrl query parameter to the store.
func (c *Client) BaseURL() string {
	var query url.Values
	loc := c.Location()
	if loc != nil {
		query = loc.Query()
	}
	return ResolveBaseURL(query, c.StaticBaseURL(), c.store, c.Logger)
}

// URL resolves a logical API path to the URL a request would be sent
// to.  The result may be relative to the location if there is no base
// URL.
func (c *Client) URL(path string) (string, error) {
	if IsAbsoluteURL(path) {
		return path, nil
	}
	host := ""
	if loc := c.Location(); loc != nil {
		host = loc.Hostname()
	}
	return ResolveURL(apiPath(path), c.BaseURL(), host)
}
