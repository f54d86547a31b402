// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/sirupsen/logrus"
)

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// StaticHostDomains lists the hosting services that serve only static
// files.  A page served from one of these, or a subdomain, cannot
// reach the API on its own origin.
var StaticHostDomains = []string{
	"github.io",
	"netlify.app",
	"vercel.app",
	"pages.dev",
	"azurestaticapps.net",
	"web.core.windows.net",
}

// IsAbsoluteURL returns true if path is a complete http or https URL.
func IsAbsoluteURL(path string) bool {
	return absoluteURL.MatchString(path)
}

// IsStaticHost returns true if host is one of StaticHostDomains or a
// subdomain of one.
func IsStaticHost(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range StaticHostDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// apiPath places a logical path under the API version prefix.
func apiPath(path string) string {
	if path == "" {
		return hedgecontrol.APIPrefix
	}
	if strings.HasPrefix(path, "/") {
		return hedgecontrol.APIPrefix + path
	}
	return hedgecontrol.APIPrefix + "/" + path
}

// ResolveBaseURL finds the API base URL.  A non-empty apiBaseUrl in
// query wins and is written to store; then static; then whatever
// store last held.  The result has no trailing slash and may be
// empty.  Storage failures never fail resolution; they are reported
// to log at debug level if log is non-nil.
func ResolveBaseURL(query url.Values, static string, store hedgecontrol.Store, log logrus.FieldLogger) string {
	if fromQuery := strings.TrimSpace(query.Get(hedgecontrol.BaseURLParam)); fromQuery != "" {
		if store != nil {
			if err := store.Set(hedgecontrol.BaseURLParam, fromQuery); err != nil && log != nil {
				log.WithError(err).Debug("could not save API base URL")
			}
		}
		return normalizeBaseURL(fromQuery)
	}
	if static = strings.TrimSpace(static); static != "" {
		return normalizeBaseURL(static)
	}
	if store != nil {
		stored, present, err := store.Get(hedgecontrol.BaseURLParam)
		if err != nil {
			if log != nil {
				log.WithError(err).Debug("could not read saved API base URL")
			}
			return ""
		}
		if present {
			return normalizeBaseURL(strings.TrimSpace(stored))
		}
	}
	return ""
}

// ResolveURL combines an already-prefixed path with a resolved base
// URL.  host is the host of the location the request is made from.
// If there is no base URL and host is a static file host, returns a
// configuration *Error.  If there is no base URL otherwise, the path
// comes back unchanged, to be resolved against the location.
func ResolveURL(path, baseURL, host string) (string, error) {
	baseURL = normalizeBaseURL(baseURL)
	if path == "" {
		return baseURL, nil
	}
	if IsAbsoluteURL(path) {
		return path, nil
	}
	if baseURL == "" {
		if IsStaticHost(host) {
			return "", newConfigError(host, path)
		}
		return path, nil
	}
	if strings.HasPrefix(path, "/") {
		return baseURL + path, nil
	}
	return baseURL + "/" + path, nil
}

func normalizeBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
