// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"

	"github.com/jtacoma/uritemplates"
)

// Expand fills in an RFC 6570 URI template.  Values are converted to
// strings; a nil or empty-string value is treated as undefined, so a
// query variable carrying it is omitted from the result.
func Expand(template string, vars map[string]interface{}) (string, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return "", err
	}

	defined := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		if v == nil {
			continue
		}
		s, isString := v.(string)
		if !isString {
			s = fmt.Sprint(v)
		}
		if s == "" {
			continue
		}
		defined[k] = s
	}

	return tmpl.Expand(defined)
}
