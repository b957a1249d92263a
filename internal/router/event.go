package router

import (
	"encoding/json"
	"strings"

	"items-api/pkg/httpevent"
)

// resolveMethod returns the HTTP method, uppercased. The top-level httpMethod
// field wins; the v2 payload's nested method is the fallback; GET the default.
func resolveMethod(ev *httpevent.Event) string {
	method := ev.HTTPMethod
	if method == "" {
		method = ev.RequestContext.HTTP.Method
	}
	if method == "" {
		method = "GET"
	}
	return strings.ToUpper(method)
}

// resolvePath returns the request path, preferring the top-level path field
// over the v2 rawPath, defaulting to "/".
func resolvePath(ev *httpevent.Event) string {
	if ev.Path != "" {
		return ev.Path
	}
	if ev.RawPath != "" {
		return ev.RawPath
	}
	return "/"
}

// resolveID returns the resource id. An explicit pathParameters entry wins;
// otherwise the path is split on "/" and, when it starts with the items
// segment, everything after it is rejoined so ids containing slashes survive.
func resolveID(ev *httpevent.Event, path string) string {
	if id := ev.PathParameters["id"]; id != "" {
		return id
	}

	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) >= 2 && segments[0] == "items" {
		return strings.Join(segments[1:], "/")
	}
	return ""
}

// parseBody decodes the event body into a JSON object. An empty or absent
// body yields an empty object. Numbers are decoded as json.Number so their
// exact textual form survives normalization.
func parseBody(ev *httpevent.Event) (map[string]any, error) {
	if strings.TrimSpace(ev.Body) == "" {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(ev.Body))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}
