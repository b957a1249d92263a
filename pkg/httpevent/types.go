package httpevent

// Event is the trigger-agnostic inbound HTTP event. It carries the fields of
// both API Gateway payload shapes: REST proxy events populate HTTPMethod and
// Path, HTTP API v2 events populate RawPath and RequestContext.HTTP.Method.
// Consumers resolve each value through the documented fallback chain rather
// than assuming one shape.
type Event struct {
	HTTPMethod     string            `json:"httpMethod"`
	Path           string            `json:"path"`
	RawPath        string            `json:"rawPath"`
	PathParameters map[string]string `json:"pathParameters"`
	Body           string            `json:"body"`
	RequestContext RequestContext    `json:"requestContext"`
}

// RequestContext holds the nested transport-specific request metadata
type RequestContext struct {
	HTTP HTTPContext `json:"http"`
}

// HTTPContext holds the v2 payload's HTTP description
type HTTPContext struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}
