package router

import (
	"encoding/json"
	"strconv"

	"items-api/pkg/httpevent"
)

// messageBody is the JSON shape of status messages returned to the caller
type messageBody struct {
	Message string `json:"message"`
}

// respond builds a response with the fixed CORS header set. A nil body yields
// an empty response body; anything else is JSON-encoded, including typed nil
// values, which encode as JSON null.
func (rt *Router) respond(status int, body any) httpevent.Response {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  rt.cors.AllowOrigin,
		"Access-Control-Allow-Methods": rt.cors.AllowMethods,
		"Access-Control-Allow-Headers": rt.cors.AllowHeaders,
		"Content-Type":                 "application/json; charset=utf-8",
	}

	encoded := ""
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			// Responses are built from maps, slices and strings; this is
			// unreachable short of a programming error.
			rt.logger.WithError(err).Error("Failed to encode response body")
			return httpevent.Response{
				StatusCode: 500,
				Headers:    headers,
				Body:       `{"message":"internal error"}`,
			}
		}
		encoded = string(raw)
	}

	return httpevent.Response{
		StatusCode: status,
		Headers:    headers,
		Body:       encoded,
	}
}

// message builds a {"message": ...} response
func (rt *Router) message(status int, msg string) httpevent.Response {
	return rt.respond(status, messageBody{Message: msg})
}

// preflight builds the OPTIONS response: 204, no body, CORS headers plus the
// preflight cache max-age.
func (rt *Router) preflight() httpevent.Response {
	resp := rt.respond(204, nil)
	resp.Headers["Access-Control-Max-Age"] = strconv.Itoa(rt.cors.MaxAgeSecs)
	return resp
}
