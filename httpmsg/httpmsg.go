// Package httpmsg parses the raw text of an HTTP/1.x response into a
// structured HttpResponse. The engine only reads the parsed body; status
// code handling (redirects, etc.) belongs to the external network
// collaborator.
package httpmsg

import (
	"strconv"
	"strings"

	"github.com/lukehoban/browser/herr"
)

// Header is a single "Name: Value" response header.
type Header struct {
	Name  string
	Value string
}

// Response is a parsed HTTP/1.x response.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       string
}

// Header returns the value of the first header matching name
// case-sensitively, or "" if absent.
func (r *Response) Header(name string) string {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// Parse builds a Response from raw response text. It trims leading
// whitespace and tolerates stray "\n\r" pairs by normalizing them to "\n"
// before splitting. A response with no LF anywhere is a Network error.
func Parse(raw string) (*Response, error) {
	raw = strings.TrimLeft(raw, " \t\r\n")
	raw = strings.ReplaceAll(raw, "\n\r", "\n")

	statusLine, remainder, ok := strings.Cut(raw, "\n")
	if !ok {
		return nil, herr.New(herr.Network, "http response has no line feed")
	}

	resp := &Response{StatusCode: 404}
	fields := strings.SplitN(statusLine, " ", 3)
	if len(fields) > 0 {
		resp.Version = fields[0]
	}
	if len(fields) > 1 {
		if code, err := strconv.Atoi(fields[1]); err == nil {
			resp.StatusCode = code
		}
	}
	if len(fields) > 2 {
		resp.Reason = fields[2]
	}

	if rest, noHeaders := strings.CutPrefix(remainder, "\n"); noHeaders {
		resp.Body = rest
		return resp, nil
	}

	headerBlock, body, hasHeaders := strings.Cut(remainder, "\n\n")
	if !hasHeaders {
		resp.Body = remainder
		return resp, nil
	}
	resp.Body = body

	for _, line := range strings.Split(headerBlock, "\n") {
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		resp.Headers = append(resp.Headers, Header{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return resp, nil
}
