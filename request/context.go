package request

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	unknownClientId    = "unknown"
)

type Context struct {
	request        *http.Request
	responseWriter http.ResponseWriter

	endpoint string
	clientId string
}

func NewContext(request *http.Request, response http.ResponseWriter, endpoint string) *Context {
	return &Context{
		request:        request,
		responseWriter: response,
		endpoint:       endpoint,
	}
}

func (c *Context) Request() *http.Request {
	return c.request
}

func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.responseWriter
}

func (c *Context) SetResponseWriter(writer http.ResponseWriter) {
	c.responseWriter = writer
}

func (c *Context) Endpoint() string {
	return c.endpoint
}

func (c *Context) Context() context.Context {
	return c.request.Context()
}

func (c *Context) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

// ClientId identifies the caller for rate limiting: the first hop of
// X-Forwarded-For, then the connection address, then "unknown".
func (c *Context) ClientId() string {
	if c.clientId != "" {
		return c.clientId
	}

	forwarded := c.request.Header.Get(forwardedForHeader)
	if forwarded != "" {
		firstHop := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if firstHop != "" {
			c.clientId = firstHop
			return c.clientId
		}
	}

	host, _, err := net.SplitHostPort(c.request.RemoteAddr)
	if err == nil && host != "" {
		c.clientId = host
		return c.clientId
	}
	if c.request.RemoteAddr != "" {
		c.clientId = c.request.RemoteAddr
		return c.clientId
	}

	c.clientId = unknownClientId
	return c.clientId
}
