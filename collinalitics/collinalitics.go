package collinalitics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/google/go-querystring/query"
)

const (
	defaultAddress = "http://localhost:8000/api/"
	userAgent      = "go-collinalitics"

	mediaTypeJSON = "application/json"
)

// Client manages communication with the Collinalitics site API.
type Client struct {
	clientMu sync.Mutex   // protects the client during calls
	client   *http.Client // HTTP client used to communicate with the API

	// Base URL for API requests. Defaults to the local development
	// backend at http://localhost:8000/api/, but deployed front-ends
	// inject the configured origin instead. Must end with a trailing
	// slash.
	Address *url.URL

	// User agent used when communicating with the API.
	UserAgent string

	common service // Reuse a single struct instead of allocating one for each service

	// Services used for talking to different parts of the site API
	Projects *ProjectsService
	Services *ServicesService
	Posts    *PostsService
	Contacts *ContactsService
}

// service provides a general service interface for the API.
type service struct {
	client *Client
}

// Response wraps the standard http.Response for API calls.
type Response struct {
	*http.Response
}

// newResponse creates a new Response for the provided http.Response.
func newResponse(r *http.Response) *Response {
	return &Response{Response: r}
}

// NewClient returns a new Collinalitics API client talking to the given
// address. If a nil httpClient is provided, a new http.Client with an
// in-memory cookie jar will be used; the site API expects requests to
// carry session cookies even on public reads, so a jar is attached to
// caller-provided clients too when they have none.
func NewClient(httpClient *http.Client, address string) (*Client, error) {
	if address == "" {
		address = defaultAddress
	}

	addr, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %v", address, err)
	}
	if addr.Scheme == "" || addr.Host == "" {
		return nil, fmt.Errorf("invalid address %q: missing scheme or host", address)
	}
	if !strings.HasSuffix(addr.Path, "/") {
		addr.Path += "/"
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	c := &Client{
		client:    httpClient,
		Address:   addr,
		UserAgent: userAgent,
	}
	c.common.client = c
	c.Projects = (*ProjectsService)(&c.common)
	c.Services = (*ServicesService)(&c.common)
	c.Posts = (*PostsService)(&c.common)
	c.Contacts = (*ContactsService)(&c.common)

	return c, nil
}

// Client returns a copy of the http.Client used by the API client.
func (c *Client) Client() *http.Client {
	c.clientMu.Lock()
	defer c.clientMu.Unlock()
	clientCopy := *c.client
	return &clientCopy
}

// NewRequest creates an API request. A relative URL can be provided in
// urlStr, in which case it is resolved relative to the Address of the
// Client. Relative URLs should always be specified without a preceding
// slash. If specified, the value pointed to by body is JSON encoded and
// included as the request body.
func (c *Client) NewRequest(method, urlStr string, body any) (*http.Request, error) {
	if !strings.HasSuffix(c.Address.Path, "/") {
		return nil, fmt.Errorf("Address must have a trailing slash, but %q does not", c.Address)
	}

	u, err := c.Address.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	var buf io.ReadWriter
	if body != nil {
		buf = &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		if err := enc.Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", mediaTypeJSON)
	}
	req.Header.Set("Accept", mediaTypeJSON)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	return req, nil
}

// Do sends an API request and returns the API response. The API
// response is JSON decoded and stored in the value pointed to by v, or
// returned as an error if an API error has occurred. If v implements
// the io.Writer interface, the raw response body will be written to v,
// without attempting to first decode it.
//
// The provided ctx must be non-nil. If it is canceled or times out,
// ctx.Err() will be returned.
func (c *Client) Do(ctx context.Context, req *http.Request, v any) (*Response, error) {
	if ctx == nil {
		return nil, errors.New("context must be non-nil")
	}
	req = req.WithContext(ctx)

	c.clientMu.Lock()
	client := c.client
	c.clientMu.Unlock()

	resp, err := client.Do(req)
	if err != nil {
		// If we got an error, and the context has been canceled,
		// the context's error is probably more useful.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return nil, err
	}
	defer resp.Body.Close()

	response := newResponse(resp)

	if err := CheckResponse(resp); err != nil {
		return response, err
	}

	switch v := v.(type) {
	case nil:
	case io.Writer:
		_, err = io.Copy(v, resp.Body)
	default:
		decErr := json.NewDecoder(resp.Body).Decode(v)
		if decErr == io.EOF {
			decErr = nil // ignore EOF errors caused by empty response body
		}
		if decErr != nil {
			err = decErr
		}
	}

	return response, err
}

// addOptions adds the parameters in opts as URL query parameters to s.
// opts must be a struct whose fields may contain "url" tags.
func addOptions(s string, opts any) (string, error) {
	v := reflect.ValueOf(opts)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return s, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return s, err
	}

	qs, err := query.Values(opts)
	if err != nil {
		return s, err
	}

	u.RawQuery = qs.Encode()
	return u.String(), nil
}
