// Package httpclientx contains extensions to more easily invoke HTTP APIs.
package httpclientx

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ilcovid/oecdrt/internal/iox"
	"github.com/ilcovid/oecdrt/internal/model"
)

// ErrRequestFailed indicates that an HTTP request status indicates failure.
type ErrRequestFailed struct {
	StatusCode int
}

var _ error = &ErrRequestFailed{}

// Error returns the error as a string.
func (err *ErrRequestFailed) Error() string {
	return fmt.Sprintf("httpclientx: request failed: status code %d", err.StatusCode)
}

// ErrTruncated indicates that we read more than [Config.MaxBodySize] bytes.
var ErrTruncated = errors.New("httpclientx: truncated response body")

// do sends the given request and returns the response body or an error.
func do(ctx context.Context, req *http.Request, config *Config) ([]byte, error) {
	logger := model.ValidLoggerOrDefault(config.Logger)

	// assign the user agent
	req.Header.Set("User-Agent", config.UserAgent)

	// say that we're accepting gzip encoded bodies
	req.Header.Set("Accept-Encoding", "gzip")

	// get the response
	logger.Debugf("httpclientx: GET %s", req.URL.String())
	resp, err := config.Client.Do(req)

	// handle the case of failure
	if err != nil {
		return nil, err
	}

	// make sure we close the response body
	defer resp.Body.Close()

	// handle the case of HTTP error
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warnf("httpclientx: GET %s: status code %d", req.URL.String(), resp.StatusCode)
		return nil, &ErrRequestFailed{resp.StatusCode}
	}

	// make sure we handle gzip encoding
	var baseReader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzreader, err := gzip.NewReader(baseReader)
		if err != nil {
			return nil, err
		}
		defer gzreader.Close()
		baseReader = gzreader
	}

	// read the body keeping an upper bound on its size
	maxBodySize := config.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	rawrespbody, err := iox.ReadAllContext(ctx, io.LimitReader(baseReader, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(rawrespbody)) > maxBodySize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTruncated, maxBodySize)
	}
	logger.Debugf("httpclientx: GET %s: got %d bytes", req.URL.String(), len(rawrespbody))

	return rawrespbody, nil
}
