package model

//
// HTTP definitions
//

import "net/http"

// HTTPClient is an [*http.Client]-like structure.
type HTTPClient interface {
	// Do sends the request and returns the response.
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = &http.Client{}
