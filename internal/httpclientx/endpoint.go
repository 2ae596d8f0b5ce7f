package httpclientx

// Endpoint is a remote data file.
//
// The zero value is invalid; construct using [NewEndpoint].
type Endpoint struct {
	// URL is the MANDATORY file URL.
	URL string

	// Accept is the OPTIONAL media type we ask the server for.
	Accept string
}

// NewEndpoint constructs a new [*Endpoint] for the given URL that
// accepts any media type.
func NewEndpoint(URL string) *Endpoint {
	return &Endpoint{URL: URL}
}

// WithAccept returns a copy of the [*Endpoint] asking for the given media type.
func (e *Endpoint) WithAccept(mediaType string) *Endpoint {
	return &Endpoint{URL: e.URL, Accept: mediaType}
}
