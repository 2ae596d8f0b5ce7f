package httpclientx

import (
	"context"
	"net/http"
)

// GetRaw downloads the file at epnt and returns its (possibly gzip
// decoded) body. Non-2xx responses yield [*ErrRequestFailed] and bodies
// larger than [Config.MaxBodySize] yield [ErrTruncated].
func GetRaw(ctx context.Context, epnt *Endpoint, config *Config) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, epnt.URL, nil)
	if err != nil {
		return nil, err
	}
	if epnt.Accept != "" {
		req.Header.Set("Accept", epnt.Accept)
	}
	return do(ctx, req, config)
}
