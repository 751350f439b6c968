package bittrex

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// SignHeader carries the request signature.
const SignHeader = "apisign"

// requestDescriptor transport-ready request: full URI and, for private calls, the signature.
type requestDescriptor struct {
	method    string
	uri       string
	signature string
}

// buildRequest composes baseURI with params. Private requests are signed and
// must be rebuilt for every attempt so each one carries a fresh nonce.
func buildRequest(signer *Signer, method, baseURI string, params Params, requiresAuth bool) (*requestDescriptor, error) {
	if !requiresAuth {
		return &requestDescriptor{
			method: method,
			uri:    baseURI + "?" + params.Encode(),
		}, nil
	}

	signed, err := signer.Sign(baseURI, params)
	if err != nil {
		return nil, err
	}

	return &requestDescriptor{
		method:    method,
		uri:       signed.URI,
		signature: signed.MAC,
	}, nil
}

func (d *requestDescriptor) httpRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, d.method, d.uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if d.signature != "" {
		req.Header.Set(SignHeader, d.signature)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}
