package bittrex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	apiKeyParam = "apikey"
	nonceParam  = "nonce"
)

// SignedRequest canonical URI and its signature. Single use, the URI embeds a nonce.
type SignedRequest struct {
	URI string
	// MAC is the uppercase hex HMAC-SHA512 of URI.
	MAC string
}

// Signer signs private requests with the account credentials.
type Signer struct {
	apiKey string
	secret []byte
	nonces *nonceSource
}

// NewSigner creates a signer. The secret is used only as HMAC key and never sent.
func NewSigner(apiKey, apiSecret string) *Signer {
	return newSigner(apiKey, apiSecret, time.Now)
}

func newSigner(apiKey, apiSecret string, now func() time.Time) *Signer {
	return &Signer{
		apiKey: apiKey,
		secret: []byte(apiSecret),
		nonces: newNonceSource(now),
	}
}

// Sign appends apikey and a fresh nonce to params and signs baseURI?query.
func (s *Signer) Sign(baseURI string, params Params) (SignedRequest, error) {
	if s == nil || s.apiKey == "" || len(s.secret) == 0 {
		return SignedRequest{}, ErrInvalidCredential
	}

	return s.signWithNonce(baseURI, params, s.nonces.Next())
}

func (s *Signer) signWithNonce(baseURI string, params Params, nonce int64) (SignedRequest, error) {
	for _, reserved := range []string{apiKeyParam, nonceParam} {
		if params.Has(reserved) {
			return SignedRequest{}, errors.Wrap(ErrReservedParam, reserved)
		}
	}

	signed := make(Params, 0, len(params)+2)
	signed = append(signed, params...)
	signed = signed.Add(apiKeyParam, s.apiKey).Add(nonceParam, strconv.FormatInt(nonce, 10))

	uri := baseURI + "?" + signed.Encode()

	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(uri))

	return SignedRequest{
		URI: uri,
		MAC: strings.ToUpper(hex.EncodeToString(mac.Sum(nil))),
	}, nil
}
