package bittrex

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURI = "https://bittrex.com/api/v1.1/market/buylimit"

func expectedMAC(secret, uri string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(uri))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

func TestSigner_CanonicalURI(t *testing.T) {
	s := NewSigner("KEY", "SECRET")
	params := Params{}.Add("market", "BTC-LTC").Add("quantity", "1.5").Add("rate", "0.01")

	signed, err := s.signWithNonce(testBaseURI, params, 42)
	require.NoError(t, err)

	assert.Equal(t, testBaseURI+"?market=BTC-LTC&quantity=1.5&rate=0.01&apikey=KEY&nonce=42", signed.URI)
	assert.Equal(t, expectedMAC("SECRET", signed.URI), signed.MAC)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{128}$`), signed.MAC)

	// caller params are not mutated
	assert.Len(t, params, 3)
}

func TestSigner_EscapesKeysAndValues(t *testing.T) {
	s := NewSigner("my key", "SECRET")
	params := Params{}.Add("address", "a b&c=d").Add("pay id", "x/y")

	signed, err := s.signWithNonce(testBaseURI, params, 1)
	require.NoError(t, err)
	assert.Equal(t, testBaseURI+"?address=a+b%26c%3Dd&pay+id=x%2Fy&apikey=my+key&nonce=1", signed.URI)
}

func TestSigner_Deterministic(t *testing.T) {
	s := NewSigner("KEY", "SECRET")
	params := Params{}.Add("currency", "BTC")

	first, err := s.signWithNonce(testBaseURI, params, 100)
	require.NoError(t, err)
	second, err := s.signWithNonce(testBaseURI, params, 100)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := s.signWithNonce(testBaseURI, params, 101)
	require.NoError(t, err)
	assert.NotEqual(t, first.MAC, other.MAC)

	otherKey, err := NewSigner("KEY", "OTHER").signWithNonce(testBaseURI, params, 100)
	require.NoError(t, err)
	assert.Equal(t, first.URI, otherKey.URI)
	assert.NotEqual(t, first.MAC, otherKey.MAC)
}

func TestSigner_FreshNonceEveryCall(t *testing.T) {
	s := newSigner("KEY", "SECRET", func() time.Time { return time.Unix(0, 1000) })

	first, err := s.Sign(testBaseURI, nil)
	require.NoError(t, err)
	second, err := s.Sign(testBaseURI, nil)
	require.NoError(t, err)

	assert.Equal(t, testBaseURI+"?apikey=KEY&nonce=1000", first.URI)
	assert.Equal(t, testBaseURI+"?apikey=KEY&nonce=1001", second.URI)
	assert.NotEqual(t, first.MAC, second.MAC)
}

func TestSigner_ReservedParams(t *testing.T) {
	s := NewSigner("KEY", "SECRET")

	_, err := s.Sign(testBaseURI, Params{}.Add("apikey", "evil"))
	assert.ErrorIs(t, err, ErrReservedParam)

	_, err = s.Sign(testBaseURI, Params{}.Add("nonce", "1"))
	assert.ErrorIs(t, err, ErrReservedParam)
}

func TestSigner_MissingCredentials(t *testing.T) {
	var nilSigner *Signer
	_, err := nilSigner.Sign(testBaseURI, nil)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = NewSigner("KEY", "").Sign(testBaseURI, nil)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = NewSigner("", "SECRET").Sign(testBaseURI, nil)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestNonceSource_Monotonic(t *testing.T) {
	now := time.Unix(0, 500)
	n := newNonceSource(func() time.Time { return now })

	assert.Equal(t, int64(500), n.Next())
	assert.Equal(t, int64(501), n.Next())

	// clock going backwards never yields a smaller nonce
	now = time.Unix(0, 10)
	assert.Equal(t, int64(502), n.Next())

	now = time.Unix(0, 9000)
	assert.Equal(t, int64(9000), n.Next())
}

func TestNonceSource_ConcurrentUnique(t *testing.T) {
	n := newNonceSource(func() time.Time { return time.Unix(0, 1) })

	const workers, perWorker = 16, 200
	results := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				results <- n.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]struct{}, workers*perWorker)
	for nonce := range results {
		_, dup := seen[nonce]
		require.False(t, dup, "duplicate nonce %d", nonce)
		seen[nonce] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestParams_Encode(t *testing.T) {
	assert.Equal(t, "", Params{}.Encode())
	assert.Equal(t, "b=2&a=1", Params{}.Add("b", "2").Add("a", "1").Encode())
	assert.True(t, Params{}.Add("market", "BTC-LTC").Has("market"))
	assert.False(t, Params{}.Add("market", "BTC-LTC").Has("rate"))
}

func TestBuildRequest(t *testing.T) {
	t.Run("public request is not signed", func(t *testing.T) {
		desc, err := buildRequest(nil, "GET", "https://x/public/getmarkets", nil, false)
		require.NoError(t, err)
		assert.Equal(t, "https://x/public/getmarkets?", desc.uri)
		assert.Empty(t, desc.signature)
	})

	t.Run("private request carries signature header", func(t *testing.T) {
		s := NewSigner("KEY", "SECRET")
		desc, err := buildRequest(s, "GET", "https://x/account/getbalances", nil, true)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(desc.uri, "https://x/account/getbalances?apikey=KEY&nonce="))
		assert.Equal(t, expectedMAC("SECRET", desc.uri), desc.signature)

		req, err := desc.httpRequest(t.Context())
		require.NoError(t, err)
		assert.Equal(t, desc.signature, req.Header.Get(SignHeader))
		assert.Equal(t, desc.uri, req.URL.String())
	})

	t.Run("private request without signer", func(t *testing.T) {
		_, err := buildRequest(nil, "GET", "https://x/account/getbalances", nil, true)
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})
}
