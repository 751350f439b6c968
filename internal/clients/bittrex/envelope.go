package bittrex

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// envelope wraps every API response.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

var nullResult = json.RawMessage("null")

// unwrap decodes the envelope and returns the raw result. The caller must
// have checked the HTTP status already.
func unwrap(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}
	if env.Success == nil {
		return nil, errors.Wrap(ErrMalformedResponse, "missing success flag")
	}
	if !*env.Success {
		return nil, &APIError{Message: env.Message}
	}
	if len(env.Result) == 0 {
		return nullResult, nil
	}

	return env.Result, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), nullResult)
}
