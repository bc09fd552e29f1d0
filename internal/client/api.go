package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/internal/http"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// Payload is the request body of every FastBill call. Unset fields are
// omitted from the JSON.
type Payload struct {
	Service string         `json:"service"`
	Filter  map[string]any `json:"filter,omitempty"`
	Limit   int            `json:"limit,omitempty"`
	Offset  int            `json:"offset,omitempty"`
	Data    any            `json:"data,omitempty"`
}

// Requester sends a payload and returns the unwrapped envelope.
type Requester interface {
	Request(ctx context.Context, payload *Payload) (*Response, error)
}

// Response is the content of the RESPONSE field of an envelope.
type Response struct {
	fields map[string]json.RawMessage
}

// Has reports whether the response carries key.
func (r *Response) Has(key string) bool {
	_, ok := r.fields[key]

	return ok
}

// Keys returns the field names of the response.
func (r *Response) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for key := range r.fields {
		keys = append(keys, key)
	}

	return keys
}

// Decode unmarshals field key into v. A missing field leaves v untouched.
func (r *Response) Decode(key string, v any) error {
	raw, ok := r.fields[key]
	if !ok {
		return nil
	}

	err := json.Unmarshal(raw, v)
	if err != nil {
		return fastbill.NewInvalidRequestError(constants.MsgUnparsableResponse, fmt.Errorf("decoding %s: %w", key, err))
	}

	return nil
}

// String returns field key as a string. FastBill sends numbers such as
// INVOICE_NUMBER either quoted or bare; both are accepted.
func (r *Response) String(key string) (string, error) {
	raw, ok := r.fields[key]
	if !ok || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	var value string
	if json.Unmarshal(raw, &value) == nil {
		return value, nil
	}

	var number json.Number

	err := json.Unmarshal(raw, &number)
	if err != nil {
		return "", fastbill.NewInvalidRequestError(constants.MsgUnparsableResponse, fmt.Errorf("decoding %s: %w", key, err))
	}

	return number.String(), nil
}

// Int64 returns field key as an integer, quoted or bare.
func (r *Response) Int64(key string) (int64, error) {
	var value fastbill.ID

	err := r.Decode(key, &value)

	return int64(value), err
}

// API owns the endpoint and the authentication headers and turns payloads
// into transport calls.
type API struct {
	httpClient *http.Client
	headers    map[string]string
}

// NewAPI creates the base client. The Authorization header is derived once.
func NewAPI(httpClient *http.Client, credentials fastbill.Credentials) *API {
	auth := base64.StdEncoding.EncodeToString([]byte(credentials.Email + ":" + credentials.APIKey))

	return &API{
		httpClient: httpClient,
		headers: map[string]string{
			"Authorization": "Basic " + auth,
			"Content-Type":  constants.ContentTypeJSON,
		},
	}
}

// URI returns the endpoint requests are posted to.
func (a *API) URI() string {
	return a.httpClient.URI()
}

// Request posts payload and unwraps the envelope. A nil payload sends an
// empty body. Exactly one call is made; there is no caching.
func (a *API) Request(ctx context.Context, payload *Payload) (*Response, error) {
	var body []byte

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fastbill.NewTypeError("payload is not serializable", err)
		}

		body = encoded
	}

	resp, err := a.httpClient.Post(ctx, a.headers, body)
	if err != nil {
		return nil, err
	}

	return parseEnvelope(resp.Body)
}

func parseEnvelope(body []byte) (*Response, error) {
	body = bytes.TrimSpace(body)

	// An empty body means "no errors".
	if len(body) == 0 {
		return &Response{fields: map[string]json.RawMessage{}}, nil
	}

	var envelope struct {
		Response map[string]json.RawMessage `json:"RESPONSE"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fastbill.NewInvalidRequestError(constants.MsgUnparsableResponse, err)
	}

	if envelope.Response == nil {
		return nil, fastbill.NewInvalidRequestError(constants.MsgUnparsableResponse, fastbill.ErrMissingResponse)
	}

	remoteErrors, err := parseRemoteErrors(envelope.Response["ERRORS"])
	if err != nil {
		return nil, fastbill.NewInvalidRequestError(constants.MsgUnparsableResponse, err)
	}

	if len(remoteErrors) > 0 {
		return nil, fastbill.NewRemoteError(remoteErrors)
	}

	delete(envelope.Response, "ERRORS")

	return &Response{fields: envelope.Response}, nil
}

// parseRemoteErrors reads ERRORS, which is null, a list, or occasionally a
// bare string.
func parseRemoteErrors(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var single string
	if json.Unmarshal(raw, &single) == nil {
		if single == "" {
			return nil, nil
		}

		return []string{single}, nil
	}

	var list []any

	err := json.Unmarshal(raw, &list)
	if err != nil {
		return nil, fmt.Errorf("decoding ERRORS: %w", err)
	}

	remoteErrors := make([]string, 0, len(list))

	for _, entry := range list {
		switch typed := entry.(type) {
		case string:
			remoteErrors = append(remoteErrors, typed)
		case nil:
			continue
		default:
			encoded, _ := json.Marshal(typed)
			remoteErrors = append(remoteErrors, string(encoded))
		}
	}

	return remoteErrors, nil
}
