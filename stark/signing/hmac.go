package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/starkbot/gostark/stark/types"
)

// ErrInvalidSecret means the API secret is not valid base64url key material.
// It is reported at construction time, never per call.
var ErrInvalidSecret = errors.New("api secret is not valid base64url")

// Authenticator computes the symmetric request signature the exchange
// expects on every private endpoint. It is a pure function of its inputs
// plus the decoded secret: no I/O, no clock reads, safe for concurrent use.
type Authenticator struct {
	apiKey     string
	passphrase string
	secret     []byte
}

// NewAuthenticator decodes the credential secret eagerly so malformed key
// material surfaces at construction rather than on the first request.
func NewAuthenticator(creds types.Credentials) (*Authenticator, error) {
	secret, err := base64.URLEncoding.DecodeString(creds.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	return &Authenticator{
		apiKey:     creds.Key,
		passphrase: creds.Passphrase,
		secret:     secret,
	}, nil
}

// Sign computes the HMAC-SHA256 signature over the canonical request
// message: timestamp + method + path(+query) + body. The body must be the
// exact string transmitted on the wire; an empty body contributes the empty
// string, never "{}".
func (a *Authenticator) Sign(requestPath string, method types.Method, isoTimestamp, body string) (string, error) {
	m, err := method.Canonical()
	if err != nil {
		return "", err
	}
	message := isoTimestamp + m + requestPath + body

	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(message))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Request auth header names. The timestamp header must carry the exact
// string that went into the signed message.
const (
	HeaderSignature  = "X-SIGNATURE"
	HeaderAPIKey     = "X-API-KEY"
	HeaderTimestamp  = "X-TIMESTAMP"
	HeaderPassphrase = "X-PASSPHRASE"
)

// Headers signs the request and assembles the full auth header set. The
// caller captures the timestamp once and threads it through both the
// signature and the transmitted header.
func (a *Authenticator) Headers(requestPath string, method types.Method, isoTimestamp, body string) (map[string]string, error) {
	sig, err := a.Sign(requestPath, method, isoTimestamp, body)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		HeaderSignature:  sig,
		HeaderAPIKey:     a.apiKey,
		HeaderTimestamp:  isoTimestamp,
		HeaderPassphrase: a.passphrase,
	}, nil
}
