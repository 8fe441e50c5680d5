package signing

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/starkbot/gostark/stark/types"
)

func testCredentials() types.Credentials {
	return types.Credentials{
		Key:        "test-api-key",
		Secret:     base64.URLEncoding.EncodeToString([]byte("test-hmac-secret-material")),
		Passphrase: "test-passphrase",
	}
}

func TestNewAuthenticator_InvalidSecret(t *testing.T) {
	_, err := NewAuthenticator(types.Credentials{
		Key:        "k",
		Secret:     "not!!valid@@base64url",
		Passphrase: "p",
	})
	if err == nil {
		t.Fatal("expected error for malformed secret")
	}
	if !errors.Is(err, ErrInvalidSecret) {
		t.Fatalf("expected ErrInvalidSecret, got %v", err)
	}
}

func TestSign_Deterministic(t *testing.T) {
	auth, err := NewAuthenticator(testCredentials())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	cases := []struct {
		name   string
		path   string
		method types.Method
		ts     string
		body   string
	}{
		{"get no body", "/v3/orders", types.MethodGet, "2024-01-01T00:00:00.000Z", ""},
		{"get with query", "/v3/orders?market=BTC-USD&status=OPEN", types.MethodGet, "2024-01-01T00:00:00.000Z", ""},
		{"post with body", "/v3/orders", types.MethodPost, "2024-06-15T12:30:45.123Z", `{"market":"BTC-USD","side":"BUY"}`},
		{"delete", "/v3/orders/abc123", types.MethodDelete, "2024-12-31T23:59:59.999Z", ""},
		{"put", "/v3/orders", types.MethodPut, "2024-03-03T03:03:03.003Z", `{"x":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, err := auth.Sign(tc.path, tc.method, tc.ts, tc.body)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if first == "" {
				t.Fatal("empty signature")
			}
			for i := 0; i < 50; i++ {
				again, err := auth.Sign(tc.path, tc.method, tc.ts, tc.body)
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if again != first {
					t.Fatalf("signature not deterministic: %s vs %s", first, again)
				}
			}
		})
	}
}

func TestSign_InputSensitivity(t *testing.T) {
	auth, err := NewAuthenticator(testCredentials())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	base, _ := auth.Sign("/v3/orders", types.MethodPost, "2024-01-01T00:00:00.000Z", `{"a":1}`)

	variants := []struct {
		name   string
		path   string
		method types.Method
		ts     string
		body   string
	}{
		{"path", "/v3/orders2", types.MethodPost, "2024-01-01T00:00:00.000Z", `{"a":1}`},
		{"method", "/v3/orders", types.MethodPut, "2024-01-01T00:00:00.000Z", `{"a":1}`},
		{"timestamp", "/v3/orders", types.MethodPost, "2024-01-01T00:00:00.001Z", `{"a":1}`},
		{"body", "/v3/orders", types.MethodPost, "2024-01-01T00:00:00.000Z", `{"a":2}`},
	}
	for _, tc := range variants {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := auth.Sign(tc.path, tc.method, tc.ts, tc.body)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if sig == base {
				t.Fatalf("changing %s did not change the signature", tc.name)
			}
		})
	}
}

// An absent body must contribute the empty string to the canonical message,
// not the serialized form "{}". The two must therefore sign differently.
func TestSign_EmptyBodyAsymmetry(t *testing.T) {
	auth, err := NewAuthenticator(testCredentials())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	noBody, err := auth.Sign("/v3/accounts", types.MethodGet, "2024-01-01T00:00:00.000Z", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	emptyObject, err := auth.Sign("/v3/accounts", types.MethodGet, "2024-01-01T00:00:00.000Z", "{}")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if noBody == emptyObject {
		t.Fatal(`absent body and "{}" must produce different signatures`)
	}
}

func TestSign_UnsupportedMethod(t *testing.T) {
	auth, err := NewAuthenticator(testCredentials())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := auth.Sign("/v3/orders", types.Method("PATCH"), "2024-01-01T00:00:00.000Z", ""); err == nil {
		t.Fatal("expected error for unsupported method")
	}
}

func TestHeaders(t *testing.T) {
	creds := testCredentials()
	auth, err := NewAuthenticator(creds)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ts := "2024-01-01T00:00:00.000Z"
	headers, err := auth.Headers("/v3/orders", types.MethodPost, ts, `{"a":1}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if headers[HeaderAPIKey] != creds.Key {
		t.Fatalf("api key header: got %q", headers[HeaderAPIKey])
	}
	if headers[HeaderPassphrase] != creds.Passphrase {
		t.Fatalf("passphrase header: got %q", headers[HeaderPassphrase])
	}
	// The timestamp header must be the exact string that was signed.
	if headers[HeaderTimestamp] != ts {
		t.Fatalf("timestamp header: got %q, want %q", headers[HeaderTimestamp], ts)
	}

	want, _ := auth.Sign("/v3/orders", types.MethodPost, ts, `{"a":1}`)
	if headers[HeaderSignature] != want {
		t.Fatalf("signature header does not match Sign output")
	}
}
