package signing

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateClientID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateClientID()
		if id == "" {
			t.Fatal("empty client id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate client id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestGenerateClientID_FullWidthRandomness(t *testing.T) {
	// Every byte of the id must be random. A fixed version marker (as in
	// UUIDv4) would pin the high nibble of byte 6 to 0x4 on every draw.
	versions := make(map[byte]struct{})
	for i := 0; i < 256; i++ {
		id, err := uuid.Parse(GenerateClientID())
		if err != nil {
			t.Fatalf("client id not uuid-formatted: %v", err)
		}
		versions[id[6]>>4] = struct{}{}
	}
	if len(versions) < 2 {
		t.Fatalf("version nibble constant across 256 ids: keyspace is capped")
	}
}

func TestNonceFromClientID_Stable(t *testing.T) {
	ids := []string{
		"a", "abc", "client-1",
		"0cb32b7a-95e9-4b39-b97b-4c4e84f4cbb3",
		GenerateClientID(),
	}
	for _, id := range ids {
		first := NonceFromClientID(id)
		for i := 0; i < 10; i++ {
			if got := NonceFromClientID(id); got != first {
				t.Fatalf("nonce for %q not stable: %d vs %d", id, first, got)
			}
		}
	}
}

func TestNonceFromClientID_Distinct(t *testing.T) {
	const n = 10000
	nonces := make(map[uint32]struct{}, n)
	for i := 0; i < n; i++ {
		nonces[NonceFromClientID(fmt.Sprintf("client-%d", i))] = struct{}{}
	}
	// Over a 32-bit range a handful of birthday collisions is possible but
	// more than a few would mean the mapping is broken.
	if len(nonces) < n-5 {
		t.Fatalf("too many nonce collisions: %d distinct out of %d", len(nonces), n)
	}
}
