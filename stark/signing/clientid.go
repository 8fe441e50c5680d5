package signing

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"

	"github.com/google/uuid"
)

// GenerateClientID returns a fresh idempotency key for one action instance.
// The id is uuid-formatted for readability, but all 128 bits are drawn from
// crypto/rand; the v4 layout would spend six of them on version and variant
// markers.
func GenerateClientID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err) // crypto/rand is assumed available
	}
	id, err := uuid.FromBytes(b[:])
	if err != nil {
		panic(err)
	}
	return id.String()
}

// NonceFromClientID maps a client id onto a 32-bit nonce used as the signing
// salt. The mapping is sha256(id) mod 2^32, matching the venue's derivation:
// the same client id always yields the same nonce, so a retried action signs
// with the same salt instead of diverging.
func NonceFromClientID(clientID string) uint32 {
	sum := sha256.Sum256([]byte(clientID))
	return binary.BigEndian.Uint32(sum[28:32])
}
