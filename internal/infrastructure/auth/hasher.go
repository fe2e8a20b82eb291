package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonSaltLength = 16
	argonKeyLength  = 32
)

// Argon2PasswordHasher derives argon2id hashes in the standard PHC string
// format: $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>. Verification reads
// the parameters back from the encoded string, so parameter changes only
// affect newly stored hashes.
type Argon2PasswordHasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

func NewArgon2PasswordHasher(time, memory uint32, threads uint8) *Argon2PasswordHasher {
	if time == 0 {
		time = 1
	}
	if memory == 0 {
		memory = 64 * 1024
	}
	if threads == 0 {
		threads = 4
	}
	return &Argon2PasswordHasher{time: time, memory: memory, threads: threads}
}

func (h *Argon2PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argonKeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify reports whether password matches the encoded hash. Any malformed or
// foreign hash format yields false, never an error visible to the caller.
func (h *Argon2PasswordHasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	if memory == 0 || time == 0 || threads == 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
