// Package cryptox implements one-way password hashing with Argon2id.
//
// Hashes are encoded as PHC strings:
//
//	$argon2id$v=19$m=<memory KiB>,t=<iterations>,p=<parallelism>$<salt>$<hash>
//
// Salt and hash are unpadded standard base64. Verification always uses the
// parameters recorded in the stored string, so hashes created with older
// parameters keep verifying after the defaults change.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"golang.org/x/crypto/argon2"
)

const algorithmArgon2id = "argon2id"

// Upper bounds for cost parameters read from stored hashes.
const (
	maxMemoryKiB   = 4 * 1024 * 1024 // 4 GiB
	maxIterations  = 64
	maxParallelism = 64
)

// Argon2Params are the cost parameters of a single Argon2id derivation.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  int
	KeyLength   uint32
}

// DefaultParams returns the Argon2id defaults: 19 MiB, 2 passes, 1 lane,
// 16-byte salt and 32-byte output.
func DefaultParams() Argon2Params {
	return Argon2Params{
		Memory:      19 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Validate rejects parameters that Hash cannot use or that Verify would
// refuse to read back.
func (p Argon2Params) Validate() error {
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 ||
		p.SaltLength <= 0 || p.KeyLength == 0 {
		return fmt.Errorf("invalid argon2 parameters")
	}
	if p.Memory > maxMemoryKiB || p.Iterations > maxIterations || p.Parallelism > maxParallelism {
		return fmt.Errorf("argon2 parameters above limits m=%d t=%d p=%d", maxMemoryKiB, maxIterations, maxParallelism)
	}
	if p.Memory < 8*uint32(p.Parallelism) {
		return fmt.Errorf("argon2 memory must be at least 8 KiB per lane")
	}
	return nil
}

// Argon2Hasher hashes and verifies passwords. It is safe for concurrent use.
type Argon2Hasher struct {
	params Argon2Params
	rand   io.Reader
}

// NewArgon2Hasher returns a hasher using params and crypto/rand for salts.
func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: params, rand: rand.Reader}
}

// Hash derives an Argon2id hash of password under a fresh random salt and
// returns it as a PHC string.
func (h *Argon2Hasher) Hash(password []byte) (string, error) {
	if err := h.params.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorHashing, err)
	}

	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("%w: generating salt: %w", common.ErrorHashing, err)
	}

	key := argon2.IDKey(password, salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return encodeHash(h.params, salt, key), nil
}

// Verify reports whether password matches the stored PHC string. A mismatch
// is (false, nil); a string that cannot be parsed is an ErrorHashing.
func (h *Argon2Hasher) Verify(password []byte, encoded string) (bool, error) {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey(password, salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)
	defer common.WipeByteArray(candidate)

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func encodeHash(p Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmArgon2id,
		argon2.Version,
		p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, malformed("unexpected number of fields")
	}
	if parts[1] != algorithmArgon2id {
		return p, nil, nil, malformed("unsupported algorithm %q", parts[1])
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return p, nil, nil, malformed("missing version")
	}
	if v, err := strconv.Atoi(version); err != nil || v != argon2.Version {
		return p, nil, nil, malformed("unsupported version %q", version)
	}

	if err := parseParams(parts[3], &p); err != nil {
		return p, nil, nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, malformed("bad salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, malformed("bad hash")
	}

	p.SaltLength = len(salt)
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}

func parseParams(s string, p *Argon2Params) error {
	seen := make(map[string]bool, 3)

	for _, kv := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return malformed("bad parameter %q", kv)
		}
		if seen[name] {
			return malformed("repeated parameter %q", name)
		}
		seen[name] = true

		switch name {
		case "m":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil || n == 0 || n > maxMemoryKiB {
				return malformed("bad memory cost %q", value)
			}
			p.Memory = uint32(n)
		case "t":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil || n == 0 || n > maxIterations {
				return malformed("bad time cost %q", value)
			}
			p.Iterations = uint32(n)
		case "p":
			n, err := strconv.ParseUint(value, 10, 8)
			if err != nil || n == 0 || n > maxParallelism {
				return malformed("bad parallelism %q", value)
			}
			p.Parallelism = uint8(n)
		default:
			return malformed("unknown parameter %q", name)
		}
	}
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 {
		return malformed("expected m, t and p parameters")
	}
	// Argon2 needs at least 8 KiB per lane.
	if p.Memory < 8*uint32(p.Parallelism) {
		return malformed("memory cost %d below 8*p", p.Memory)
	}
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: malformed hash: %s", common.ErrorHashing, fmt.Sprintf(format, args...))
}
