// Package password hashes account passwords with argon2id and verifies both
// argon2id and legacy bcrypt hashes.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	algorithmID = "argon2id"

	minMemoryKB    uint32 = 8 * 1024
	minTime        uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16
)

var (
	ErrInvalidHash  = errors.New("invalid password hash")
	ErrInvalidParam = errors.New("invalid argon2 parameters")
)

type Config struct {
	MemoryKB    uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

func DefaultConfig() Config {
	return Config{
		MemoryKB:    64 * 1024,
		Time:        1,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

type Hasher struct {
	config Config

	dummyOnce sync.Once
	dummy     string
	dummyErr  error
}

func NewHasher(cfg Config) (*Hasher, error) {
	if cfg.MemoryKB < minMemoryKB || cfg.Time < minTime || cfg.Parallelism < minParallelism ||
		cfg.SaltLength < minSaltLength || cfg.KeyLength < minKeyLength {
		return nil, fmt.Errorf("%w: memory=%d time=%d parallelism=%d salt=%d key=%d",
			ErrInvalidParam, cfg.MemoryKB, cfg.Time, cfg.Parallelism, cfg.SaltLength, cfg.KeyLength)
	}
	return &Hasher{config: cfg}, nil
}

// Hash returns a PHC string: $argon2id$v=19$m=<kb>,t=<n>,p=<n>$<salt>$<key>.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.config.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, h.config.Time, h.config.MemoryKB, h.config.Parallelism, h.config.KeyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.config.MemoryKB,
		h.config.Time,
		h.config.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify compares password against an argon2id or bcrypt hash.
func (h *Hasher) Verify(password, encodedHash string) (bool, error) {
	if isBcrypt(encodedHash) {
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
		return true, nil
	}

	parsed, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), parsed.salt, parsed.time, parsed.memory, parsed.parallelism, uint32(len(parsed.key)))
	return subtle.ConstantTimeCompare(computed, parsed.key) == 1, nil
}

// VerifyDummy burns the same work as a real verification. Sign-in calls it
// when no account matches.
func (h *Hasher) VerifyDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummy, h.dummyErr = h.Hash("dummy-password-for-timing")
	})
	if h.dummyErr != nil {
		return
	}
	_, _ = h.Verify(password, h.dummy)
}

// NeedsUpgrade reports whether a stored hash is bcrypt or weaker than the
// current parameters.
func (h *Hasher) NeedsUpgrade(encodedHash string) bool {
	if isBcrypt(encodedHash) {
		return true
	}

	parsed, err := parsePHC(encodedHash)
	if err != nil {
		return true
	}
	return parsed.memory < h.config.MemoryKB ||
		parsed.time < h.config.Time ||
		parsed.parallelism < h.config.Parallelism ||
		uint32(len(parsed.key)) != h.config.KeyLength
}

func isBcrypt(encodedHash string) bool {
	return strings.HasPrefix(encodedHash, "$2a$") ||
		strings.HasPrefix(encodedHash, "$2b$") ||
		strings.HasPrefix(encodedHash, "$2y$")
}

type phc struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parsePHC(encodedHash string) (*phc, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithmID {
		return nil, ErrInvalidHash
	}

	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidHash, parts[2])
	}

	var (
		out                 phc
		memory, time, par   uint64
		seenM, seenT, seenP bool
	)
	for _, pair := range strings.Split(parts[3], ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, ErrInvalidHash
		}
		switch name {
		case "m":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, ErrInvalidHash
			}
			memory, seenM = v, true
		case "t":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, ErrInvalidHash
			}
			time, seenT = v, true
		case "p":
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return nil, ErrInvalidHash
			}
			par, seenP = v, true
		default:
			return nil, ErrInvalidHash
		}
	}
	if !seenM || !seenT || !seenP || time == 0 || par == 0 {
		return nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, ErrInvalidHash
	}

	out.memory = uint32(memory)
	out.time = uint32(time)
	out.parallelism = uint8(par)
	out.salt = salt
	out.key = key
	return &out, nil
}
