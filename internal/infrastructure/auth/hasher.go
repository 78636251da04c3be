package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	sharedConfig "github.com/Harekrushna7138/ticket-service-backend/internal/shared/config"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
)

var _ user.PasswordHasher = (*Argon2PasswordHasher)(nil)

// Argon2Params are the Argon2id work parameters.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params matches the argon2 crate defaults (19 MiB, 2 passes, 1 lane).
var DefaultArgon2Params = Argon2Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Upper bounds for parameters read back from a stored record. Anything larger
// is treated as corrupt rather than handed to argon2.
const (
	maxArgon2Memory     = 1 << 20 // KiB, 1 GiB
	maxArgon2Iterations = 64
	maxArgon2KeyLength  = 128
	maxArgon2SaltLength = 128
)

// Argon2PasswordHasher encodes hashes in PHC form:
// $argon2id$v=19$m=<kib>,t=<passes>,p=<lanes>$<salt>$<hash>
type Argon2PasswordHasher struct {
	params Argon2Params
}

func NewArgon2PasswordHasher(params Argon2Params) *Argon2PasswordHasher {
	if params.Memory == 0 {
		params.Memory = DefaultArgon2Params.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = DefaultArgon2Params.Iterations
	}
	if params.Parallelism == 0 {
		params.Parallelism = DefaultArgon2Params.Parallelism
	}
	if params.SaltLength == 0 {
		params.SaltLength = DefaultArgon2Params.SaltLength
	}
	if params.KeyLength == 0 {
		params.KeyLength = DefaultArgon2Params.KeyLength
	}
	return &Argon2PasswordHasher{params: params}
}

// NewArgon2PasswordHasherFromConfig builds a hasher from the password config section.
func NewArgon2PasswordHasherFromConfig(cfg sharedConfig.Argon2Config) *Argon2PasswordHasher {
	return NewArgon2PasswordHasher(Argon2Params{
		Memory:      cfg.Memory,
		Iterations:  cfg.Iterations,
		Parallelism: cfg.Parallelism,
	})
}

func (h *Argon2PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the hash with the parameters stored in encoded.
// A mismatch is (false, nil); an undecodable record is a CredentialFormatError.
func (h *Argon2PasswordHasher) Verify(password, encoded string) (bool, error) {
	params, salt, want, err := decodeArgon2Hash(encoded)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params, nil, nil, errors.NewCredentialFormatError("unexpected number of segments")
	}
	if parts[1] != "argon2id" {
		return params, nil, nil, errors.NewCredentialFormatError("unsupported algorithm " + parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.NewCredentialFormatError("unreadable version")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.NewCredentialFormatError(fmt.Sprintf("unsupported version %d", version))
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return params, nil, nil, errors.NewCredentialFormatError("unreadable parameters")
	}
	if params.Memory == 0 || params.Iterations == 0 || params.Parallelism == 0 {
		return params, nil, nil, errors.NewCredentialFormatError("zero work parameter")
	}
	if params.Memory > maxArgon2Memory || params.Iterations > maxArgon2Iterations {
		return params, nil, nil, errors.NewCredentialFormatError(
			fmt.Sprintf("work parameters out of range m=%d,t=%d", params.Memory, params.Iterations))
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 || len(salt) > maxArgon2SaltLength {
		return params, nil, nil, errors.NewCredentialFormatError("unreadable salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxArgon2KeyLength {
		return params, nil, nil, errors.NewCredentialFormatError("unreadable hash")
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
