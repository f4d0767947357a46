package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"BoardKeeper/internal/apperrors"
)

// keyLen — AES-256 key length in bytes.
const keyLen = 32

// saltLen — per-document random salt length in bytes. The salt is stored in
// the blob itself, so identical passwords across workspaces never share a key.
const saltLen = 16

// iterations — PBKDF2 work factor. Paid once per workspace open or password
// change; the derived key is cached for the session.
const iterations = 100_000

// magic marks an encrypted document. A plaintext document is JSON and can
// never start with these bytes, so the check is unambiguous.
var magic = []byte("BKV1")

// DeriveKey derives an AES-256 key from a password and salt. Deterministic:
// the same password and salt always yield the same key.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
}

// NewSalt returns a fresh random salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Encrypt derives a key from the password with a fresh random salt and seals
// plain into an opaque blob: magic || salt || nonce || ciphertext.
func Encrypt(plain []byte, password string) ([]byte, error) {
	salt, err := NewSalt()
	if err != nil {
		return nil, err
	}
	return EncryptWithKey(plain, salt, DeriveKey(password, salt))
}

// EncryptWithKey seals plain with an already-derived key, producing the same
// blob format as Encrypt. Used by sessions that cache the key to avoid
// re-running the KDF on every save.
func EncryptWithKey(plain, salt, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	blob := make([]byte, 0, len(magic)+len(salt)+len(nonce)+len(plain)+gcm.Overhead())
	blob = append(blob, magic...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plain, nil), nil
}

// Decrypt opens a blob produced by Encrypt. Any failure — bad framing, wrong
// password, flipped ciphertext bytes — comes back as ErrDecryptionFailed;
// the caller cannot tell the cases apart, and must not.
func Decrypt(blob []byte, password string) ([]byte, error) {
	salt, err := Salt(blob)
	if err != nil {
		return nil, err
	}
	return DecryptWithKey(blob, DeriveKey(password, salt))
}

// DecryptWithKey opens a blob with an already-derived key.
func DecryptWithKey(blob, key []byte) ([]byte, error) {
	if !IsCiphertext(blob) {
		return nil, apperrors.ErrDecryptionFailed
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperrors.ErrDecryptionFailed
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperrors.ErrDecryptionFailed
	}
	body := blob[len(magic)+saltLen:]
	if len(body) < gcm.NonceSize() {
		return nil, apperrors.ErrDecryptionFailed
	}
	nonce, ciphertext := body[:gcm.NonceSize()], body[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, apperrors.ErrDecryptionFailed
	}
	return plain, nil
}

// Salt extracts the stored salt from an encrypted blob.
func Salt(blob []byte) ([]byte, error) {
	if !IsCiphertext(blob) {
		return nil, apperrors.ErrDecryptionFailed
	}
	return blob[len(magic) : len(magic)+saltLen], nil
}

// IsCiphertext reports whether data looks like an encrypted document. Cheap
// structural check only; no password needed.
func IsCiphertext(data []byte) bool {
	return len(data) > len(magic)+saltLen && bytes.HasPrefix(data, magic)
}
