package security

import (
	"errors"
	"fmt"

	internal_errors "github.com/itchan-dev/forumapi/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

type BcryptPasswordHash struct {
	cost int
}

// NewBcryptPasswordHash uses bcrypt.DefaultCost when cost is out of range.
func NewBcryptPasswordHash(cost int) *BcryptPasswordHash {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHash{cost: cost}
}

func (b *BcryptPasswordHash) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (b *BcryptPasswordHash) ComparePassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return internal_errors.Authentication("kredensial yang Anda masukkan salah")
	}
	return err
}
