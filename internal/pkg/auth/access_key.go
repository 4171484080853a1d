package auth

import "golang.org/x/crypto/bcrypt"

// KeyHasher defines hashing strategy for the operator access key.
type KeyHasher interface {
	Hash(key string) (string, error)
	Compare(hash string, key string) error
}

// BcryptHasher uses bcrypt to hash access keys.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns bcrypt hash for provided key.
func (h *BcryptHasher) Hash(key string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(key), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks key against stored hash.
func (h *BcryptHasher) Compare(hash string, key string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key))
}
