package auth

import (
	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
)

// OperatorName is the subject recorded in every back-office session token.
// The service runs with a single shared access key, so there is exactly one
// operator identity.
const OperatorName = "operator"

// SessionManager exchanges the shared access key for signed session tokens.
type SessionManager struct {
	hasher   KeyHasher
	strategy Strategy
	keyHash  string
}

// NewSessionManager hashes the configured access key and wires the token
// strategy.
func NewSessionManager(hasher KeyHasher, strategy Strategy, accessKey string) (*SessionManager, error) {
	keyHash, err := hasher.Hash(accessKey)
	if err != nil {
		return nil, err
	}
	return &SessionManager{hasher: hasher, strategy: strategy, keyHash: keyHash}, nil
}

// Open validates the access key and issues a session token.
func (m *SessionManager) Open(accessKey string) (string, error) {
	if err := m.hasher.Compare(m.keyHash, accessKey); err != nil {
		return "", domainErrors.ErrInvalidAccessKey
	}
	return m.strategy.IssueToken(OperatorName)
}

// Parse validates a session token and returns the operator name.
func (m *SessionManager) Parse(token string) (string, error) {
	return m.strategy.ParseToken(token)
}
