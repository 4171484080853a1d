package test

import "errors"

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied access key.
func (h HasherStub) Hash(key string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(key)
	}
	return "hash:" + key, nil
}

// Compare validates an access key against the stored hash.
func (h HasherStub) Compare(hash string, key string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, key)
	}
	if hash != "hash:"+key {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(operator string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(operator)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "operator", nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}
