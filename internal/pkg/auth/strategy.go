package auth

import "time"

// Strategy issues and validates operator session tokens.
type Strategy interface {
	IssueToken(operator string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
