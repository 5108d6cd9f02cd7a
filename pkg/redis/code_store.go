package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrCodeNotFound = errors.New("code not found or expired")
	ErrCodeMismatch = errors.New("code does not match")
)

// CodeStore keeps short-lived one-time codes (two-factor login codes,
// email verification and password reset tokens) in Redis under a
// purpose-scoped key with a TTL.
type CodeStore struct {
	prefix string
	ttl    time.Duration
}

var (
	setCodeValue = Set
	getCodeValue = Get
	delCodeValue = Del
)

// NewCodeStore creates a code store for the given purpose (key prefix)
func NewCodeStore(prefix string, ttl time.Duration) *CodeStore {
	return &CodeStore{prefix: prefix, ttl: ttl}
}

func (s *CodeStore) key(subject string) string {
	return s.prefix + ":" + subject
}

// Put stores a code for the subject, replacing any previous one
func (s *CodeStore) Put(ctx context.Context, subject, code string) error {
	return setCodeValue(ctx, s.key(subject), code, s.ttl)
}

// Verify checks the stored code and consumes it on success
func (s *CodeStore) Verify(ctx context.Context, subject, code string) error {
	stored, err := getCodeValue(ctx, s.key(subject))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrCodeNotFound
		}
		return err
	}
	if stored != code {
		return ErrCodeMismatch
	}
	return delCodeValue(ctx, s.key(subject))
}

// Peek returns the stored code without consuming it
func (s *CodeStore) Peek(ctx context.Context, subject string) (string, error) {
	stored, err := getCodeValue(ctx, s.key(subject))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrCodeNotFound
		}
		return "", err
	}
	return stored, nil
}

// Invalidate removes any stored code for the subject
func (s *CodeStore) Invalidate(ctx context.Context, subject string) error {
	return delCodeValue(ctx, s.key(subject))
}
