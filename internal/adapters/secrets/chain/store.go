package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/tradebot/internal/adapters/secrets/file"
	passstore "github.com/bnema/tradebot/internal/adapters/secrets/pass"
	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
)

// Store tries its backends in order. Reads return the first hit, writes
// land in the first backend that accepts them and deletes reach every
// backend so a removed secret cannot resurface from a fallback.
type Store struct {
	backends []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret store chain has no backends")

func NewStore(backends ...ports.SecretStore) (*Store, error) {
	filtered := make([]ports.SecretStore, 0, len(backends))
	for _, backend := range backends {
		if backend != nil {
			filtered = append(filtered, backend)
		}
	}
	if len(filtered) == 0 {
		return nil, errNoBackends
	}

	return &Store{backends: filtered}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	allMissing := true
	for i, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return "", err
		}
		// A backend that is not installed holds nothing.
		if !errors.Is(err, domain.ErrSecretNotFound) && !errors.Is(err, passstore.ErrUnavailable) {
			allMissing = false
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	if allMissing {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for i, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if isContextError(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	failures := 0
	for i, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil {
			continue
		}
		if isContextError(err) {
			return err
		}
		failures++
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	// A backend that is unavailable holds nothing to delete.
	if failures < len(s.backends) {
		return nil
	}
	return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
