// Package credentials keeps Canvas API tokens in the OS keyring, keyed by the
// Canvas host so several institutions can be configured side by side.
package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// Service is the keyring service name tokens are stored under.
const Service = "canvas-todo"

// ErrNotFound is returned when no token is stored for a host.
var ErrNotFound = errors.New("no token stored")

// Keyring stores tokens for a keyring service.
type Keyring struct {
	service string
}

// New returns a Keyring for Service.
func New() *Keyring {
	return &Keyring{service: Service}
}

// Token returns the token stored for host.
func (k *Keyring) Token(host string) (string, error) {
	if host == "" {
		return "", errors.New("canvas host is empty")
	}

	tok, err := keyring.Get(k.service, host)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", host, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read keyring: %w", err)
	}
	return tok, nil
}

// SetToken stores token for host, replacing any previous value.
func (k *Keyring) SetToken(host, token string) error {
	token = strings.TrimSpace(token)
	if host == "" {
		return errors.New("canvas host is empty")
	}
	if token == "" {
		return errors.New("token is empty")
	}

	if err := keyring.Set(k.service, host, token); err != nil {
		return fmt.Errorf("write keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the token stored for host.
func (k *Keyring) DeleteToken(host string) error {
	err := keyring.Delete(k.service, host)
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%s: %w", host, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete keyring entry: %w", err)
	}
	return nil
}
