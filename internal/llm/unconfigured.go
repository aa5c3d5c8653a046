package llm

import (
	"context"
	"fmt"
)

// NotConfiguredError reports that no usable credential was available for a
// provider. The controller renders it as a warning in the transcript instead
// of failing the session.
type NotConfiguredError struct {
	Provider string
	Reason   string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s generator is not configured: %s", e.Provider, e.Reason)
}

type unconfigured struct {
	provider string
	reason   string
}

// NewUnconfigured returns a Generator that always fails with a
// NotConfiguredError. It keeps the interview running in degraded mode when
// no provider credential is available at startup.
func NewUnconfigured(provider, reason string) Generator {
	return &unconfigured{provider: provider, reason: reason}
}

func (u *unconfigured) Generate(context.Context, string, string) (string, error) {
	return "", &NotConfiguredError{Provider: u.provider, Reason: u.reason}
}
