package testutil

import (
	"context"
	"testing"
	"time"
)

// ContextWithTimeout создаёт context с timeout и автоматически отменяет его при завершении теста.
func ContextWithTimeout(t testing.TB, d time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

// CancelledContext возвращает уже отменённый context.
func CancelledContext(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
