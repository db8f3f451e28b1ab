package store

import (
	"context"
	"errors"
)

// memKV is a simple in-memory [KV] test double shared by the repository
// tests; it avoids mockgen for plain happy-path storage (the adapters use
// gomock where call expectations matter).
type memKV struct {
	data map[string]string

	failReads  bool
	failWrites bool
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.failReads {
		return "", false, errors.New("substrate read failure")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(_ context.Context, key, value string) error {
	if m.failWrites {
		return errors.New("substrate write failure")
	}
	m.data[key] = value
	return nil
}
