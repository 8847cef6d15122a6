package testutil

import (
	"context"
	"errors"
	"sync"
)

// ErrInjected is the default error returned by FailingKV.
var ErrInjected = errors.New("injected store failure")

// FailingKV is an in-memory key-value store that can be switched into a
// failing mode. Writes fail while FailSaves is on; reads fail while
// FailLoads is on. Values written before a failure are kept.
type FailingKV struct {
	mu        sync.Mutex
	data      map[string]string
	failSaves bool
	failLoads bool
	saves     int
	Err       error
}

func NewFailingKV() *FailingKV {
	return &FailingKV{data: make(map[string]string)}
}

func (f *FailingKV) FailSaves(on bool) {
	f.mu.Lock()
	f.failSaves = on
	f.mu.Unlock()
}

func (f *FailingKV) FailLoads(on bool) {
	f.mu.Lock()
	f.failLoads = on
	f.mu.Unlock()
}

func (f *FailingKV) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

func (f *FailingKV) Load(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLoads {
		return "", false, f.err()
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *FailingKV) Save(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSaves {
		return f.err()
	}
	f.data[key] = value
	f.saves++
	return nil
}

func (f *FailingKV) Clear(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSaves {
		return f.err()
	}
	delete(f.data, key)
	return nil
}

// Value returns the raw stored value for key.
func (f *FailingKV) Value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

// Put seeds a raw value without counting it as a save.
func (f *FailingKV) Put(key, value string) {
	f.mu.Lock()
	f.data[key] = value
	f.mu.Unlock()
}

// Saves counts successful Save calls.
func (f *FailingKV) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}
