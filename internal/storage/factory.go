package storage

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MemoryStoreKind  = "memory"
	SQLiteStoreKind  = "sqlite"
	DefaultStoreKind = MemoryStoreKind
)

var ErrUnsupportedStore = errors.New("unsupported store backend")

// StoreKinds lists the accepted backend names.
func StoreKinds() []string {
	return []string{MemoryStoreKind, SQLiteStoreKind}
}

// NewStore builds an uninitialized backend. sqlitePath is only read for the
// sqlite kind; the database file is opened on Init.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", MemoryStoreKind:
		return NewMemoryStore(), nil
	case SQLiteStoreKind:
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedStore, kind, strings.Join(StoreKinds(), ", "))
	}
}

// CloseIfSupported releases backends holding resources; the memory store has
// nothing to close.
func CloseIfSupported(store Store) error {
	if closer, ok := store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
