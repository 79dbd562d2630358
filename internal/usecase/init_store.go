// Package usecase contains application use cases.
package usecase

import (
	"context"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// InitStoreOutput contains the result of initializing the store.
type InitStoreOutput struct {
	AlreadyInitialized bool
}

// InitStore is the use case for creating the task store.
type InitStore struct {
	store domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer) *InitStore {
	return &InitStore{store: store}
}

// Execute creates the store document if it does not exist.
func (uc *InitStore) Execute(_ context.Context) (*InitStoreOutput, error) {
	if uc.store.IsInitialized() {
		return &InitStoreOutput{AlreadyInitialized: true}, nil
	}
	if err := uc.store.Initialize(); err != nil {
		return nil, err
	}
	return &InitStoreOutput{}, nil
}
