package kv

import (
	"context"

	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
)

// StateClient is the subset of the redis client the backend needs.
type StateClient interface {
	SaveState(ctx context.Context, name string, blob []byte) error
	LoadState(ctx context.Context, name string) ([]byte, bool, error)
	DeleteState(ctx context.Context, name string) error
}

// Redis stores blobs under sf:state:<key>.
type Redis struct {
	client StateClient
}

func NewRedis(client StateClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	blob, found, err := r.client.LoadState(ctx, key)
	if err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load state from redis")
	}
	return blob, found, nil
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := r.client.SaveState(ctx, key, value); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save state to redis")
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.DeleteState(ctx, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete state from redis")
	}
	return nil
}
