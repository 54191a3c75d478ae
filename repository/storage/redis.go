package storage

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

type redis struct {
	client    goredis.UniversalClient
	namespace string
}

// DefaultNamespace is used when none is configured.
const DefaultNamespace = "micromarket"

// NewRedisRepository returns a Redis backed Repository. Keys are stored as
// "{<namespace>}:<key>" without expiration; the hash tag keeps every key of
// a namespace in one cluster slot so MGET and MULTI work on a cluster client.
func NewRedisRepository(client goredis.UniversalClient, namespace string) Repository {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &redis{client: client, namespace: namespace}
}

func (r *redis) key(k string) string {
	return "{" + r.namespace + "}:" + k
}

// GetMany retrieves the values of the keys in one round trip
func (r *redis) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	vals, err := r.client.MGet(ctx, full...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if s, ok := v.(string); ok {
			out[keys[i]] = s
		}
	}
	return out, nil
}

// SetMany stores all pairs inside a MULTI/EXEC block
func (r *redis) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, r.key(k), v, 0)
		}
		return nil
	})
	return err
}

// Delete removes the keys with a single DEL
func (r *redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	return r.client.Del(ctx, full...).Err()
}
