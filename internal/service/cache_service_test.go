package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/mmw1984/timetable/pkg/errors"
)

type fakeCacheRepo struct {
	store  map[string]string
	getErr error
	setErr error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: make(map[string]string)}
}

func (r *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if r.getErr != nil {
		return r.getErr
	}
	value, ok := r.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*dest.(*string) = value
	return nil
}

func (r *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.store[key] = value.(string)
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var got string
	assert.False(t, svc.Get(context.Background(), "k", &got))

	svc.Set(context.Background(), "k", "v")
	assert.True(t, svc.Get(context.Background(), "k", &got))
	assert.Equal(t, "v", got)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := newFakeCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	svc.Set(context.Background(), "k", "v")
	assert.Empty(t, repo.store)

	var got string
	assert.False(t, svc.Get(context.Background(), "k", &got))

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
}

func TestCacheServiceSwallowsFailures(t *testing.T) {
	repo := newFakeCacheRepo()
	repo.getErr = errors.New("redis down")
	repo.setErr = errors.New("redis down")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var got string
	assert.False(t, svc.Get(context.Background(), "k", &got))
	svc.Set(context.Background(), "k", "v") // must not panic or propagate
}
