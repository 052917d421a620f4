package requests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

type fakeRepo struct {
	byID map[id.ID]*Request
}

func newFakeRepo(reqs ...*Request) *fakeRepo {
	r := &fakeRepo{byID: make(map[id.ID]*Request)}
	for _, req := range reqs {
		r.byID[req.ID] = req
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, req *Request) error {
	r.byID[req.ID] = req
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, requestID id.ID) (*Request, error) {
	req, ok := r.byID[requestID]
	if !ok {
		return nil, apperror.NewNotFound("request", requestID.String())
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, req *Request) error {
	r.byID[req.ID] = req
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, requestID id.ID) error {
	delete(r.byID, requestID)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[*Request], error) {
	return domain.ListResult[*Request]{Items: []*Request{}, Page: q.Page, Limit: q.Limit}, nil
}

func (r *fakeRepo) Exists(ctx context.Context, requestID id.ID) (bool, error) {
	_, ok := r.byID[requestID]
	return ok, nil
}

func (r *fakeRepo) CountPending(ctx context.Context) (int64, error) {
	var n int64
	for _, req := range r.byID {
		if req.FulfilledQuantity <= 0 {
			n++
		}
	}
	return n, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestFulfill(t *testing.T) {
	req := &Request{ID: id.New(), RequestedItem: "Washers", RequestedQuantity: 50}
	repo := newFakeRepo(req)
	svc := NewService(repo, passthroughTx{})
	ctx := context.Background()

	got, err := svc.Fulfill(ctx, req.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, got.FulfilledQuantity)
	assert.Equal(t, StatusPartial, got.Status())
	require.NotNil(t, got.FulfilledDate)
	firstDate := *got.FulfilledDate

	// A later delivery accumulates and keeps the original date.
	got, err = svc.Fulfill(ctx, req.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 50, got.FulfilledQuantity)
	assert.Equal(t, StatusFulfilled, got.Status())
	assert.Equal(t, firstDate, *got.FulfilledDate)
}

func TestFulfillRejectsNonPositiveQuantity(t *testing.T) {
	req := &Request{ID: id.New(), RequestedItem: "Washers", RequestedQuantity: 50}
	svc := NewService(newFakeRepo(req), passthroughTx{})

	_, err := svc.Fulfill(context.Background(), req.ID, 0)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestFulfillMissingRequest(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{})

	_, err := svc.Fulfill(context.Background(), id.New(), 5)
	assert.True(t, apperror.IsNotFound(err))
}
