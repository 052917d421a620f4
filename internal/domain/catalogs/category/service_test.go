package category

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
	byID    map[id.ID]*Category
	deleted []id.ID
}

func newFakeRepo(cats ...*Category) *fakeRepo {
	r := &fakeRepo{byID: make(map[id.ID]*Category)}
	for _, c := range cats {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, c *Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, categoryID id.ID) (*Category, error) {
	c, ok := r.byID[categoryID]
	if !ok {
		return nil, apperror.NewNotFound("category", categoryID.String())
	}
	return c, nil
}

func (r *fakeRepo) Update(ctx context.Context, c *Category) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, categoryID id.ID) error {
	delete(r.byID, categoryID)
	r.deleted = append(r.deleted, categoryID)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[*Category], error) {
	return domain.ListResult[*Category]{Items: []*Category{}, Page: q.Page, Limit: q.Limit}, nil
}

func (r *fakeRepo) Exists(ctx context.Context, categoryID id.ID) (bool, error) {
	_, ok := r.byID[categoryID]
	return ok, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedCounter int64

func (n fixedCounter) CountByCategory(ctx context.Context, categoryID id.ID) (int64, error) {
	return int64(n), nil
}

func TestDeleteRefusedWhileProductsAssigned(t *testing.T) {
	cat := New("Fasteners", "")
	repo := newFakeRepo(cat)
	svc := NewService(repo, passthroughTx{}, fixedCounter(3))

	err := svc.Delete(context.Background(), cat.ID)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInUse, appErr.Code)
	assert.EqualValues(t, 3, appErr.Details["productCount"])
	assert.Empty(t, repo.deleted, "row must stay untouched")
}

func TestDeleteEmptyCategory(t *testing.T) {
	cat := New("Fasteners", "")
	repo := newFakeRepo(cat)
	svc := NewService(repo, passthroughTx{}, fixedCounter(0))

	require.NoError(t, svc.Delete(context.Background(), cat.ID))
	assert.Equal(t, []id.ID{cat.ID}, repo.deleted)
}

func TestDeleteMissingCategory(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTx{}, fixedCounter(0))

	err := svc.Delete(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateValidates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTx{}, fixedCounter(0))

	err := svc.Create(context.Background(), &Category{ID: id.New()})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
