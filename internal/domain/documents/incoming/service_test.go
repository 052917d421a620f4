package incoming

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/internal/domain/catalogs/product"
	"stockroom/internal/domain/documents"
)

type fakeRepo struct {
	byID    map[id.ID]*Incoming
	nextNum int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[id.ID]*Incoming)}
}

func (r *fakeRepo) Create(ctx context.Context, doc *Incoming) error {
	r.byID[doc.ID] = doc
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*Incoming, error) {
	doc, ok := r.byID[docID]
	if !ok {
		return nil, apperror.NewNotFound("incoming transaction", docID.String())
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, doc *Incoming) error {
	r.byID[doc.ID] = doc
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, docID id.ID) error {
	delete(r.byID, docID)
	return nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, docID id.ID, status documents.Status) error {
	r.byID[docID].Status = status
	return nil
}

func (r *fakeRepo) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[Row], error) {
	return domain.ListResult[Row]{Items: []Row{}, Page: q.Page, Limit: q.Limit}, nil
}

func (r *fakeRepo) ListItemRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[documents.ItemRow], error) {
	return domain.ListResult[documents.ItemRow]{Items: []documents.ItemRow{}, Page: q.Page, Limit: q.Limit}, nil
}

func (r *fakeRepo) NextNumber(ctx context.Context) (string, error) {
	r.nextNum++
	return fmt.Sprintf("IN-%06d", r.nextNum), nil
}

type fakeStock struct {
	levels map[id.ID]int
}

func (f *fakeStock) GetForUpdate(ctx context.Context, productID id.ID) (*product.Product, error) {
	return &product.Product{ID: productID, Stock: f.levels[productID]}, nil
}

func (f *fakeStock) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	f.levels[productID] += delta
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func draft(productID id.ID, qty int) *Incoming {
	return &Incoming{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Items: []documents.Item{
			{ProductID: productID, Quantity: qty, UnitPrice: decimal.NewFromInt(2)},
		},
	}
}

func newService() (*Service, *fakeRepo, *fakeStock) {
	repo := newFakeRepo()
	stock := &fakeStock{levels: make(map[id.ID]int)}
	return NewService(repo, stock, passthroughTx{}), repo, stock
}

func TestCreateDraftHasNoStockEffect(t *testing.T) {
	svc, repo, stock := newService()
	productID := id.New()
	doc := draft(productID, 5)

	require.NoError(t, svc.Create(context.Background(), doc))

	assert.Equal(t, documents.StatusDraft, doc.Status)
	assert.Equal(t, "IN-000001", doc.Number)
	assert.True(t, doc.TotalAmount.Equal(decimal.NewFromInt(10)))
	assert.Zero(t, stock.levels[productID])
	assert.Contains(t, repo.byID, doc.ID)
}

func TestCreateDoneAppliesStock(t *testing.T) {
	svc, _, stock := newService()
	productID := id.New()
	doc := draft(productID, 5)
	doc.Status = documents.StatusDone

	require.NoError(t, svc.Create(context.Background(), doc))
	assert.Equal(t, 5, stock.levels[productID])
}

func TestPost(t *testing.T) {
	svc, repo, stock := newService()
	productID := id.New()
	doc := draft(productID, 7)
	require.NoError(t, svc.Create(context.Background(), doc))

	posted, err := svc.Post(context.Background(), doc.ID)
	require.NoError(t, err)

	assert.Equal(t, documents.StatusDone, posted.Status)
	assert.Equal(t, 7, stock.levels[productID])
	assert.Equal(t, documents.StatusDone, repo.byID[doc.ID].Status)

	// Posting twice is refused, stock moves once.
	_, err = svc.Post(context.Background(), doc.ID)
	require.Error(t, err)
	assert.Equal(t, 7, stock.levels[productID])
}

func TestUpdateFrozenWhenDone(t *testing.T) {
	svc, _, _ := newService()
	doc := draft(id.New(), 3)
	require.NoError(t, svc.Create(context.Background(), doc))
	_, err := svc.Post(context.Background(), doc.ID)
	require.NoError(t, err)

	err = svc.Update(context.Background(), doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDocumentDone, appErr.Code)
}

func TestUpdateKeepsNumberAndForcesDraft(t *testing.T) {
	svc, repo, _ := newService()
	doc := draft(id.New(), 3)
	require.NoError(t, svc.Create(context.Background(), doc))

	edited := draft(id.New(), 4)
	edited.ID = doc.ID
	edited.Number = "IN-999999"
	edited.Status = documents.StatusDone

	require.NoError(t, svc.Update(context.Background(), edited))

	stored := repo.byID[doc.ID]
	assert.Equal(t, doc.Number, stored.Number)
	assert.Equal(t, documents.StatusDraft, stored.Status)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(8)))
}

func TestDeleteDoneRollsStockBack(t *testing.T) {
	svc, repo, stock := newService()
	productID := id.New()
	doc := draft(productID, 6)
	require.NoError(t, svc.Create(context.Background(), doc))
	_, err := svc.Post(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, 6, stock.levels[productID])

	require.NoError(t, svc.Delete(context.Background(), doc.ID))

	assert.Zero(t, stock.levels[productID])
	assert.NotContains(t, repo.byID, doc.ID)
}

func TestDeleteDoneRefusedWhenStockAlreadyGone(t *testing.T) {
	svc, repo, stock := newService()
	productID := id.New()
	doc := draft(productID, 6)
	require.NoError(t, svc.Create(context.Background(), doc))
	_, err := svc.Post(context.Background(), doc.ID)
	require.NoError(t, err)

	// Goods were shipped out in the meantime.
	stock.levels[productID] = 2

	err = svc.Delete(context.Background(), doc.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	assert.Contains(t, repo.byID, doc.ID, "document survives the refused rollback")
}

func TestCreateRejectsEmptyItems(t *testing.T) {
	svc, _, _ := newService()
	doc := &Incoming{Date: time.Now()}

	err := svc.Create(context.Background(), doc)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
