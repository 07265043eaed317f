package application

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/heromeals/orders-api/internal/domains/catalog/domain"
	catalogports "github.com/heromeals/orders-api/internal/domains/catalog/ports"
	types "github.com/heromeals/orders-api/internal/domains/orders/application/types"
	"github.com/heromeals/orders-api/internal/domains/orders/domain"
	"github.com/heromeals/orders-api/internal/domains/orders/ports"
)

type fakeOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
	saves  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.saves++
	clone := *order
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	stored := clone
	f.orders[clone.ID] = &stored
	return &clone, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	list := make([]*domain.Order, 0, len(f.orders))
	for _, order := range f.orders {
		clone := *order
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].OrderTime.After(list[j].OrderTime) })
	return list, nil
}

func (f *fakeOrderRepo) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Order, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*domain.Order, 0, len(all))
	for _, order := range all {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

type fakeCatalog struct {
	heroes map[int64]*catalogdomain.Hero
	meals  map[int64]*catalogdomain.Meal
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{heroes: map[int64]*catalogdomain.Hero{}, meals: map[int64]*catalogdomain.Meal{}}
}

func (c *fakeCatalog) addHero(id int64) {
	c.heroes[id] = &catalogdomain.Hero{ID: id, Name: "hero"}
}

func (c *fakeCatalog) addMeal(id int64) {
	c.meals[id] = &catalogdomain.Meal{ID: id, Name: "meal"}
}

func (c *fakeCatalog) GetHero(_ context.Context, id int64) (*catalogdomain.Hero, error) {
	hero, ok := c.heroes[id]
	if !ok {
		return nil, catalogports.ErrHeroNotFound
	}
	return hero, nil
}

func (c *fakeCatalog) GetMeal(_ context.Context, id int64) (*catalogdomain.Meal, error) {
	meal, ok := c.meals[id]
	if !ok {
		return nil, catalogports.ErrMealNotFound
	}
	return meal, nil
}

type fakeDispatcher struct {
	orderIDs []int64
	err      error
}

func (d *fakeDispatcher) Dispatch(_ context.Context, orderID int64) error {
	if d.err != nil {
		return d.err
	}
	d.orderIDs = append(d.orderIDs, orderID)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeOrderRepo, catalog *fakeCatalog, dispatcher ports.Dispatcher) *Service {
	return NewService(repo, catalog, WithDispatcher(dispatcher), WithNow(fixedNow))
}

func ptr[T any](v T) *T { return &v }

func TestCreate_DefaultsAndDispatchesOnce(t *testing.T) {
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	dispatcher := &fakeDispatcher{}
	svc := newTestService(repo, catalog, dispatcher)

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Nil(t, created.CompletedTime)
	assert.Equal(t, fixedNow().UTC(), created.OrderTime)
	require.Len(t, dispatcher.orderIDs, 1)
	assert.Equal(t, created.ID, dispatcher.orderIDs[0])
}

func TestCreate_DispatchFailureDoesNotFailCreation(t *testing.T) {
	repo := newFakeOrderRepo()
	dispatcher := &fakeDispatcher{err: errors.New("queue unreachable")}
	svc := newTestService(repo, newFakeCatalog(), dispatcher)

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestCreate_InvalidReferencesRejectedBeforeSave(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, newFakeCatalog(), &fakeDispatcher{})

	_, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 0, MealID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.saves)
}

func TestUpdate_RequiresBothReferences(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, newFakeCatalog(), &fakeDispatcher{})

	_, err := svc.Update(context.Background(), types.UpdateOrderInput{ID: 1, HeroID: ptr(int64(1))})
	assert.ErrorIs(t, err, ErrMissingReference)
	assert.Zero(t, repo.saves, "missing field check must run before any store access")
}

func TestUpdate_MissingHeroLeavesOrderUnchanged(t *testing.T) {
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	catalog.addMeal(2)
	svc := newTestService(repo, catalog, &fakeDispatcher{})

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)
	savesBefore := repo.saves

	_, err = svc.Update(context.Background(), types.UpdateOrderInput{
		ID:     created.ID,
		HeroID: ptr(int64(99)),
		MealID: ptr(int64(2)),
	})
	assert.ErrorIs(t, err, catalogports.ErrHeroNotFound)
	assert.Equal(t, savesBefore, repo.saves)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.HeroID)
}

func TestUpdate_InvalidStatusAbortsWholeUpdate(t *testing.T) {
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	catalog.addHero(7)
	catalog.addMeal(8)
	svc := newTestService(repo, catalog, &fakeDispatcher{})

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), types.UpdateOrderInput{
		ID:      created.ID,
		HeroID:  ptr(int64(7)),
		MealID:  ptr(int64(8)),
		Status:  ptr("bogus"),
		Message: ptr("should not land"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.HeroID, "hero change applied in memory must not be persisted")
	assert.Equal(t, int64(2), stored.MealID)
	assert.Empty(t, stored.Message)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	catalog.addHero(7)
	catalog.addMeal(8)
	svc := newTestService(repo, catalog, &fakeDispatcher{})

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), types.UpdateOrderInput{
		ID:      created.ID,
		HeroID:  ptr(int64(7)),
		MealID:  ptr(int64(8)),
		Status:  ptr("in_progress"),
		Message: ptr("ring twice"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.HeroID)
	assert.Equal(t, int64(8), updated.MealID)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
	assert.Equal(t, "ring twice", updated.Message)
	assert.Nil(t, updated.CompletedTime)
}

func TestPartialUpdate_CompletedStampSetOnce(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, newFakeCatalog(), &fakeDispatcher{})

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	completed, err := svc.PartialUpdate(context.Background(), types.PartialUpdateOrderInput{
		ID:     created.ID,
		Status: ptr("completed"),
	})
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedTime)
	assert.Equal(t, fixedNow().UTC(), *completed.CompletedTime)

	// Completing again must not move the stamp.
	again, err := svc.PartialUpdate(context.Background(), types.PartialUpdateOrderInput{
		ID:     created.ID,
		Status: ptr("completed"),
	})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedTime)
	assert.Equal(t, *completed.CompletedTime, *again.CompletedTime)
}

func TestPartialUpdate_IgnoresReferences(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, newFakeCatalog(), &fakeDispatcher{})

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	updated, err := svc.PartialUpdate(context.Background(), types.PartialUpdateOrderInput{
		ID:      created.ID,
		Message: ptr("leave at the door"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.HeroID)
	assert.Equal(t, int64(2), updated.MealID)
	assert.Equal(t, "leave at the door", updated.Message)
	assert.Equal(t, domain.StatusPending, updated.Status)
}

func TestPartialUpdate_InvalidStatusLeavesOrderUnchanged(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, newFakeCatalog(), &fakeDispatcher{})

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	_, err = svc.PartialUpdate(context.Background(), types.PartialUpdateOrderInput{
		ID:     created.ID,
		Status: ptr("bogus"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestDelete(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, newFakeCatalog(), &fakeDispatcher{})

	created, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), types.OrderIdentifier{ID: created.ID}))
	_, err = svc.GetByID(context.Background(), types.OrderIdentifier{ID: created.ID})
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = svc.Delete(context.Background(), types.OrderIdentifier{ID: 404})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListByStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, newFakeCatalog(), &fakeDispatcher{})

	first, err := svc.Create(context.Background(), types.CreateOrderInput{HeroID: 1, MealID: 2})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), types.CreateOrderInput{HeroID: 2, MealID: 3})
	require.NoError(t, err)

	_, err = svc.PartialUpdate(context.Background(), types.PartialUpdateOrderInput{
		ID:     first.ID,
		Status: ptr("cancelled"),
	})
	require.NoError(t, err)

	cancelled, err := svc.ListByStatus(context.Background(), "cancelled")
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)

	pending, err := svc.ListByStatus(context.Background(), "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestListByStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), newFakeCatalog(), &fakeDispatcher{})

	_, err := svc.ListByStatus(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
