package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"shelflife/internal/domain/product"
	"shelflife/internal/domain/team"
	"shelflife/internal/pkg/errs"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCache is an in-memory cache.Store that records invalidations.
type fakeCache struct {
	entries map[string][]byte
	deleted []string
	getErr  error
	setErr  error
	delErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	raw, ok := f.entries[key]
	return raw, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	if f.delErr != nil {
		return f.delErr
	}
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

type fakeTeamRepo struct {
	teams   map[uuid.UUID]*team.Team
	removed []uuid.UUID
}

func newFakeTeamRepo(teams ...*team.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: map[uuid.UUID]*team.Team{}}
	for _, t := range teams {
		repo.teams[t.ID] = t
	}
	return repo
}

func (f *fakeTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*team.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, errs.E(errs.KindNotFound, "team not found")
	}
	return t, nil
}

func (f *fakeTeamRepo) Remove(_ context.Context, id uuid.UUID) error {
	delete(f.teams, id)
	f.removed = append(f.removed, id)
	return nil
}

type fakeMemberRepo struct {
	members map[string]*team.Member
	saved   []team.Member
	removed []string
}

func membershipKey(teamID, userID uuid.UUID) string {
	return teamID.String() + "/" + userID.String()
}

func newFakeMemberRepo(members ...*team.Member) *fakeMemberRepo {
	repo := &fakeMemberRepo{members: map[string]*team.Member{}}
	for _, m := range members {
		repo.members[membershipKey(m.TeamID, m.UserID)] = m
	}
	return repo
}

func (f *fakeMemberRepo) Find(_ context.Context, teamID, userID uuid.UUID) (*team.Member, error) {
	m, ok := f.members[membershipKey(teamID, userID)]
	if !ok {
		return nil, errs.E(errs.KindNotFound, "membership not found")
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMemberRepo) Save(_ context.Context, m *team.Member) error {
	cp := *m
	f.members[membershipKey(m.TeamID, m.UserID)] = &cp
	f.saved = append(f.saved, cp)
	return nil
}

func (f *fakeMemberRepo) Remove(_ context.Context, teamID, userID uuid.UUID) error {
	key := membershipKey(teamID, userID)
	delete(f.members, key)
	f.removed = append(f.removed, key)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*product.Product
	created  []product.Product
	cleared  []uuid.UUID
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[uuid.UUID]*product.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errs.E(errs.KindNotFound, "product not found")
	}
	return p, nil
}

func (f *fakeProductRepo) ListByCode(_ context.Context, teamID uuid.UUID, code string) ([]product.Product, error) {
	var out []product.Product
	for _, p := range f.products {
		if p.TeamID == teamID && p.Code != nil && *p.Code == code {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListIDsByTeam(_ context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, p := range f.products {
		if p.TeamID == teamID {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeProductRepo) DeleteByTeam(_ context.Context, teamID uuid.UUID) error {
	for id, p := range f.products {
		if p.TeamID == teamID {
			delete(f.products, id)
		}
	}
	f.cleared = append(f.cleared, teamID)
	return nil
}

type fakeBatchRepo struct {
	batches  map[uuid.UUID]*product.Batch
	products *fakeProductRepo
	saved    []product.Batch
	created  []product.Batch
}

func newFakeBatchRepo(products *fakeProductRepo, batches ...*product.Batch) *fakeBatchRepo {
	repo := &fakeBatchRepo{batches: map[uuid.UUID]*product.Batch{}, products: products}
	for _, b := range batches {
		repo.batches[b.ID] = b
	}
	return repo
}

func (f *fakeBatchRepo) FindWithProduct(ctx context.Context, id uuid.UUID) (*product.Batch, *product.Product, error) {
	b, ok := f.batches[id]
	if !ok {
		return nil, nil, errs.E(errs.KindNotFound, "batch not found")
	}
	p, err := f.products.FindByID(ctx, b.ProductID)
	if err != nil {
		return nil, nil, err
	}
	cp := *b
	return &cp, p, nil
}

func (f *fakeBatchRepo) CreateMany(_ context.Context, batches []product.Batch) error {
	for _, b := range batches {
		cp := b
		f.batches[b.ID] = &cp
	}
	f.created = append(f.created, batches...)
	return nil
}

func (f *fakeBatchRepo) Save(_ context.Context, b *product.Batch) error {
	cp := *b
	f.batches[b.ID] = &cp
	f.saved = append(f.saved, cp)
	return nil
}

type fakeBrandRepo struct {
	brands  []product.Brand
	created []product.Brand
}

func (f *fakeBrandRepo) ListByTeam(_ context.Context, teamID uuid.UUID) ([]product.Brand, error) {
	var out []product.Brand
	for _, b := range f.brands {
		if b.TeamID == teamID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBrandRepo) CreateMany(_ context.Context, brands []product.Brand) error {
	f.brands = append(f.brands, brands...)
	f.created = append(f.created, brands...)
	return nil
}

type fakeStoreRepo struct {
	stores []product.Store
}

func (f *fakeStoreRepo) ListByTeam(_ context.Context, teamID uuid.UUID) ([]product.Store, error) {
	var out []product.Store
	for _, s := range f.stores {
		if s.TeamID == teamID {
			out = append(out, s)
		}
	}
	return out, nil
}
