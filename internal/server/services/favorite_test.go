package services

import (
	"context"
	"errors"
	"testing"

	"github.com/teyvatdex/teyvatdex/internal/common"
)

func newFavoriteService(t *testing.T, rm *fakeRepoManager) *FavoriteService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { _ = db.Close() })
	return NewFavoriteService(db, rm, nil)
}

func TestFavoriteAdd_New(t *testing.T) {
	rm := &fakeRepoManager{f: &fakeFavoritesRepo{addOut: true}}
	s := newFavoriteService(t, rm)

	created, err := s.Add(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
}

func TestFavoriteAdd_DuplicateIsNoOp(t *testing.T) {
	rm := &fakeRepoManager{f: &fakeFavoritesRepo{addOut: false}}
	s := newFavoriteService(t, rm)

	created, err := s.Add(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if created {
		t.Fatalf("duplicate add must report false")
	}
}

func TestFavoriteAdd_InvalidCharacterID(t *testing.T) {
	rm := &fakeRepoManager{f: &fakeFavoritesRepo{}}
	s := newFavoriteService(t, rm)

	for _, id := range []int64{0, -1} {
		if _, err := s.Add(context.Background(), 1, id); !errors.Is(err, common.ErrValidation) {
			t.Fatalf("want common.ErrValidation for id=%d, got %v", id, err)
		}
	}
	if rm.f.addCalls != 0 {
		t.Fatalf("store must not be touched on validation failure")
	}
}

func TestFavoriteAdd_UnknownCharacter(t *testing.T) {
	rm := &fakeRepoManager{f: &fakeFavoritesRepo{addErr: common.ErrNotFound}}
	s := newFavoriteService(t, rm)

	_, err := s.Add(context.Background(), 1, 9999)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestFavoriteRemove_Absent(t *testing.T) {
	rm := &fakeRepoManager{f: &fakeFavoritesRepo{removeOut: false}}
	s := newFavoriteService(t, rm)

	removed, err := s.Remove(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if removed {
		t.Fatalf("remove of absent pair must be a no-op, not an error")
	}
}

func TestFavoriteCheck(t *testing.T) {
	rm := &fakeRepoManager{f: &fakeFavoritesRepo{existsOut: true}}
	s := newFavoriteService(t, rm)

	ok, err := s.Check(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !ok {
		t.Fatalf("expected true")
	}
}

func TestFavoriteList(t *testing.T) {
	rm := &fakeRepoManager{f: &fakeFavoritesRepo{listOut: []int64{42, 7}}}
	s := newFavoriteService(t, rm)

	ids, err := s.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
