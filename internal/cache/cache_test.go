package cache_test

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/inkwell-labs/inkctl/internal/api"
	"github.com/inkwell-labs/inkctl/internal/cache"
)

func testChapter() *api.Chapter {
	return &api.Chapter{
		ID:            uuid.New(),
		EbookID:       uuid.New(),
		ChapterNumber: 3,
		Title:         "The Long Night",
		Content:       "It was a dark and stormy night.",
	}
}

func TestStoreAndLoad(t *testing.T) {
	m := cache.New(t.TempDir())
	ch := testChapter()

	if err := m.Store(ch); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !m.Exists(ch.EbookID, ch.ID) {
		t.Fatal("chapter should exist after Store")
	}

	got, err := m.Load(ch.EbookID, ch.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || got.Content != ch.Content || got.ChapterNumber != 3 {
		t.Errorf("got %+v, want %+v", got, ch)
	}
}

func TestLoad_MissingIsNil(t *testing.T) {
	m := cache.New(t.TempDir())

	got, err := m.Load(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("missing entry should be nil, got %+v", got)
	}
}

func TestLoad_CorruptEntryIsDropped(t *testing.T) {
	m := cache.New(t.TempDir())
	ch := testChapter()
	if err := m.Store(ch); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := os.WriteFile(m.Path(ch.EbookID, ch.ID), []byte("{truncated"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := m.Load(ch.EbookID, ch.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("corrupt entry should read as missing, got %+v", got)
	}
	if m.Exists(ch.EbookID, ch.ID) {
		t.Error("corrupt entry should have been removed")
	}
}

func TestClear(t *testing.T) {
	m := cache.New(t.TempDir())
	bookID := uuid.New()
	for i := 1; i <= 3; i++ {
		ch := testChapter()
		ch.EbookID = bookID
		ch.ChapterNumber = i
		if err := m.Store(ch); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	if err := m.Clear(bookID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := m.Load(bookID, uuid.New())
	if err != nil || got != nil {
		t.Errorf("after Clear: got %+v, err %v", got, err)
	}
}

func TestRemove_MissingIsNotAnError(t *testing.T) {
	m := cache.New(t.TempDir())
	if err := m.Remove(uuid.New(), uuid.New()); err != nil {
		t.Errorf("Remove of missing entry: %v", err)
	}
}
