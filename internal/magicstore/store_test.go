package magicstore

import (
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	want := &Entry{
		Magic: 0x0080001020400080,
		Bits:  12,
		Tries: 42,
		Found: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.Save("rook", 0, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load("rook", 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil for saved entry")
	}
	if got.Magic != want.Magic || got.Bits != want.Bits || got.Tries != want.Tries {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
	if !got.Found.Equal(want.Found) {
		t.Errorf("Found = %v, want %v", got.Found, want.Found)
	}
}

func TestLoadMissing(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	got, err := s.Load("bishop", 33)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != nil {
		t.Errorf("Load of missing key = %+v, want nil", got)
	}
}

func TestLoadAll(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if err := s.Save("bishop", 7, &Entry{Magic: 0x104104104000, Bits: 6}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save("bishop", 56, &Entry{Magic: 0x104104104000, Bits: 6}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := s.LoadAll("bishop")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if entries[7] == nil || entries[56] == nil {
		t.Error("saved entries missing from LoadAll")
	}
	if entries[0] != nil {
		t.Error("unsearched square should be nil")
	}
}
