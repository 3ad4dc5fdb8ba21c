package vaults

import (
	"context"
	"errors"
	"testing"
)

func TestServiceSaveNormalizesCategories(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	vault, err := svc.Save(context.Background(), Vault{
		ID:        "vault-1",
		UserID:    "user-1",
		Interests: []string{" Music ", "music", "Outdoors", ""},
		Dislikes:  []string{"Wine"},
		Vibes:     []string{"Romantic"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(vault.Interests) != 2 || vault.Interests[0] != "music" || vault.Interests[1] != "outdoors" {
		t.Fatalf("expected deduped lowercase interests, got %v", vault.Interests)
	}
	if vault.Dislikes[0] != "wine" || vault.Vibes[0] != "romantic" {
		t.Fatalf("expected normalized dislikes/vibes, got %v %v", vault.Dislikes, vault.Vibes)
	}
}

func TestServiceSaveRejectsOverlap(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	_, err := svc.Save(context.Background(), Vault{
		ID:        "vault-1",
		UserID:    "user-1",
		Interests: []string{"wine"},
		Dislikes:  []string{"Wine"},
	})
	if err == nil {
		t.Fatal("expected overlap between interests and dislikes to be rejected")
	}
}

func TestServiceGetMissingVault(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
