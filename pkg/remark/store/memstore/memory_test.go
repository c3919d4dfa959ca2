package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/civicsignal/remark/pkg/remark/store"
)

func TestSaveAndGetRun(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	run := store.Run{
		ID:           store.NewRunID(),
		CreatedAt:    time.Now().UTC(),
		CommentCount: 3,
		Payload:      []byte(`{"total":3}`),
	}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, found, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if !found {
		t.Fatal("run not found after save")
	}
	if got.CommentCount != 3 || string(got.Payload) != `{"total":3}` {
		t.Errorf("GetRun = %+v, want saved run", got)
	}
}

func TestSaveAssignsID(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	if err := s.SaveRun(ctx, store.Run{CommentCount: 1}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].ID == "" {
		t.Errorf("SaveRun should assign an ID, got %+v", runs)
	}
}

func TestGetMissingRun(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	_, found, err := s.GetRun(ctx, "nope")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if found {
		t.Error("missing run reported as found")
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		run := store.Run{
			ID:        store.NewRunID(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len = %d, want 2", len(runs))
	}
	if !runs[0].CreatedAt.After(runs[1].CreatedAt) {
		t.Errorf("runs not newest first: %v, %v", runs[0].CreatedAt, runs[1].CreatedAt)
	}
}

func TestPayloadCopied(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	payload := []byte("original")
	run := store.Run{ID: "r1", Payload: payload}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	payload[0] = 'X'
	got, _, err := s.GetRun(ctx, "r1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if string(got.Payload) != "original" {
		t.Errorf("stored payload mutated through caller slice: %q", got.Payload)
	}
}
