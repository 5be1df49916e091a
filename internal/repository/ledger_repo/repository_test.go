package ledger_repo

import (
	"baccarat_ledger/internal/model"
	"baccarat_ledger/internal/repository"
	"context"
	"errors"
	"sync"
	"testing"
)

func TestAppendAssignsSequence(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()
	if err := r.Create(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		saved, err := r.Append(ctx, "s1", model.Round{Seq: 99, Outcome: model.OutcomePlayer})
		if err != nil {
			t.Fatal(err)
		}
		if saved.Seq != i {
			t.Fatalf("seq=%d want %d", saved.Seq, i)
		}
	}

	tail, err := r.Tail(ctx, "s1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tail) != 2 || tail[0].Seq != 2 || tail[1].Seq != 3 {
		t.Fatalf("tail=%+v", tail)
	}
}

func TestRoundsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()
	_ = r.Create(ctx, "s1")
	_, _ = r.Append(ctx, "s1", model.Round{Outcome: model.OutcomeBanker})

	rounds, err := r.Rounds(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	rounds[0].Outcome = model.OutcomeTie

	again, _ := r.Rounds(ctx, "s1")
	if again[0].Outcome != model.OutcomeBanker {
		t.Fatal("stored round was mutated through returned slice")
	}
}

func TestLedgersAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()
	_ = r.Create(ctx, "a")
	_ = r.Create(ctx, "b")

	_, _ = r.Append(ctx, "a", model.Round{Outcome: model.OutcomePlayer})

	b, err := r.Rounds(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 0 {
		t.Fatalf("ledger b has %d rounds, want 0", len(b))
	}
}

func TestResetAndDrop(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()
	_ = r.Create(ctx, "s1")
	_, _ = r.Append(ctx, "s1", model.Round{Outcome: model.OutcomePlayer})

	if err := r.Reset(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	rounds, err := r.Rounds(ctx, "s1")
	if err != nil || len(rounds) != 0 {
		t.Fatalf("after reset rounds=%v err=%v", rounds, err)
	}

	if err := r.Drop(ctx, "s1"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Rounds(ctx, "s1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want ErrNotFound after drop, got %v", err)
	}
}

func TestMissingLedger(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()

	if _, err := r.Append(ctx, "nope", model.Round{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Append: want ErrNotFound, got %v", err)
	}
	if err := r.Reset(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Reset: want ErrNotFound, got %v", err)
	}
	if _, err := r.Tail(ctx, "nope", 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Tail: want ErrNotFound, got %v", err)
	}
}

func TestCreateTwice(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()
	_ = r.Create(ctx, "s1")
	if err := r.Create(ctx, "s1"); !errors.Is(err, repository.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
}

func TestConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()
	_ = r.Create(ctx, "s1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Append(ctx, "s1", model.Round{Outcome: model.OutcomeTie})
		}()
	}
	wg.Wait()

	rounds, _ := r.Rounds(ctx, "s1")
	if len(rounds) != 50 {
		t.Fatalf("len=%d want 50", len(rounds))
	}
	for i, rd := range rounds {
		if rd.Seq != i+1 {
			t.Fatalf("rounds[%d].Seq=%d", i, rd.Seq)
		}
	}
}
