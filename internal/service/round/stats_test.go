package round

import (
	"baccarat_ledger/internal/model"
	"testing"
)

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil)

	if stats.Total != 0 || stats.Decided != 0 {
		t.Fatalf("total=%d decided=%d want 0", stats.Total, stats.Decided)
	}
	for o, n := range stats.OutcomeCounts {
		if n != 0 {
			t.Fatalf("count[%s]=%d want 0", o, n)
		}
	}
	if stats.SideWinRate[model.SidePlayer] != 0 || stats.SideWinRate[model.SideBanker] != 0 {
		t.Fatalf("rates=%v want zeros", stats.SideWinRate)
	}
	if !stats.CumulativeProfit.IsZero() {
		t.Fatalf("profit=%s want 0", stats.CumulativeProfit)
	}
}

func TestComputeStatistics(t *testing.T) {
	// Ставка 10 на Player: +10 +10 -10 0 -10 +10
	stats := ComputeStatistics(history(P, P, B, T, B, P))

	if stats.Total != 6 {
		t.Fatalf("total=%d want 6", stats.Total)
	}
	if stats.OutcomeCounts[P] != 3 || stats.OutcomeCounts[B] != 2 || stats.OutcomeCounts[T] != 1 {
		t.Fatalf("counts=%v", stats.OutcomeCounts)
	}
	if stats.Decided != 5 {
		t.Fatalf("decided=%d want 5", stats.Decided)
	}
	if stats.SideWinRate[model.SidePlayer] != 0.6 || stats.SideWinRate[model.SideBanker] != 0.4 {
		t.Fatalf("rates=%v want 0.6/0.4", stats.SideWinRate)
	}
	if stats.BetWins != 3 || stats.BetLosses != 2 || stats.BetPushes != 1 {
		t.Fatalf("bets=%d/%d/%d", stats.BetWins, stats.BetLosses, stats.BetPushes)
	}
	if stats.BetWinRate != 0.6 {
		t.Fatalf("bet win rate=%v want 0.6", stats.BetWinRate)
	}
	if stats.CumulativeProfit.StringFixed(2) != "10.00" {
		t.Fatalf("profit=%s want 10.00", stats.CumulativeProfit.StringFixed(2))
	}
}

func TestComputeStatisticsOnlyTies(t *testing.T) {
	stats := ComputeStatistics(history(T, T))
	if stats.Decided != 0 || stats.SideWinRate[model.SidePlayer] != 0 {
		t.Fatalf("stats=%+v", stats)
	}
	if stats.BetWinRate != 0 {
		t.Fatalf("bet win rate=%v want 0", stats.BetWinRate)
	}
}

func TestWindow(t *testing.T) {
	rounds := history(P, B, T, P, B)

	if got := Window(rounds, 0); len(got) != 0 {
		t.Fatalf("window(0) len=%d", len(got))
	}
	got := Window(rounds, 2)
	if len(got) != 2 || got[0].Seq != 4 || got[1].Seq != 5 {
		t.Fatalf("window(2)=%+v", got)
	}
	if got := Window(rounds, 50); len(got) != 5 || got[0].Seq != 1 {
		t.Fatalf("window(50) len=%d", len(got))
	}

	// Окно - копия, журнал не меняется
	got[0].Outcome = T
	if rounds[3].Outcome != P {
		t.Fatal("window must not alias the ledger")
	}
}

func TestComputeCheckpointDue(t *testing.T) {
	for n := 0; n <= 31; n++ {
		cp := ComputeCheckpoint(history(repeat(P, n)...), 10)
		want := n > 0 && n%10 == 0
		if cp.Due != want {
			t.Fatalf("len=%d due=%v want=%v", n, cp.Due, want)
		}
	}
}

func TestComputeCheckpointReport(t *testing.T) {
	// 12 раундов, в окно попадают последние 10: P P B T B P P P B T
	rounds := history(B, B, P, P, B, T, B, P, P, P, B, T)
	cp := ComputeCheckpoint(rounds, 10)

	if cp.Due {
		t.Fatal("checkpoint should not be due at 12 rounds")
	}
	if cp.Rounds != 10 || cp.LedgerSize != 12 || cp.WindowSize != 10 {
		t.Fatalf("cp=%+v", cp)
	}
	if cp.BetWins != 5 || cp.BetLosses != 3 {
		t.Fatalf("wins=%d losses=%d want 5/3", cp.BetWins, cp.BetLosses)
	}
	if cp.BetWinRate != 0.625 {
		t.Fatalf("win rate=%v want 0.625", cp.BetWinRate)
	}
	if cp.Profit.StringFixed(2) != "20.00" {
		t.Fatalf("profit=%s want 20.00", cp.Profit.StringFixed(2))
	}
}
