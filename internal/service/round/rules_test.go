package round

import (
	"baccarat_ledger/internal/model"
	"testing"

	"github.com/shopspring/decimal"
)

func TestHandTotal(t *testing.T) {
	tests := []struct {
		name string
		hand model.Hand
		want int
	}{
		{"empty", model.Hand{}, 0},
		{"single card", model.Hand{{Suit: model.SuitSpades, Point: 7}}, 7},
		{"two cards wrap", model.Hand{{Suit: model.SuitHearts, Point: 6}, {Suit: model.SuitClubs, Point: 8}}, 4},
		{"three cards", model.Hand{{Suit: model.SuitSpades, Point: 9}, {Suit: model.SuitHearts, Point: 9}, {Suit: model.SuitDiamonds, Point: 9}}, 7},
		{"natural ten", model.Hand{{Suit: model.SuitSpades, Point: 5}, {Suit: model.SuitHearts, Point: 5}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandTotal(tt.hand); got != tt.want {
				t.Fatalf("HandTotal=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestHandTotalRange(t *testing.T) {
	for a := 0; a <= 9; a++ {
		for b := 0; b <= 9; b++ {
			for c := 0; c <= 9; c++ {
				hand := model.Hand{{Point: a}, {Point: b}, {Point: c}}
				got := HandTotal(hand)
				if got < 0 || got > 9 || got != (a+b+c)%10 {
					t.Fatalf("HandTotal(%d,%d,%d)=%d", a, b, c, got)
				}
			}
		}
	}
}

func TestDetermineOutcomeAntisymmetric(t *testing.T) {
	swap := map[model.Outcome]model.Outcome{
		model.OutcomePlayer: model.OutcomeBanker,
		model.OutcomeBanker: model.OutcomePlayer,
		model.OutcomeTie:    model.OutcomeTie,
	}

	for p := 0; p <= 9; p++ {
		for b := 0; b <= 9; b++ {
			got := DetermineOutcome(p, b)
			if swapped := DetermineOutcome(b, p); swapped != swap[got] {
				t.Fatalf("DetermineOutcome(%d,%d)=%s but swapped gives %s", p, b, got, swapped)
			}
			if p == b && got != model.OutcomeTie {
				t.Fatalf("equal totals %d should tie, got %s", p, got)
			}
		}
	}

	if got := DetermineOutcome(8, 3); got != model.OutcomePlayer {
		t.Fatalf("8 vs 3 = %s want Player", got)
	}
	if got := DetermineOutcome(2, 9); got != model.OutcomeBanker {
		t.Fatalf("2 vs 9 = %s want Banker", got)
	}
}

func TestDetermineSettlement(t *testing.T) {
	tests := []struct {
		side    model.Side
		outcome model.Outcome
		want    model.Settlement
	}{
		{model.SidePlayer, model.OutcomePlayer, model.SettlementWin},
		{model.SidePlayer, model.OutcomeBanker, model.SettlementLose},
		{model.SidePlayer, model.OutcomeTie, model.SettlementPush},
		{model.SideBanker, model.OutcomeBanker, model.SettlementWin},
		{model.SideBanker, model.OutcomePlayer, model.SettlementLose},
		{model.SideBanker, model.OutcomeTie, model.SettlementPush},
	}

	for _, tt := range tests {
		if got := DetermineSettlement(tt.side, tt.outcome); got != tt.want {
			t.Errorf("DetermineSettlement(%s,%s)=%s want=%s", tt.side, tt.outcome, got, tt.want)
		}
	}
}

func TestComputePayout(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	tests := []struct {
		name       string
		settlement model.Settlement
		side       model.Side
		stake      decimal.Decimal
		want       string
	}{
		{"banker win pays commission", model.SettlementWin, model.SideBanker, hundred, "95.00"},
		{"player win even money", model.SettlementWin, model.SidePlayer, hundred, "100.00"},
		{"lose player", model.SettlementLose, model.SidePlayer, hundred, "-100.00"},
		{"lose banker", model.SettlementLose, model.SideBanker, decimal.RequireFromString("37.5"), "-37.50"},
		{"push player", model.SettlementPush, model.SidePlayer, hundred, "0.00"},
		{"push banker", model.SettlementPush, model.SideBanker, decimal.NewFromInt(250), "0.00"},
		{"banker win rounds", model.SettlementWin, model.SideBanker, decimal.RequireFromString("10.01"), "9.51"},
		{"zero stake", model.SettlementWin, model.SideBanker, decimal.Zero, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePayout(tt.settlement, tt.side, tt.stake)
			if got.StringFixed(2) != tt.want {
				t.Fatalf("ComputePayout=%s want=%s", got.StringFixed(2), tt.want)
			}
		})
	}
}

func TestPayoutWithCommission(t *testing.T) {
	got := PayoutWithCommission(model.SettlementWin, model.SideBanker, decimal.NewFromInt(200), decimal.RequireFromString("0.04"))
	if !got.Equal(decimal.NewFromInt(192)) {
		t.Fatalf("payout=%s want=192", got)
	}
}

func TestEvaluateHands(t *testing.T) {
	player := model.Hand{{Suit: model.SuitSpades, Point: 3}, {Suit: model.SuitHearts, Point: 5}}
	banker := model.Hand{{Suit: model.SuitDiamonds, Point: 9}, {Suit: model.SuitClubs, Point: 0}, {Suit: model.SuitClubs, Point: 9}}

	eval := EvaluateHands(player, banker)
	if eval.PlayerTotal != 8 || eval.BankerTotal != 8 {
		t.Fatalf("totals=%d/%d want 8/8", eval.PlayerTotal, eval.BankerTotal)
	}
	if eval.Outcome != model.OutcomeTie {
		t.Fatalf("outcome=%s want Tie", eval.Outcome)
	}
	if eval.PlayerDescription != "♠3 ♥5" {
		t.Fatalf("player description=%q", eval.PlayerDescription)
	}
	if eval.BankerDescription != "♦9 ♣0 ♣9" {
		t.Fatalf("banker description=%q", eval.BankerDescription)
	}
}

func TestValidHand(t *testing.T) {
	if !ValidHand(model.Hand{}) {
		t.Fatal("empty hand should be valid")
	}
	if ValidHand(model.Hand{{Suit: model.SuitSpades, Point: 10}}) {
		t.Fatal("point 10 should be rejected")
	}
	if ValidHand(model.Hand{{Suit: model.SuitSpades, Point: -1}}) {
		t.Fatal("negative point should be rejected")
	}
	if ValidHand(model.Hand{{Suit: "X", Point: 1}}) {
		t.Fatal("unknown suit should be rejected")
	}
}
