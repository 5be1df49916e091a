package round

import (
	"baccarat_ledger/internal/model"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Точность хранения денежных значений
	moneyPlaces = 2
	// Максимальное количество очков карты
	maxPoint = 9
	// Допустимый порядок ставки, 1e-18..1e18
	maxStakeExponent = 18
)

// DefaultBankerCommission Комиссия казино с выигрыша на Banker
var DefaultBankerCommission = decimal.RequireFromString("0.05")

// HandTotal Сумма очков руки по модулю 10. Пустые слоты дают 0
func HandTotal(hand model.Hand) int {
	sum := 0
	for _, c := range hand {
		sum += c.Point
	}
	return ((sum % 10) + 10) % 10
}

// DetermineOutcome Определение победителя по очкам двух рук
func DetermineOutcome(playerTotal, bankerTotal int) model.Outcome {
	switch {
	case playerTotal > bankerTotal:
		return model.OutcomePlayer
	case bankerTotal > playerTotal:
		return model.OutcomeBanker
	default:
		return model.OutcomeTie
	}
}

// DetermineSettlement Расчет ставки на сторону side при исходе outcome
func DetermineSettlement(side model.Side, outcome model.Outcome) model.Settlement {
	switch {
	case outcome == model.OutcomeTie:
		return model.SettlementPush
	case side.Outcome() == outcome:
		return model.SettlementWin
	default:
		return model.SettlementLose
	}
}

// ComputePayout Прибыль/убыток по ставке со стандартной комиссией на Banker
func ComputePayout(settlement model.Settlement, side model.Side, stake decimal.Decimal) decimal.Decimal {
	return PayoutWithCommission(settlement, side, stake, DefaultBankerCommission)
}

// PayoutWithCommission Прибыль/убыток по ставке.
// Player платит 1 к 1, Banker 1 к 1 минус комиссия, Push возвращает ставку
func PayoutWithCommission(settlement model.Settlement, side model.Side, stake, commission decimal.Decimal) decimal.Decimal {
	var profit decimal.Decimal
	switch settlement {
	case model.SettlementWin:
		if side == model.SideBanker {
			profit = stake.Mul(decimal.NewFromInt(1).Sub(commission))
		} else {
			profit = stake
		}
	case model.SettlementLose:
		profit = stake.Neg()
	default:
		profit = decimal.Zero
	}
	return profit.Round(moneyPlaces)
}

// EvaluateHands Подсчет очков обеих рук и автоматический исход
func EvaluateHands(player, banker model.Hand) model.HandEvaluation {
	p := HandTotal(player)
	b := HandTotal(banker)
	return model.HandEvaluation{
		PlayerTotal:       p,
		BankerTotal:       b,
		Outcome:           DetermineOutcome(p, b),
		PlayerDescription: FormatHand(player),
		BankerDescription: FormatHand(banker),
	}
}

// FormatHand Текстовое представление руки, пустые слоты пропускаются
func FormatHand(hand model.Hand) string {
	parts := make([]string, 0, len(hand))
	for _, c := range hand {
		if c.Suit == model.SuitNone && c.Point == 0 {
			continue
		}
		parts = append(parts, string(c.Suit)+strconv.Itoa(c.Point))
	}
	return strings.Join(parts, " ")
}

// ValidHand Проверка масти и очков каждого слота
func ValidHand(hand model.Hand) bool {
	for _, c := range hand {
		if !c.Suit.Valid() || c.Point < 0 || c.Point > maxPoint {
			return false
		}
	}
	return true
}
