package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome Результат раунда баккара
type Outcome string

const (
	OutcomePlayer Outcome = "Player"
	OutcomeBanker Outcome = "Banker"
	OutcomeTie    Outcome = "Tie"
)

// Valid проверяет, что значение входит в перечисление
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePlayer, OutcomeBanker, OutcomeTie:
		return true
	}
	return false
}

// Side Сторона ставки. Ставка на Tie не поддерживается
type Side string

const (
	SidePlayer Side = "Player"
	SideBanker Side = "Banker"
)

func (s Side) Valid() bool {
	return s == SidePlayer || s == SideBanker
}

// Outcome возвращает исход, соответствующий выигрышу этой стороны
func (s Side) Outcome() Outcome {
	return Outcome(s)
}

// Other возвращает противоположную сторону
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideBanker
	}
	return SidePlayer
}

// Settlement Расчет ставки за раунд
type Settlement string

const (
	SettlementWin  Settlement = "Win"
	SettlementLose Settlement = "Lose"
	SettlementPush Settlement = "Push"
)

func (s Settlement) Valid() bool {
	switch s {
	case SettlementWin, SettlementLose, SettlementPush:
		return true
	}
	return false
}

// Suit Масть карты. Пустая строка - незаполненный слот
type Suit string

const (
	SuitNone     Suit = ""
	SuitSpades   Suit = "♠"
	SuitHearts   Suit = "♥"
	SuitDiamonds Suit = "♦"
	SuitClubs    Suit = "♣"
)

func (s Suit) Valid() bool {
	switch s {
	case SuitNone, SuitSpades, SuitHearts, SuitDiamonds, SuitClubs:
		return true
	}
	return false
}

// Card Карта в слоте руки. Нулевое значение - пустой слот
type Card struct {
	Suit  Suit
	Point int // 0-9
}

// HandSize Количество слотов в руке
const HandSize = 3

// Hand Рука из трех слотов
type Hand [HandSize]Card

// RoundInput Данные, которые приходят от клиента при записи раунда
type RoundInput struct {
	Outcome     Outcome // Фактический исход. Может быть пустым, если переданы обе руки
	BetSide     Side
	Stake       decimal.Decimal
	Settlement  *Settlement // Ручной расчет, заменяет автоматический
	Description string
	PlayerHand  *Hand
	BankerHand  *Hand
}

// Round Запись о сыгранном раунде
type Round struct {
	Seq              int // Порядковый номер в журнале, начиная с 1
	Outcome          Outcome
	AutoOutcome      Outcome // Исход по очкам рук, пусто если руки не переданы
	PlayerTotal      *int
	BankerTotal      *int
	BetSide          Side
	Stake            decimal.Decimal
	Settlement       Settlement
	ManualSettlement bool
	Profit           decimal.Decimal
	Description      string
	RecordedAt       time.Time
}

// HandEvaluation Результат подсчета очков двух рук
type HandEvaluation struct {
	PlayerTotal       int
	BankerTotal       int
	Outcome           Outcome
	PlayerDescription string
	BankerDescription string
}

// BetSettlement Предварительный расчет ставки
type BetSettlement struct {
	BetSide    Side
	Outcome    Outcome
	Stake      decimal.Decimal
	Settlement Settlement
	Profit     decimal.Decimal
}
