package model

import "github.com/shopspring/decimal"

// Statistics Агрегированная статистика по всему журналу
type Statistics struct {
	Total         int
	OutcomeCounts map[Outcome]int
	Decided       int // Раунды без ничьей
	SideWinRate   map[Side]float64

	BetWins    int
	BetLosses  int
	BetPushes  int
	BetWinRate float64 // Win / (Win + Lose)

	CumulativeProfit decimal.Decimal
}

// Streak Серия одинаковых исходов с конца журнала
type Streak struct {
	Length int
	Side   Outcome // Пусто, если журнал пуст
}

// Checkpoint Отчет по окну последних раундов
type Checkpoint struct {
	Due        bool // Журнал непустой и его длина кратна размеру окна
	LedgerSize int
	WindowSize int
	Rounds     int
	BetWins    int
	BetLosses  int
	BetWinRate float64
	Profit     decimal.Decimal
}
