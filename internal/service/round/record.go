package round

import (
	"baccarat_ledger/internal/model"
	"baccarat_ledger/internal/service"
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EvaluateHands Очки двух рук и автоматический исход
func (s *serv) EvaluateHands(player, banker model.Hand) (*model.HandEvaluation, error) {
	if !ValidHand(player) || !ValidHand(banker) {
		return nil, service.ErrInvalidHand
	}
	eval := EvaluateHands(player, banker)
	return &eval, nil
}

// SettleBet Предварительный расчет ставки без записи в журнал
func (s *serv) SettleBet(side model.Side, outcome model.Outcome, stake decimal.Decimal) (*model.BetSettlement, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w: bet side %q", service.ErrInvalidBet, side)
	}
	if !outcome.Valid() {
		return nil, fmt.Errorf("%w: outcome %q", service.ErrInvalidBet, outcome)
	}
	if err := s.checkStake(stake); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidBet, err)
	}

	stake = stake.Round(moneyPlaces)
	settlement := DetermineSettlement(side, outcome)

	return &model.BetSettlement{
		BetSide:    side,
		Outcome:    outcome,
		Stake:      stake,
		Settlement: settlement,
		Profit:     PayoutWithCommission(settlement, side, stake, s.cfg.BankerCommission()),
	}, nil
}

// checkStake Ставка неотрицательна, не больше max_bet, экспонента в пределах maxStakeExponent.
// Экспонента проверяется до сравнений и округления
func (s *serv) checkStake(stake decimal.Decimal) error {
	if stake.IsNegative() {
		return errors.New("stake must not be negative")
	}
	if exp := stake.Exponent(); exp > maxStakeExponent || exp < -maxStakeExponent {
		return fmt.Errorf("stake exponent %d is out of range", exp)
	}
	if stake.GreaterThan(s.cfg.MaxBet()) {
		return fmt.Errorf("stake must not exceed %s", s.cfg.MaxBet().String())
	}
	return nil
}

// Record Записывает раунд в журнал сессии
func (s *serv) Record(ctx context.Context, input model.RoundInput) (*model.Round, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	round, err := s.buildRound(input)
	if err != nil {
		return nil, err
	}

	saved, err := s.ledgerRepo.Append(ctx, id, round)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	s.log.Info("round recorded",
		zap.String("session_id", id),
		zap.Int("seq", saved.Seq),
		zap.String("outcome", string(saved.Outcome)),
		zap.String("bet_side", string(saved.BetSide)),
		zap.String("settlement", string(saved.Settlement)),
		zap.String("profit", saved.Profit.StringFixed(moneyPlaces)),
	)

	return &saved, nil
}

// buildRound Проверка входных данных и расчет ставки
func (s *serv) buildRound(input model.RoundInput) (model.Round, error) {
	if !input.BetSide.Valid() {
		return model.Round{}, fmt.Errorf("%w: bet side %q", service.ErrInvalidRound, input.BetSide)
	}
	if err := s.checkStake(input.Stake); err != nil {
		return model.Round{}, fmt.Errorf("%w: %v", service.ErrInvalidRound, err)
	}

	round := model.Round{
		BetSide:     input.BetSide,
		Stake:       input.Stake.Round(moneyPlaces),
		Description: input.Description,
		RecordedAt:  s.now(),
	}

	// Если переданы обе руки, считаем очки и автоматический исход
	if input.PlayerHand != nil && input.BankerHand != nil {
		if !ValidHand(*input.PlayerHand) || !ValidHand(*input.BankerHand) {
			return model.Round{}, fmt.Errorf("%w: %w", service.ErrInvalidRound, service.ErrInvalidHand)
		}
		eval := EvaluateHands(*input.PlayerHand, *input.BankerHand)
		round.PlayerTotal = &eval.PlayerTotal
		round.BankerTotal = &eval.BankerTotal
		round.AutoOutcome = eval.Outcome
		if round.Description == "" {
			round.Description = fmt.Sprintf("Player: %s | Banker: %s", eval.PlayerDescription, eval.BankerDescription)
		}
	} else if input.PlayerHand != nil || input.BankerHand != nil {
		return model.Round{}, fmt.Errorf("%w: both hands are required", service.ErrInvalidRound)
	}

	// Фактический исход, по умолчанию - автоматический
	round.Outcome = input.Outcome
	if round.Outcome == "" {
		round.Outcome = round.AutoOutcome
	}
	if !round.Outcome.Valid() {
		return model.Round{}, fmt.Errorf("%w: outcome %q", service.ErrInvalidRound, round.Outcome)
	}

	// Ручной расчет заменяет автоматический, но выплата считается по той же формуле
	if input.Settlement != nil {
		if !input.Settlement.Valid() {
			return model.Round{}, fmt.Errorf("%w: settlement %q", service.ErrInvalidRound, *input.Settlement)
		}
		// Push бывает только при ничьей, а при ничьей только Push
		if (*input.Settlement == model.SettlementPush) != (round.Outcome == model.OutcomeTie) {
			return model.Round{}, fmt.Errorf("%w: settlement %s contradicts outcome %s",
				service.ErrInvalidRound, *input.Settlement, round.Outcome)
		}
		round.Settlement = *input.Settlement
		round.ManualSettlement = true
	} else {
		round.Settlement = DetermineSettlement(round.BetSide, round.Outcome)
	}

	round.Profit = PayoutWithCommission(round.Settlement, round.BetSide, round.Stake, s.cfg.BankerCommission())

	return round, nil
}
