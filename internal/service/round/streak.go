package round

import "baccarat_ledger/internal/model"

// DetectStreak Серия с конца журнала.
// Если последний раунд - ничья, серия равна (1, Tie).
// Иначе считаем назад раунды с тем же исходом, ничьи пропускаем,
// останавливаемся на первом другом исходе
func DetectStreak(rounds []model.Round) model.Streak {
	if len(rounds) == 0 {
		return model.Streak{}
	}

	last := rounds[len(rounds)-1].Outcome
	if last == model.OutcomeTie {
		return model.Streak{Length: 1, Side: model.OutcomeTie}
	}

	length := 0
	for i := len(rounds) - 1; i >= 0; i-- {
		o := rounds[i].Outcome
		if o == model.OutcomeTie {
			continue
		}
		if o != last {
			break
		}
		length++
	}

	return model.Streak{Length: length, Side: last}
}
