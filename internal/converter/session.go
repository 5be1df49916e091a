package converter

import (
	dto "baccarat_ledger/internal/api/dto/session"
	"baccarat_ledger/internal/model"
	"time"
)

func ToOpenResponse(data model.SessionData) dto.OpenResponse {
	return dto.OpenResponse{
		SessionID: data.SessionID,
		Token:     data.Token,
		ExpiresAt: data.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
