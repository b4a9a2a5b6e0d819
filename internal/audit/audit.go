// Package audit records significant events and settled rounds.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"casino-sim/internal/domain"
)

// Event types
const (
	EventPlayerRegistered = "player_registered"
	EventPlayerLogin      = "player_login"
	EventLoginFailed      = "login_failed"
	EventBuyIn            = "buy_in"
	EventRoundSettled     = "round_settled"
	EventLargeWin         = "large_win"
	EventSaveWritten      = "save_written"
	EventSaveReset        = "save_reset"
	EventSystemError      = "system_error"
)

// Severity levels
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Service provides audit logging. With a nil database every call is a
// no-op, so the tables work without an audit trail configured.
type Service struct {
	db *sql.DB
}

// New creates a new audit service. db may be nil.
func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Enabled reports whether events are being persisted.
func (s *Service) Enabled() bool {
	return s.db != nil
}

// Log records a significant event.
func (s *Service) Log(ctx context.Context, eventType, severity, player, description string, data interface{}) error {
	if s.db == nil {
		return nil
	}

	var dataJSON []byte
	if data != nil {
		dataJSON, _ = json.Marshal(data)
	}

	var playerCol sql.NullString
	if player != "" {
		playerCol = sql.NullString{String: player, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, type, severity, timestamp, player, description, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.New().String(), eventType, severity, time.Now().UTC(), playerCol,
		description, nullableJSON(dataJSON))

	return err
}

// RecordRound persists a settled round.
func (s *Service) RecordRound(ctx context.Context, player string, result *domain.RoundResult) error {
	if s.db == nil {
		return nil
	}

	perBet, _ := json.Marshal(result.PerBet)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rounds (id, player, game, outcome, total_staked, total_won, new_balance, per_bet, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, result.RoundID, player, result.Game, result.Outcome,
		result.TotalStaked, result.TotalWon, result.NewBalance,
		nullableJSON(perBet), result.SettledAt)

	return err
}

// PlayerRounds retrieves the most recent settled rounds for a player.
func (s *Service) PlayerRounds(ctx context.Context, player string, limit int) ([]*domain.RoundResult, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, game, outcome, total_staked, total_won, new_balance, per_bet, settled_at
		FROM rounds WHERE player = $1
		ORDER BY settled_at DESC LIMIT $2
	`, player, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*domain.RoundResult
	for rows.Next() {
		var result domain.RoundResult
		var perBet sql.NullString

		err := rows.Scan(&result.RoundID, &result.Game, &result.Outcome,
			&result.TotalStaked, &result.TotalWon, &result.NewBalance,
			&perBet, &result.SettledAt)
		if err != nil {
			return nil, err
		}

		if perBet.Valid {
			json.Unmarshal([]byte(perBet.String), &result.PerBet)
		}
		results = append(results, &result)
	}

	return results, rows.Err()
}

func nullableJSON(data []byte) interface{} {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}
