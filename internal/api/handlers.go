// Package api provides the HTTP surface for the casino tables
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casino-sim/internal/audit"
	"casino-sim/internal/auth"
	"casino-sim/internal/config"
	"casino-sim/internal/domain"
	"casino-sim/internal/ledger"
	"casino-sim/internal/metrics"
	"casino-sim/internal/rng"
	"casino-sim/internal/save"
	"casino-sim/internal/table"
	"casino-sim/pkg/commentary"
)

// Handler contains all HTTP handlers
type Handler struct {
	cfg   *config.Config
	log   *zap.Logger
	auth  *auth.Service
	audit *audit.Service
	rng   *rng.Service
	relay *commentary.Client // nil when no relay is configured
	hub   *Hub

	mu      sync.Mutex
	players map[string]*playerSession
}

// playerSession is one player's ledger and table set. The mutex is the
// transactional boundary: the ledger is shared by all four tables, so
// every round operation holds it.
type playerSession struct {
	mu           sync.Mutex
	ledger       *ledger.Ledger
	roulette     *table.Roulette
	slots        *table.SlotMachine
	blackjack    *table.Blackjack
	craps        *table.Craps
	save         *save.Manager
	relaySession string
}

// New creates a new API handler. relayClient may be nil.
func New(cfg *config.Config, log *zap.Logger, authSvc *auth.Service, auditSvc *audit.Service, rngSvc *rng.Service, relayClient *commentary.Client) *Handler {
	return &Handler{
		cfg:     cfg,
		log:     log,
		auth:    authSvc,
		audit:   auditSvc,
		rng:     rngSvc,
		relay:   relayClient,
		hub:     NewHub(log),
		players: make(map[string]*playerSession),
	}
}

// session returns the player's table set, creating it on first use.
func (h *Handler) session(player string) (*playerSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ps, ok := h.players[player]; ok {
		return ps, nil
	}

	saveMgr, err := save.NewManager(filepath.Join(h.cfg.Game.SaveDir, player))
	if err != nil {
		return nil, err
	}

	led := ledger.New(h.cfg.Game.StartingBalance)
	if snap, err := saveMgr.Load(); err == nil {
		led.Restore(snap.PlayerBalance)
	}

	slots := table.NewSlotMachine(led, rng.NewReels(h.rng))
	slots.MinBet = h.cfg.Game.SlotMinBet
	slots.MaxBet = h.cfg.Game.SlotMaxBet

	ps := &playerSession{
		ledger:       led,
		roulette:     table.NewRoulette(led, rng.NewWheel(h.rng), h.log),
		slots:        slots,
		blackjack:    table.NewBlackjack(led, rng.NewShoe(h.rng), h.log),
		craps:        table.NewCraps(led, rng.NewDice(h.rng)),
		save:         saveMgr,
		relaySession: uuid.New().String(),
	}
	h.players[player] = ps
	return ps, nil
}

// settled runs the common post-settlement path: audit, metrics, the
// websocket stream, and commentary.
func (h *Handler) settled(ctx context.Context, player string, ps *playerSession, result *domain.RoundResult) {
	if err := h.audit.RecordRound(ctx, player, result); err != nil {
		h.log.Warn("failed to record round", zap.String("round_id", result.RoundID), zap.Error(err))
	}
	if result.TotalWon >= 10*result.TotalStaked && result.TotalStaked > 0 {
		h.audit.Log(ctx, audit.EventLargeWin, audit.SeverityInfo, player, result.Summary(), result)
	}
	metrics.RecordRound(result.Game, result.TotalStaked, result.TotalWon)
	h.hub.Broadcast(player, result)
	if h.relay != nil {
		h.relay.Notify(ps.relaySession, result.Summary(), "settled")
	}
}

// Response helpers

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// === Health & Info ===

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	rngHealth, _ := h.rng.HealthCheck()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"rng_status": rngHealth,
	})
}

// ServerInfo handles GET /
func (h *Handler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "casino-sim",
		"version":     "1.0.0",
		"description": "Casino table server",
	})
}

// === Authentication ===

// Register handles POST /api/v1/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		PIN  string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	profile, err := h.auth.Register(r.Context(), req.Name, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPlayerExists):
			respondError(w, http.StatusConflict, "PLAYER_EXISTS", "Player already exists")
		default:
			respondError(w, http.StatusBadRequest, "REGISTRATION_FAILED", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"name":    profile.Name,
		"message": "Registration successful",
	})
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		PIN  string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Name, req.PIN)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid name or pin")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
	})
}

// === Wallet ===

// GetBalance handles GET /api/v1/wallet/balance
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	ps.mu.Lock()
	balance := ps.ledger.Balance()
	ps.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"balance": balance,
	})
}

// BuyIn handles POST /api/v1/wallet/buyin
func (h *Handler) BuyIn(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be positive")
		return
	}

	ps.mu.Lock()
	ps.ledger.AddMoney(req.Amount)
	balance := ps.ledger.Balance()
	ps.mu.Unlock()

	h.audit.Log(r.Context(), audit.EventBuyIn, audit.SeverityInfo, player,
		"Chips purchased", map[string]int64{"amount": req.Amount, "balance": balance})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"balance": balance,
	})
}

// GetRounds handles GET /api/v1/rounds
func (h *Handler) GetRounds(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	rounds, err := h.audit.PlayerRounds(r.Context(), player, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "HISTORY_ERROR", "Failed to get round history")
		return
	}
	if rounds == nil {
		rounds = []*domain.RoundResult{}
	}

	respondJSON(w, http.StatusOK, rounds)
}

// === Save system ===

// GetSave handles GET /api/v1/save
func (h *Handler) GetSave(w http.ResponseWriter, r *http.Request) {
	ps, err := h.session(playerFrom(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	snap, err := ps.save.Load()
	if errors.Is(err, save.ErrNoSave) {
		respondError(w, http.StatusNotFound, "NO_SAVE", "No save file found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SAVE_ERROR", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot": snap,
		"info":     ps.save.Info(),
	})
}

// WriteSave handles POST /api/v1/save. The balance always comes from the
// ledger; the request only carries position and preferences.
func (h *Handler) WriteSave(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	var snap save.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ps.mu.Lock()
	snap.PlayerBalance = ps.ledger.Balance()
	err = ps.save.Save(snap)
	ps.mu.Unlock()

	if err != nil {
		respondError(w, http.StatusInternalServerError, "SAVE_ERROR", err.Error())
		return
	}

	h.audit.Log(r.Context(), audit.EventSaveWritten, audit.SeverityInfo, player,
		"Game saved", map[string]int64{"balance": snap.PlayerBalance})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"balance": snap.PlayerBalance,
	})
}

// ResetSave handles DELETE /api/v1/save
func (h *Handler) ResetSave(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	if err := ps.save.Reset(); err != nil {
		respondError(w, http.StatusInternalServerError, "SAVE_ERROR", err.Error())
		return
	}

	h.audit.Log(r.Context(), audit.EventSaveReset, audit.SeverityInfo, player,
		"Save file reset", nil)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Save file reset",
	})
}
