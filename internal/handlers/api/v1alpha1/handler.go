// Package v1alpha1 exposes the encounter service over HTTP. Routes
// mirror the orchestrator's operations one to one; the handler only
// decodes requests, delegates, and maps errors to status codes.
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmgrid/encounter-api/internal/engine"
	"github.com/dmgrid/encounter-api/internal/entities"
	"github.com/dmgrid/encounter-api/internal/errors"
	"github.com/dmgrid/encounter-api/internal/orchestrators/encounter"
)

// HandlerConfig holds dependencies for the encounter handler
type HandlerConfig struct {
	EncounterService encounter.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.EncounterService == nil {
		return errors.InvalidArgument("encounter service is required")
	}
	return nil
}

// Handler serves the encounter HTTP API
type Handler struct {
	svc encounter.Service
}

// NewHandler creates a new encounter handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{svc: cfg.EncounterService}, nil
}

// RegisterRoutes attaches every encounter route to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/state", h.getState).Methods(http.MethodGet)
	r.HandleFunc("/state/player", h.getPlayerView).Methods(http.MethodGet)
	r.HandleFunc("/difficulty", h.getDifficulty).Methods(http.MethodGet)

	r.HandleFunc("/participants", h.addParticipants).Methods(http.MethodPost)
	r.HandleFunc("/participants/mob", h.addMob).Methods(http.MethodPost)
	r.HandleFunc("/participants/{id}", h.updateParticipant).Methods(http.MethodPatch)
	r.HandleFunc("/participants/{id}", h.removeParticipant).Methods(http.MethodDelete)
	r.HandleFunc("/participants/{id}/damage", h.applyDamage).Methods(http.MethodPost)
	r.HandleFunc("/participants/{id}/heal", h.applyHealing).Methods(http.MethodPost)
	r.HandleFunc("/participants/{id}/temp-hp", h.setTempHP).Methods(http.MethodPost)
	r.HandleFunc("/participants/{id}/conditions", h.addCondition).Methods(http.MethodPost)
	r.HandleFunc("/participants/{id}/conditions/{conditionId}", h.removeCondition).Methods(http.MethodDelete)

	r.HandleFunc("/combat/start", h.startCombat).Methods(http.MethodPost)
	r.HandleFunc("/combat/ties/resolve", h.resolveTies).Methods(http.MethodPost)
	r.HandleFunc("/combat/ties/cancel", h.cancelTieBreak).Methods(http.MethodPost)
	r.HandleFunc("/combat/next", h.nextTurn).Methods(http.MethodPost)
	r.HandleFunc("/combat/previous", h.previousTurn).Methods(http.MethodPost)
	r.HandleFunc("/combat/end", h.endCombat).Methods(http.MethodPost)
	r.HandleFunc("/combat/long-rest", h.longRest).Methods(http.MethodPost)
	r.HandleFunc("/battlefield/clear", h.clearBattlefield).Methods(http.MethodPost)

	r.HandleFunc("/groups", h.groupParticipants).Methods(http.MethodPost)
	r.HandleFunc("/groups/ungroup", h.ungroupParticipants).Methods(http.MethodPost)

	r.HandleFunc("/saves", h.listSaves).Methods(http.MethodGet)
	r.HandleFunc("/saves", h.saveEncounter).Methods(http.MethodPost)
	r.HandleFunc("/saves/{name}", h.deleteSave).Methods(http.MethodDelete)
	r.HandleFunc("/load", h.loadEncounter).Methods(http.MethodPost)
	r.HandleFunc("/import/creatures", h.importCreatures).Methods(http.MethodPost)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidArgument("malformed request body")
	}
	return nil
}

// tiesResponse is the wire shape for a blocked operation.
type tiesResponse struct {
	Started bool                      `json:"started,omitempty"`
	Ties    [][]*entities.Participant `json:"ties,omitempty"`
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetState(r.Context(), &encounter.GetStateInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		*entities.Snapshot
		Started bool                      `json:"started"`
		Ties    [][]*entities.Participant `json:"ties,omitempty"`
	}{out.Snapshot, out.Started, out.Ties})
}

func (h *Handler) getPlayerView(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetPlayerView(r.Context(), &encounter.GetPlayerViewInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Round   int                          `json:"round"`
		Entries []*encounter.PlayerViewEntry `json:"entries"`
	}{out.Round, out.Entries})
}

func (h *Handler) getDifficulty(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetDifficulty(r.Context(), &encounter.GetDifficultyInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	// Info is null when the roster has no rated matchup; the UI shows
	// nothing in that case.
	writeJSON(w, http.StatusOK, out.Info)
}

func (h *Handler) addParticipants(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Participants []*entities.Participant `json:"participants"`
		Grouped      bool                    `json:"grouped"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.svc.AddParticipants(r.Context(), &encounter.AddParticipantsInput{
		Participants: req.Participants,
		Grouped:      req.Grouped,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		IDs  []string                  `json:"ids"`
		Ties [][]*entities.Participant `json:"ties,omitempty"`
	}{out.IDs, out.Ties})
}

func (h *Handler) addMob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template  *entities.Participant `json:"template"`
		Units     int                   `json:"units"`
		HPPerUnit int                   `json:"hpPerUnit"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.svc.AddMob(r.Context(), &encounter.AddMobInput{
		Template:  req.Template,
		Units:     req.Units,
		HPPerUnit: req.HPPerUnit,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		ID   string                    `json:"id"`
		Ties [][]*entities.Participant `json:"ties,omitempty"`
	}{out.ID, out.Ties})
}

func (h *Handler) updateParticipant(w http.ResponseWriter, r *http.Request) {
	var upd engine.ParticipantUpdate
	if err := decode(r, &upd); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	_, err := h.svc.UpdateParticipant(r.Context(), &encounter.UpdateParticipantInput{
		ID:     mux.Vars(r)["id"],
		Update: &upd,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeParticipant(w http.ResponseWriter, r *http.Request) {
	_, err := h.svc.RemoveParticipant(r.Context(), &encounter.RemoveParticipantInput{
		ID: mux.Vars(r)["id"],
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// amountRequest carries the single integer for damage, healing, and
// temp HP commands.
type amountRequest struct {
	Amount int `json:"amount"`
}

func (h *Handler) applyDamage(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	_, err := h.svc.ApplyDamage(r.Context(), &encounter.ApplyDamageInput{
		ID:     mux.Vars(r)["id"],
		Amount: req.Amount,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) applyHealing(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	_, err := h.svc.ApplyHealing(r.Context(), &encounter.ApplyHealingInput{
		ID:     mux.Vars(r)["id"],
		Amount: req.Amount,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setTempHP(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	_, err := h.svc.SetTempHP(r.Context(), &encounter.SetTempHPInput{
		ID:     mux.Vars(r)["id"],
		Amount: req.Amount,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addCondition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		// A missing duration means permanent, matching the save
		// format's null encoding.
		Duration *int `json:"duration"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	duration := entities.PermanentDuration
	if req.Duration != nil {
		duration = *req.Duration
	}

	_, err := h.svc.AddCondition(r.Context(), &encounter.AddConditionInput{
		ID:       mux.Vars(r)["id"],
		Name:     req.Name,
		Duration: duration,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeCondition(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	_, err := h.svc.RemoveCondition(r.Context(), &encounter.RemoveConditionInput{
		ID:          vars["id"],
		ConditionID: vars["conditionId"],
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) startCombat(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.StartCombat(r.Context(), &encounter.StartCombatInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tiesResponse{Started: out.Started, Ties: out.Ties})
}

func (h *Handler) resolveTies(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Modifiers map[string]int `json:"modifiers"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.svc.ResolveTies(r.Context(), &encounter.ResolveTiesInput{
		Modifiers: req.Modifiers,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tiesResponse{Started: out.Started, Ties: out.Ties})
}

func (h *Handler) cancelTieBreak(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.CancelTieBreak(r.Context(), &encounter.CancelTieBreakInput{}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) nextTurn(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.NextTurn(r.Context(), &encounter.NextTurnInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Advanced     bool                      `json:"advanced"`
		Round        int                       `json:"round"`
		CurrentIndex int                       `json:"currentIndex"`
		Ties         [][]*entities.Participant `json:"ties,omitempty"`
	}{out.Advanced, out.Round, out.CurrentIndex, out.Ties})
}

func (h *Handler) previousTurn(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.PreviousTurn(r.Context(), &encounter.PreviousTurnInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Moved        bool `json:"moved"`
		Round        int  `json:"round"`
		CurrentIndex int  `json:"currentIndex"`
	}{out.Moved, out.Round, out.CurrentIndex})
}

func (h *Handler) endCombat(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.EndCombat(r.Context(), &encounter.EndCombatInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Ended bool `json:"ended"`
	}{out.Ended})
}

func (h *Handler) longRest(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.LongRest(r.Context(), &encounter.LongRestInput{}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearBattlefield(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.ClearBattlefield(r.Context(), &encounter.ClearBattlefieldInput{}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) groupParticipants(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.svc.GroupParticipants(r.Context(), &encounter.GroupParticipantsInput{IDs: req.IDs})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Color string `json:"color"`
	}{out.Color})
}

func (h *Handler) ungroupParticipants(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	if _, err := h.svc.UngroupParticipants(r.Context(), &encounter.UngroupParticipantsInput{IDs: req.IDs}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSaves(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListSaves(r.Context(), &encounter.ListSavesInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Saves)
}

func (h *Handler) saveEncounter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.svc.SaveEncounter(r.Context(), &encounter.SaveEncounterInput{Name: req.Name})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Saved)
}

func (h *Handler) deleteSave(w http.ResponseWriter, r *http.Request) {
	_, err := h.svc.DeleteSave(r.Context(), &encounter.DeleteSaveInput{
		Name: mux.Vars(r)["name"],
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) loadEncounter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string             `json:"name"`
		Snapshot    json.RawMessage    `json:"snapshot"`
		Mode        encounter.LoadMode `json:"mode"`
		Initiatives map[string]int     `json:"initiatives"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.svc.LoadEncounter(r.Context(), &encounter.LoadEncounterInput{
		Name:        req.Name,
		Data:        req.Snapshot,
		Mode:        req.Mode,
		Initiatives: req.Initiatives,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Snapshot)
}

func (h *Handler) importCreatures(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Snapshot    json.RawMessage `json:"snapshot"`
		Initiatives map[string]int  `json:"initiatives"`
	}
	if err := decode(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.svc.ImportCreatures(r.Context(), &encounter.ImportCreaturesInput{
		Data:        req.Snapshot,
		Initiatives: req.Initiatives,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		IDs  []string                  `json:"ids"`
		Ties [][]*entities.Participant `json:"ties,omitempty"`
	}{out.IDs, out.Ties})
}
