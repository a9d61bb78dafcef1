package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/tmfowler/investment-tracker/internal/database"
	"github.com/tmfowler/investment-tracker/internal/kafka"
	"github.com/tmfowler/investment-tracker/internal/models"
)

// Handler holds dependencies for the RPC procedures
type Handler struct {
	db       *database.DB
	producer *kafka.Producer
}

// NewHandler creates a new Handler. The producer may be nil, in which case no
// events are published.
func NewHandler(db *database.DB, producer *kafka.Producer) *Handler {
	return &Handler{
		db:       db,
		producer: producer,
	}
}

// Dispatch routes /rpc/{procedure} calls to the matching procedure
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	procedure := mux.Vars(r)["procedure"]

	switch procedure {
	case "healthcheck":
		h.Healthcheck(w, r)
	case "createInvestment":
		h.CreateInvestment(w, r)
	case "getInvestments":
		h.GetInvestments(w, r)
	case "getInvestmentById":
		h.GetInvestmentByID(w, r)
	case "updateInvestment":
		h.UpdateInvestment(w, r)
	case "deleteInvestment":
		h.DeleteInvestment(w, r)
	default:
		respondError(w, http.StatusNotFound, "unknown procedure: "+procedure)
	}
}

// Healthcheck reports liveness with a fixed status token and the current time
func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CreateInvestment handles the createInvestment procedure
func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var input models.CreateInvestmentInput
	if !decodeInput(w, r, &input) {
		return
	}

	inv, err := h.db.CreateInvestment(&input)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.producer != nil {
		if err := h.producer.PublishInvestmentCreated(r.Context(), inv); err != nil {
			log.Printf("failed to publish investment created event: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, inv)
}

// GetInvestments handles the getInvestments procedure
func (h *Handler) GetInvestments(w http.ResponseWriter, r *http.Request) {
	investments, err := h.db.ListInvestments()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, investments)
}

// GetInvestmentByID handles the getInvestmentById procedure. A missing id
// yields a null body, not an error.
func (h *Handler) GetInvestmentByID(w http.ResponseWriter, r *http.Request) {
	var input models.GetInvestmentByIDInput
	if !decodeInput(w, r, &input) {
		return
	}

	inv, err := h.db.GetInvestmentByID(input.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

// UpdateInvestment handles the updateInvestment procedure. A missing id
// yields a null body, not an error.
func (h *Handler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	var input models.UpdateInvestmentInput
	if !decodeInput(w, r, &input) {
		return
	}

	inv, err := h.db.UpdateInvestment(&input)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if inv != nil && h.producer != nil {
		if err := h.producer.PublishInvestmentUpdated(r.Context(), inv); err != nil {
			log.Printf("failed to publish investment updated event: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, inv)
}

// DeleteInvestment handles the deleteInvestment procedure; the body is true
// when a row was removed, false when no row matched.
func (h *Handler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	var input models.DeleteInvestmentInput
	if !decodeInput(w, r, &input) {
		return
	}

	deleted, err := h.db.DeleteInvestment(input.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if deleted && h.producer != nil {
		if err := h.producer.PublishInvestmentDeleted(r.Context(), input.ID); err != nil {
			log.Printf("failed to publish investment deleted event: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, deleted)
}

type validatable interface {
	Validate() error
}

// decodeInput decodes the request body into input and validates it, writing
// the error response itself when either step fails.
func decodeInput(w http.ResponseWriter, r *http.Request, input validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := input.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation failed",
				Fields: verr.Fields,
			})
		} else {
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return false
	}

	return true
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
