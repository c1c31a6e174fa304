package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"attachment-matching-service/internal/services"
)

type MatchHandler struct {
	matchingService *services.MatchingService
}

func NewMatchHandler(matchingService *services.MatchingService) *MatchHandler {
	return &MatchHandler{
		matchingService: matchingService,
	}
}

// MatchTransaction runs one transaction->attachment query. A no-match is a
// successful response with matched=false, never an error.
func (h *MatchHandler) MatchTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	transactionID := vars["transaction_id"]

	if transactionID == "" {
		respondWithError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	result, err := h.matchingService.MatchTransaction(transactionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// MatchAttachment runs one attachment->transaction query.
func (h *MatchHandler) MatchAttachment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attachmentID := vars["attachment_id"]

	if attachmentID == "" {
		respondWithError(w, http.StatusBadRequest, "Attachment ID is required")
		return
	}

	result, err := h.matchingService.MatchAttachment(attachmentID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *MatchHandler) GetUnmatchedRecords(w http.ResponseWriter, r *http.Request) {
	result, err := h.matchingService.GetUnmatchedRecords()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
