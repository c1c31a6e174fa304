package handlers

import (
	"encoding/json"
	"net/http"

	"attachment-matching-service/internal/services"
)

type DataHandler struct {
	ingestionService *services.IngestionService
}

func NewDataHandler(ingestionService *services.IngestionService) *DataHandler {
	return &DataHandler{
		ingestionService: ingestionService,
	}
}

func (h *DataHandler) IngestTransactions(w http.ResponseWriter, r *http.Request) {
	var transactions []services.TransactionInput

	if err := json.NewDecoder(r.Body).Decode(&transactions); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if len(transactions) == 0 {
		respondWithError(w, http.StatusBadRequest, "No transactions provided")
		return
	}

	result, err := h.ingestionService.IngestTransactions(transactions)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusPartialContent
	}
	respondWithJSON(w, status, result)
}

func (h *DataHandler) IngestAttachments(w http.ResponseWriter, r *http.Request) {
	var attachments []services.AttachmentInput

	if err := json.NewDecoder(r.Body).Decode(&attachments); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if len(attachments) == 0 {
		respondWithError(w, http.StatusBadRequest, "No attachments provided")
		return
	}

	result, err := h.ingestionService.IngestAttachments(attachments)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusPartialContent
	}
	respondWithJSON(w, status, result)
}
