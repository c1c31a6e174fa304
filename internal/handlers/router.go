package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"attachment-matching-service/internal/config"
	"attachment-matching-service/internal/matching"
	"attachment-matching-service/internal/repositories"
	"attachment-matching-service/internal/services"
)

func SetupRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *mux.Router {
	transactionRepo := repositories.NewTransactionRepository(db)
	attachmentRepo := repositories.NewAttachmentRepository(db)
	linkRepo := repositories.NewLinkRepository(db)

	matcher := matching.NewMatcher(cfg.MatcherConfig())

	ingestionService := services.NewIngestionService(db, transactionRepo, attachmentRepo, linkRepo)
	matchingService := services.NewMatchingService(db, matcher, transactionRepo, attachmentRepo, linkRepo, log)

	dataHandler := NewDataHandler(ingestionService)
	matchHandler := NewMatchHandler(matchingService)

	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()

	api.Use(loggingMiddleware(log))
	api.Use(jsonContentTypeMiddleware)

	api.HandleFunc("/transactions", dataHandler.IngestTransactions).Methods(http.MethodPost)
	api.HandleFunc("/attachments", dataHandler.IngestAttachments).Methods(http.MethodPost)
	api.HandleFunc("/matches/transactions/{transaction_id}", matchHandler.MatchTransaction).Methods(http.MethodPost)
	api.HandleFunc("/matches/attachments/{attachment_id}", matchHandler.MatchAttachment).Methods(http.MethodPost)
	api.HandleFunc("/matches/unmatched", matchHandler.GetUnmatchedRecords).Methods(http.MethodGet)

	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)

	return router
}

func loggingMiddleware(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()
			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)

			log.Info().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Dur("duration", time.Since(start)).
				Msg("request handled")
		})
	}
}

func jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status": "healthy",
	}
	respondWithJSON(w, http.StatusOK, response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Error marshaling JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
