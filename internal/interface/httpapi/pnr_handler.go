package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"pnr-parser-service/pkg/logger"
	"pnr-parser-service/pkg/pnr"
)

const (
	errMsgPNRRequired     = "PNR data is required"
	errMsgInvalidBody     = "invalid request body"
	errMsgRequestTooLarge = "request body too large"
)

// PNRParser parses raw PNR text for one request
type PNRParser interface {
	Parse(ctx context.Context, requestID, raw string) (*pnr.Result, error)
}

// ParseRequest is the JSON body of POST /parse_pnr
type ParseRequest struct {
	PNRData string `json:"pnr_data" validate:"required"`
}

// ParseResponse is the JSON response for a successful parse
type ParseResponse struct {
	ParsedPNR      pnr.ParsedPNR `json:"parsed_pnr"`
	CleanedPNRData string        `json:"cleaned_pnr_data"`
}

// ErrorResponse is the JSON error response structure
type ErrorResponse struct {
	Error string `json:"error"`
}

// PNRHandler handles HTTP requests for PNR parsing
type PNRHandler struct {
	parser       PNRParser
	validate     *validator.Validate
	maxBodyBytes int64
	logger       logger.Logger
}

// NewPNRHandler creates a new handler with the given parser
func NewPNRHandler(parser PNRParser, maxBodyBytes int64, logger logger.Logger) *PNRHandler {
	return &PNRHandler{
		parser:       parser,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// ParsePNR handles POST /parse_pnr
func (h *PNRHandler) ParsePNR(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())
	if requestID == "" {
		requestID = uuid.NewString()
	}

	var req ParseRequest
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, errMsgRequestTooLarge)
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, errMsgPNRRequired)
		default:
			h.logger.Debug("Invalid request body", "requestId", requestID, "error", err)
			writeError(w, http.StatusBadRequest, errMsgInvalidBody)
		}
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, errMsgPNRRequired)
		return
	}

	result, err := h.parser.Parse(r.Context(), requestID, req.PNRData)
	if err != nil {
		status := http.StatusInternalServerError
		if pnr.IsInputError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ParseResponse{
		ParsedPNR:      result.PNR,
		CleanedPNRData: result.Cleaned,
	})
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
