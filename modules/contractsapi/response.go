package contractsapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/felipearaujo/datacontracts/pkg/contracts"
	"github.com/felipearaujo/datacontracts/pkg/dataset"
	"github.com/felipearaujo/datacontracts/pkg/schema"
)

// ErrorDetail is the error payload carried by failed responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorDetail `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondFromErr maps domain sentinels to HTTP statuses.
func respondFromErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contracts.ErrContractNotFound):
		respondError(w, http.StatusNotFound, "contract_not_found", err.Error())
	case errors.Is(err, contracts.ErrInvalidContract),
		errors.Is(err, schema.ErrParseDefinition),
		errors.Is(err, schema.ErrEmptySchema),
		errors.Is(err, schema.ErrEmptySchemaName),
		errors.Is(err, schema.ErrDuplicateField),
		errors.Is(err, schema.ErrUnknownDataType),
		errors.Is(err, dataset.ErrReadInput):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
