package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/tealedge/portal/internal/errors"
	"github.com/tealedge/portal/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(internal_errors.StatusCoder); ok {
		http.Error(w, err.Error(), e.StatusCode())
		return
	}
	// default error is 500
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("request body decode failed", "error", err)
		return &internal_errors.Rejection{Kind: internal_errors.IncompleteFields, Message: "Body is invalid json"}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body validation failed", "error", err)
		return &internal_errors.Rejection{Kind: internal_errors.IncompleteFields, Message: "Please complete all required fields."}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("request body decode failed", "error", err)
		return &internal_errors.Rejection{Kind: internal_errors.IncompleteFields, Message: "Body is invalid json"}
	}
	return nil
}
