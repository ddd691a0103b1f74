package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/baharkarakas/calc-backend/internal/api/validate"
)

type APIError struct {
	Detail string              `json:"detail"`
	Errors []validate.ErrField `json:"errors,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, detail string, fields []validate.ErrField) {
	WriteJSON(w, status, APIError{
		Detail: detail,
		Errors: fields,
	})
}

// WriteValidation reports err as 422 with per-field causes when err is a validate.Errs.
func WriteValidation(w http.ResponseWriter, err error) {
	var errs validate.Errs
	if errors.As(err, &errs) {
		WriteError(w, http.StatusUnprocessableEntity, errs.Error(), errs)
		return
	}
	WriteError(w, http.StatusUnprocessableEntity, err.Error(), nil)
}

// maxBody bounds request bodies; every payload here is a handful of short fields.
const maxBody = 1 << 20

// DecodeJSON decodes a JSON body into dst. Failures are returned as validate.Errs.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &typeErr):
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return validate.Errs{{Field: field, Msg: "must be of type " + typeErr.Type.String()}}
		case errors.As(err, &syntaxErr):
			return validate.Errs{{Field: "body", Msg: fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)}}
		case errors.Is(err, io.EOF):
			return validate.Errs{{Field: "body", Msg: "field required"}}
		default:
			return validate.Errs{{Field: "body", Msg: "invalid JSON"}}
		}
	}
	return nil
}

// IntParam parses a required integer path or query value.
func IntParam(field, raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validate.Errs{{Field: field, Msg: "value is not a valid integer"}}
	}
	return n, nil
}
