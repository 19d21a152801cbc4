package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/metrics"
	"code.vegaprotocol.io/rgbwallet/rgb"
)

// InternalServerErrorMessage replaces the reason of every error that must not
// be disclosed to the caller.
const InternalServerErrorMessage = "Internal server error, Please contact your administrator or try later"

var (
	ErrListener        = errors.New("couldn't bind the listener")
	ErrServe           = errors.New("the server stopped unexpectedly")
	ErrAlreadyStarted  = errors.New("the service has already been started")
	ErrNotListening    = errors.New("the service is not listening")
	ErrRouteNotFound   = errors.New("route not found")
	ErrMethodNotFound  = errors.New("method not allowed")
	ErrTooManyRequests = errors.New("too many requests, try again later")
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// writeError maps err to a status and a reason. Every error ends up with a
// response, the unknown ones are answered as internal errors.
func writeError(log *logging.Logger, w http.ResponseWriter, err error) {
	var (
		rgbErr    *rgb.Error
		decodeErr *DecodeError
	)

	switch {
	case errors.As(err, &rgbErr):
		metrics.BackendErrorInc(rgbErr.Kind.String())
		switch rgbErr.Kind {
		case rgb.KindOnline, rgb.KindInvoice:
			log.Error("backend call failed", logging.String("kind", rgbErr.Kind.String()), logging.Error(err))
			writeEnvelope(w, http.StatusInternalServerError, InternalServerErrorMessage)
		case rgb.KindGeneric:
			log.Warn("backend rejected the request", logging.Error(err))
			writeEnvelope(w, http.StatusBadRequest, rgbErr.Error())
		default:
			log.Error("backend returned an unknown kind of error", logging.Error(err))
			writeEnvelope(w, http.StatusInternalServerError, InternalServerErrorMessage)
		}
	case errors.As(err, &decodeErr):
		log.Warn("invalid request", logging.Error(err))
		writeEnvelope(w, http.StatusBadRequest, decodeErr.Error())
	default:
		log.Error("request failed", logging.Error(err))
		writeEnvelope(w, http.StatusInternalServerError, InternalServerErrorMessage)
	}
}

func writeEnvelope(w http.ResponseWriter, status int, reason string) {
	writeSuccess(w, ErrorResponse{
		Status: strconv.Itoa(status),
		Reason: reason,
	}, status)
}

func writeSuccess(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	buf, _ := json.Marshal(data)
	_, _ = w.Write(buf)
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
