package http

import (
	"net/http"

	"github.com/devconnector/devconnector/internal/utils"
	"github.com/devconnector/devconnector/models"
)

// writeServerError sends the generic 500 envelope. Failure detail stays in
// the server log, never in the body.
func writeServerError(w http.ResponseWriter) {
	utils.WriteJSON(w, models.MessageResponse{Msg: "Server Error"}, http.StatusInternalServerError)
}

// writeErrors sends a 400 with the {"errors":[...]} list envelope.
func writeErrors(w http.ResponseWriter, fields ...models.FieldError) {
	utils.WriteJSON(w, models.ErrorsResponse{Errors: fields}, http.StatusBadRequest)
}

// writeMsg sends the single-message {"msg":...} envelope with the given status.
func writeMsg(w http.ResponseWriter, msg string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Msg: msg}, statusCode)
}
