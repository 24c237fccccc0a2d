package api

import (
	"io"
	"net/http"
	"strconv"

	reqdto "hotel-console/internal/handler/dto/request"
	resdto "hotel-console/internal/handler/dto/response"
	"hotel-console/internal/handler/httperr"
	"hotel-console/internal/handler/middleware"
	"hotel-console/internal/infra/gateway"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/session"

	"github.com/gin-gonic/gin"
)

// console fetches the caller's console. The session middleware guarantees one.
func console(c *gin.Context) *session.Console {
	con, ok := middleware.GetConsole(c)
	if !ok {
		panic("console handler mounted without session middleware")
	}
	return con
}

func respond(c *gin.Context, status int, data, snapshot any) {
	c.JSON(status, resdto.NewEnvelope(c.Request.Context(), data, snapshot))
}

// fail maps a console error to a status. Gateway errors keep the API's status,
// with 502 for an unreachable API.
func fail(c *gin.Context, err error, snapshot any) {
	var (
		verr *form.ValidationError
		gerr *gateway.Error
	)
	switch {
	case errs.As(err, &verr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Formulario incompleto", snapshot)
	case errs.Is(err, errs.ErrEntryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Entry not found", snapshot)
	case errs.Is(err, errs.ErrInvalidLookupID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", snapshot)
	case errs.Is(err, errs.ErrEditorNotOpen):
		httperr.AbortWithError(c, http.StatusConflict, err, "No form is open", snapshot)
	case errs.Is(err, errs.ErrFormInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", snapshot)
	case errs.Is(err, gateway.ErrEmptyBody):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Empty response from API", snapshot)
	case errs.As(err, &gerr):
		status := gerr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		msg := gerr.Message
		if msg == "" {
			msg = string(gerr.Category)
		}
		httperr.AbortWithError(c, status, err, msg, snapshot)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", snapshot)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, errs.ErrInvalidLookupID, nil)
		return 0, false
	}
	return id, true
}

func rawBody(c *gin.Context) ([]byte, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		fail(c, errs.Mark(err, errs.ErrFormInvalid), nil)
		return nil, false
	}
	return raw, true
}

// confirmer turns ?confirm=true into the operator's answer.
func confirmer(c *gin.Context) notify.Confirmer {
	var q reqdto.DeleteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return notify.Answer(false)
	}
	return notify.Answer(q.Confirmed())
}

// declined answers a delete the operator has not confirmed yet; the prompt travels
// in the envelope.
func declined(c *gin.Context) {
	respond(c, http.StatusOK, nil, nil)
}
