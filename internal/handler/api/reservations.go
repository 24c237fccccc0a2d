package api

import (
	"net/http"

	resdto "hotel-console/internal/handler/dto/response"
	"hotel-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct{}

func NewReservationHandler() *ReservationHandler {
	return &ReservationHandler{}
}

// @Summary List reservations
// @Description Reload reservations; the status table comes along for the selector
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	wf := console(c).Reservations
	rows := wf.Activate(c.Request.Context())
	respond(c, http.StatusOK, gin.H{
		"items":    resdto.FromRows(rows),
		"statuses": wf.Statuses(),
	}, nil)
}

// @Summary Reload one reservation
// @Description Fetch the reservation from the API and replace its row, clearing a pending reconcile flag
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /console/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := console(c).Reservations.Reload(c.Request.Context(), id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, resdto.FromRow(row), nil)
}

// @Summary Open reservation create form
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/reservations/editor [post]
func (h *ReservationHandler) BeginCreate(c *gin.Context) {
	wf := console(c).Reservations
	wf.BeginCreate()
	respond(c, http.StatusOK, nil, wf.Editor().Snapshot())
}

// @Summary Open reservation edit form
// @Description Prefill from the listed reservation; an unknown status label leaves the status empty
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /console/reservations/{id}/editor [post]
func (h *ReservationHandler) BeginEdit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wf := console(c).Reservations
	if err := wf.BeginEdit(id); err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, nil, wf.Editor().Snapshot())
}

// @Summary Change reservation form fields
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reservation.Draft true "Changed fields"
// @Success 200 {object} resdto.Envelope
// @Router /console/reservations/editor [patch]
func (h *ReservationHandler) Patch(c *gin.Context) {
	raw, ok := rawBody(c)
	if !ok {
		return
	}
	wf := console(c).Reservations
	if err := wf.Patch(raw); err != nil {
		fail(c, err, wf.Editor().Snapshot())
		return
	}
	respond(c, http.StatusOK, nil, wf.Editor().Snapshot())
}

// @Summary Submit reservation form
// @Description Create, or update the fields and then the status. A rejected status
// @Description change keeps the form open and flags the row for reconciliation.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 422 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /console/reservations/editor/submit [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	wf := console(c).Reservations
	saved, err := wf.Submit(c.Request.Context())
	if err != nil {
		fail(c, err, wf.Editor().Snapshot())
		return
	}
	respond(c, http.StatusOK, gin.H{
		"saved": resdto.FromReservation(saved),
		"items": resdto.FromRows(wf.Rows()),
	}, nil)
}

// @Summary Close reservation form
// @Tags reservations
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/reservations/editor [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	console(c).Reservations.Cancel()
	respond(c, http.StatusOK, nil, nil)
}

// @Summary Delete reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param confirm query bool false "Operator confirmed the deletion"
// @Success 200 {object} resdto.Envelope
// @Router /console/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	wf := console(c).Reservations
	err := wf.Delete(c.Request.Context(), id, confirmer(c))
	switch {
	case errs.Is(err, errs.ErrDeleteDeclined):
		declined(c)
	case err != nil:
		fail(c, err, nil)
	default:
		respond(c, http.StatusOK, resdto.FromRows(wf.Rows()), nil)
	}
}
