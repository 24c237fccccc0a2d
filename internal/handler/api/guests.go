package api

import (
	"net/http"

	reqdto "hotel-console/internal/handler/dto/request"
	resdto "hotel-console/internal/handler/dto/response"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/usecase/views"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct{}

func NewGuestHandler() *GuestHandler {
	return &GuestHandler{}
}

// @Summary List guests
// @Description Reload the guest list from the API. An unreachable API yields an empty list.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Router /console/guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	con := console(c)
	guests := con.Guests.Activate(c.Request.Context())
	respond(c, http.StatusOK, resdto.FromGuests(guests), nil)
}

// @Summary Guest detail
// @Description Show a guest from the loaded list
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /console/guests/{id} [get]
func (h *GuestHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	g, err := console(c).Guests.Detail(id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, resdto.FromGuest(g), nil)
}

// @Summary Search guest
// @Description Look a guest up by ID with a single API call
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id query string true "Guest ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /console/guests/search [get]
func (h *GuestHandler) Search(c *gin.Context) {
	var q reqdto.SearchQuery
	_ = c.ShouldBindQuery(&q)

	result, err := console(c).Guests.Search(c.Request.Context(), q.ID)
	searchResult(c, result, err)
}

// @Summary Look up guest by guest ID
// @Description Use the API's alternate guest-id route
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /console/guests/lookup/{id} [get]
func (h *GuestHandler) Lookup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := console(c).Guests.LookupByGuestID(c.Request.Context(), id)
	searchResult(c, result, err)
}

// searchResult answers "not found" with 200 and the message; invalid input is a 400
// carrying the same body.
func searchResult(c *gin.Context, result views.SearchResult, err error) {
	body := resdto.GuestSearchResponse{
		Found:   result.Found(),
		Guest:   resdto.FromGuest(result.Guest),
		Message: result.Message,
	}
	if err != nil {
		if errs.Is(err, errs.ErrInvalidLookupID) {
			fail(c, err, body)
			return
		}
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, body, nil)
}

// @Summary Open guest create form
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/guests/editor [post]
func (h *GuestHandler) BeginCreate(c *gin.Context) {
	con := console(c)
	con.Guests.BeginCreate()
	respond(c, http.StatusOK, nil, con.Guests.Editor().Snapshot())
}

// @Summary Open guest edit form
// @Description Prefill the form from the listed guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /console/guests/{id}/editor [post]
func (h *GuestHandler) BeginEdit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	con := console(c)
	if err := con.Guests.BeginEdit(id); err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, nil, con.Guests.Editor().Snapshot())
}

// @Summary Change guest form fields
// @Description Merge the JSON object into the form and re-evaluate it
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body guest.Draft true "Changed fields"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /console/guests/editor [patch]
func (h *GuestHandler) Patch(c *gin.Context) {
	raw, ok := rawBody(c)
	if !ok {
		return
	}
	con := console(c)
	if err := con.Guests.Patch(raw); err != nil {
		fail(c, err, con.Guests.Editor().Snapshot())
		return
	}
	respond(c, http.StatusOK, nil, con.Guests.Editor().Snapshot())
}

// @Summary Submit guest form
// @Description Create or update the guest, then reload the list
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 422 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /console/guests/editor/submit [post]
func (h *GuestHandler) Submit(c *gin.Context) {
	con := console(c)
	saved, err := con.Guests.Submit(c.Request.Context())
	if err != nil {
		fail(c, err, con.Guests.Editor().Snapshot())
		return
	}
	respond(c, http.StatusOK, gin.H{
		"saved": resdto.FromGuest(saved),
		"items": resdto.FromGuests(con.Guests.Items()),
	}, nil)
}

// @Summary Close guest form
// @Tags guests
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/guests/editor [delete]
func (h *GuestHandler) Cancel(c *gin.Context) {
	con := console(c)
	con.Guests.Cancel()
	respond(c, http.StatusOK, nil, nil)
}

// @Summary Delete guest
// @Description Without confirm=true nothing is deleted and the prompt is returned
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Guest ID"
// @Param confirm query bool false "Operator confirmed the deletion"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /console/guests/{id} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	con := console(c)
	err := con.Guests.Delete(c.Request.Context(), id, confirmer(c))
	switch {
	case errs.Is(err, errs.ErrDeleteDeclined):
		declined(c)
	case err != nil:
		fail(c, err, nil)
	default:
		respond(c, http.StatusOK, resdto.FromGuests(con.Guests.Items()), nil)
	}
}
