package api

import (
	"net/http"

	resdto "hotel-console/internal/handler/dto/response"
	"hotel-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// @Summary List operator accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Router /console/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	users := console(c).Accounts.Activate(c.Request.Context())
	respond(c, http.StatusOK, resdto.FromUsers(users), nil)
}

// @Summary Account detail
// @Description Fetch one account from the API
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Router /console/accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := console(c).Accounts.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, resdto.FromUser(u), nil)
}

// @Summary Open account create form
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/accounts/editor [post]
func (h *AccountHandler) BeginCreate(c *gin.Context) {
	con := console(c)
	con.Accounts.BeginCreate()
	respond(c, http.StatusOK, nil, con.Accounts.Editor().Snapshot())
}

// @Summary Open account edit form
// @Description Prefill username and first role; the password starts blank
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /console/accounts/{id}/editor [post]
func (h *AccountHandler) BeginEdit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	con := console(c)
	if err := con.Accounts.BeginEdit(id); err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, nil, con.Accounts.Editor().Snapshot())
}

// @Summary Change account form fields
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body user.Draft true "Changed fields"
// @Success 200 {object} resdto.Envelope
// @Router /console/accounts/editor [patch]
func (h *AccountHandler) Patch(c *gin.Context) {
	raw, ok := rawBody(c)
	if !ok {
		return
	}
	con := console(c)
	if err := con.Accounts.Patch(raw); err != nil {
		fail(c, err, con.Accounts.Editor().Snapshot())
		return
	}
	respond(c, http.StatusOK, nil, con.Accounts.Editor().Snapshot())
}

// @Summary Submit account form
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 422 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /console/accounts/editor/submit [post]
func (h *AccountHandler) Submit(c *gin.Context) {
	con := console(c)
	saved, err := con.Accounts.Submit(c.Request.Context())
	if err != nil {
		fail(c, err, con.Accounts.Editor().Snapshot())
		return
	}
	respond(c, http.StatusOK, gin.H{
		"saved": resdto.FromUser(saved),
		"items": resdto.FromUsers(con.Accounts.Items()),
	}, nil)
}

// @Summary Close account form
// @Tags accounts
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/accounts/editor [delete]
func (h *AccountHandler) Cancel(c *gin.Context) {
	console(c).Accounts.Cancel()
	respond(c, http.StatusOK, nil, nil)
}

// @Summary Delete account
// @Description Deletes by username and drops it from the loaded list
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Username"
// @Param confirm query bool false "Operator confirmed the deletion"
// @Success 200 {object} resdto.Envelope
// @Router /console/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	username := c.Param("id")
	con := console(c)
	err := con.Accounts.Delete(c.Request.Context(), username, confirmer(c))
	switch {
	case errs.Is(err, errs.ErrDeleteDeclined):
		declined(c)
	case err != nil:
		fail(c, err, nil)
	default:
		respond(c, http.StatusOK, resdto.FromUsers(con.Accounts.Items()), nil)
	}
}
