package api

import (
	"net/http"

	resdto "hotel-console/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct{}

func NewRoomHandler() *RoomHandler {
	return &RoomHandler{}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /console/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms := console(c).Rooms.Activate(c.Request.Context())
	respond(c, http.StatusOK, resdto.FromRooms(rooms), nil)
}

// @Summary Room detail
// @Description Fetch one room from the API
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /console/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := console(c).Rooms.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, nil)
		return
	}
	respond(c, http.StatusOK, resdto.FromRoom(r), nil)
}
