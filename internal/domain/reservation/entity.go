package reservation

// Reservation links one guest to one room for a stay. The status travels as the
// label the API renders; StatusID resolves it against the fixed table.
type Reservation struct {
	id          int64
	guest       GuestSummary
	room        RoomSummary
	checkIn     Stamp
	checkOut    Stamp
	statusLabel string
}

func Reconstruct(
	id int64,
	guest GuestSummary,
	room RoomSummary,
	checkIn, checkOut Stamp,
	statusLabel string,
) *Reservation {
	return &Reservation{
		id:          id,
		guest:       guest,
		room:        room,
		checkIn:     checkIn,
		checkOut:    checkOut,
		statusLabel: statusLabel,
	}
}

func (r *Reservation) ID() int64           { return r.id }
func (r *Reservation) Guest() GuestSummary { return r.guest }
func (r *Reservation) Room() RoomSummary   { return r.room }
func (r *Reservation) CheckIn() Stamp      { return r.checkIn }
func (r *Reservation) CheckOut() Stamp     { return r.checkOut }
func (r *Reservation) StatusLabel() string { return r.statusLabel }

func (r *Reservation) StatusID() (StatusID, bool) {
	return StatusFromLabel(r.statusLabel)
}

// WithStatus returns a copy carrying the label of id.
func (r *Reservation) WithStatus(id StatusID) *Reservation {
	cp := *r
	cp.statusLabel = id.Label()
	return &cp
}

// ToDraft prefills the editor. An unknown status label leaves StatusID empty.
func (r *Reservation) ToDraft() Draft {
	status, _ := r.StatusID()
	return Draft{
		GuestID:  r.guest.ID,
		RoomID:   r.room.ID,
		CheckIn:  r.checkIn.String(),
		CheckOut: r.checkOut.String(),
		StatusID: status,
	}
}
