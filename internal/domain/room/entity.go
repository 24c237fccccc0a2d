package room

// Room is a bookable unit. The console never edits rooms directly.
type Room struct {
	id       int64
	number   int
	kind     string
	price    float64
	capacity int
}

func Reconstruct(id int64, number int, kind string, price float64, capacity int) *Room {
	return &Room{
		id:       id,
		number:   number,
		kind:     kind,
		price:    price,
		capacity: capacity,
	}
}

func (r *Room) ID() int64      { return r.id }
func (r *Room) Number() int    { return r.number }
func (r *Room) Kind() string   { return r.kind }
func (r *Room) Price() float64 { return r.price }
func (r *Room) Capacity() int  { return r.capacity }

func (r *Room) Fits(guests int) bool {
	return guests > 0 && guests <= r.capacity
}
