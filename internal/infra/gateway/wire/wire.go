// Package wire holds the JSON bodies the hotel API exchanges. Field names follow the API.
package wire

type HuespedRequest struct {
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	TipoDocumento string `json:"tipoDocumento"`
	Nacionalidad  string `json:"nacionalidad"`
}

type HuespedResponse struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Apellido       string `json:"apellido"`
	Email          string `json:"email"`
	Telefono       string `json:"telefono"`
	TipoDocumento  string `json:"tipoDocumento"`
	Nacionalidad   string `json:"nacionalidad"`
	EstadoRegistro string `json:"estadoRegistro"`
}

type HabitacionResponse struct {
	ID        int64   `json:"id"`
	Numero    int     `json:"numero"`
	Tipo      string  `json:"tipo"`
	Precio    float64 `json:"precio"`
	Capacidad int     `json:"capacidad"`
}

type ReservaRequest struct {
	IDHuesped       int64  `json:"idHuesped"`
	IDHabitacion    int64  `json:"idHabitacion"`
	FechaEntrada    string `json:"fechaEntrada"`
	FechaSalida     string `json:"fechaSalida"`
	IDEstadoReserva int    `json:"idEstadoReserva"`
}

// ReservaUpdateRequest is the field update; the status moves through its own endpoint.
type ReservaUpdateRequest struct {
	IDHuesped    int64  `json:"idHuesped"`
	IDHabitacion int64  `json:"idHabitacion"`
	FechaEntrada string `json:"fechaEntrada"`
	FechaSalida  string `json:"fechaSalida"`
}

type DatosHuesped struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Documento    string `json:"documento"`
	Nacionalidad string `json:"nacionalidad"`
}

type DatosHabitacion struct {
	ID        int64   `json:"id"`
	Numero    int     `json:"numero"`
	Tipo      string  `json:"tipo"`
	Precio    float64 `json:"precio"`
	Capacidad int     `json:"capacidad"`
}

type ReservaResponse struct {
	ID            int64           `json:"id"`
	Huesped       DatosHuesped    `json:"huesped"`
	Habitacion    DatosHabitacion `json:"habitacion"`
	FechaEntrada  string          `json:"fechaEntrada"`
	FechaSalida   string          `json:"fechaSalida"`
	EstadoReserva string          `json:"estadoReserva"`
}

type UsuarioRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password,omitempty"`
	Roles    []string `json:"roles"`
}

type UsuarioResponse struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	Roles          []string `json:"roles"`
	EstadoRegistro string   `json:"estadoRegistro"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// ErrorBody is what the API puts in non-2xx responses. Older endpoints use "mensaje".
type ErrorBody struct {
	Message string `json:"message"`
	Mensaje string `json:"mensaje"`
}
