package dto

// ErrorResponse cuerpo de error HTTP.
// Las rutas de slug solo informan Message (y Error en fallos del servidor);
// la API de administración añade Code.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
