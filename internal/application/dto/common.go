package dto

// ErrorResponse cuerpo de error HTTP. Code es estable para el cliente;
// Message es el texto que la consola muestra tal cual al usuario.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
