package http

import "github.com/labstack/echo/v4"

// Handler is implemented by anything that mounts routes on the server.
// The server registers every handler it is given before listening.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
