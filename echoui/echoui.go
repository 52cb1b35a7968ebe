// Package echoui mounts a swaggerui.SwaggerUI on an echo router.
package echoui

import (
	"github.com/labstack/echo/v4"

	"github.com/austinwofford/swagger-ui-redist/swaggerui"
)

// Register adds GET and HEAD routes for the mount path and everything below it.
func Register(e *echo.Echo, ui *swaggerui.SwaggerUI, m ...echo.MiddlewareFunc) {
	h := echo.WrapHandler(ui)

	mount := ui.MountPath()
	for _, p := range []string{mount, mount + "/", mount + "/*"} {
		if p == "" {
			continue
		}
		e.GET(p, h, m...)
		e.HEAD(p, h, m...)
	}
}
