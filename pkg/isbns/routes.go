package isbns

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers ISBN lookup, validation, conversion, and
// hyphenation routes.
func RegisterRoutes(e *echo.Echo) {
	h := &handler{}

	g := e.Group("/isbns")
	g.GET("/:isbn", h.retrieve)
	g.GET("/:isbn/validate", h.validate)
	g.GET("/:isbn/convert", h.convert)
	g.GET("/:isbn/hyphenate", h.hyphenate)
}
