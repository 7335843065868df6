package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/nimbusworks/nimbus-server/docs"
)

// makeDocs mounts the swagger UI for the generation and billing surface at
// /docs. The document itself is the committed swag output in the docs package.
func makeDocs(app *fiber.App) {
	app.Get("/docs/*", swagger.HandlerDefault)
}
