package generation_handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	generation_service "github.com/nimbusworks/nimbus-server/src/generation/service"
	"github.com/nimbusworks/nimbus-server/src/validators"
)

type imagePayload struct {
	Inputs  string `json:"inputs"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

// Image generates an image from a prompt and returns the raw bytes.
//
//	@Summary		Generate an image
//	@Description	Generates an image from the prompt and returns the binary payload with long-lived cache headers.
//	@Tags			Generation
//	@Accept			json
//	@Produce		png
//	@Param			body	body	generation_model.PromptRequest	true	"Prompt"
//	@Success		200		{file}		file							"Generated image"
//	@Failure		400		{object}	common_model.DescriptiveError	"Prompt is required"
//	@Failure		401		{object}	common_model.DescriptiveError	"Unauthorized"
//	@Failure		403		{object}	common_model.DescriptiveError	"Free trial expired"
//	@Failure		503		{object}	common_model.DescriptiveError	"All providers failed"
//	@Security		ApiKeyAuth
//	@Router			/generation/image [post]
func Image(c *fiber.Ctx) error {
	var req generation_model.PromptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("Prompt is required", err, "handler").Send(),
		)
	}

	payload := imagePayload{Inputs: req.Prompt}
	payload.Options.WaitForModel = true

	result, err := generation_service.GenerateBinary(
		c.UserContext(),
		generation_service.ImageProviders(),
		payload,
	)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("Image generation service unavailable. Please try again later.", nil, "generation").Send(),
		)
	}

	recordUsage(c)

	contentType := result.ContentType
	if contentType == "" {
		contentType = "image/png"
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+slug.Make(req.Prompt)+`.png"`)

	return c.Status(fiber.StatusOK).Send(result.Binary)
}
