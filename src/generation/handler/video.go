package generation_handler

import (
	"github.com/gofiber/fiber/v2"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	generation_service "github.com/nimbusworks/nimbus-server/src/generation/service"
	"github.com/nimbusworks/nimbus-server/src/validators"
)

type videoPayload struct {
	Inputs struct {
		Prompt            string  `json:"prompt"`
		NumInferenceSteps int     `json:"num_inference_steps"`
		GuidanceScale     float64 `json:"guidance_scale"`
		Height            int     `json:"height"`
		Width             int     `json:"width"`
		FPS               int     `json:"fps"`
	} `json:"inputs"`
}

// Video generates a video prediction from a prompt. The provider's prediction
// JSON is returned unmodified.
//
//	@Summary		Generate a video
//	@Description	Generates a video prediction from the prompt and returns the provider's prediction JSON.
//	@Tags			Generation
//	@Accept			json
//	@Produce		json
//	@Param			body	body		generation_model.PromptRequest	true	"Prompt"
//	@Success		200		{object}	object							"Prediction payload"
//	@Failure		400		{object}	common_model.DescriptiveError	"Prompt is required"
//	@Failure		401		{object}	common_model.DescriptiveError	"Unauthorized"
//	@Failure		403		{object}	common_model.DescriptiveError	"Free trial expired"
//	@Failure		503		{object}	common_model.DescriptiveError	"All providers failed"
//	@Security		ApiKeyAuth
//	@Router			/generation/video [post]
func Video(c *fiber.Ctx) error {
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

	payload := videoPayload{}
	payload.Inputs.Prompt = req.Prompt
	payload.Inputs.NumInferenceSteps = 50
	payload.Inputs.GuidanceScale = 7.5
	payload.Inputs.Height = 320
	payload.Inputs.Width = 576
	payload.Inputs.FPS = 24

	result, err := generation_service.GenerateBinary(
		c.UserContext(),
		generation_service.VideoProviders(),
		payload,
	)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("Video generation service unavailable. Please try again later.", nil, "generation").Send(),
		)
	}

	recordUsage(c)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(result.Binary)
}
