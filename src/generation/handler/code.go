package generation_handler

import (
	"github.com/gofiber/fiber/v2"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	generation_service "github.com/nimbusworks/nimbus-server/src/generation/service"
	"github.com/nimbusworks/nimbus-server/src/integration/huggingface"
	"github.com/nimbusworks/nimbus-server/src/validators"
)

// Code generates a code snippet by trying the code models in order. The reply
// is always shaped as a fenced markdown code block.
//
//	@Summary		Generate code
//	@Description	Sends the last message to the code models in fallback order. The reply is guaranteed to carry a fenced code block.
//	@Tags			Generation
//	@Accept			json
//	@Produce		json
//	@Param			body	body		generation_model.ConversationRequest	true	"Conversation messages"
//	@Success		200		{object}	generation_model.ConversationResponse	"Generated code"
//	@Failure		400		{object}	common_model.DescriptiveError			"Messages required"
//	@Failure		401		{object}	common_model.DescriptiveError			"Unauthorized"
//	@Failure		403		{object}	common_model.DescriptiveError			"Free trial expired"
//	@Failure		503		{object}	common_model.DescriptiveError			"All providers failed"
//	@Security		ApiKeyAuth
//	@Router			/generation/code [post]
func Code(c *fiber.Ctx) error {
	var req generation_model.ConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("Messages required", err, "handler").Send(),
		)
	}

	prompt := generation_service.CodePrompt(req.Last())

	raw, err := generation_service.GenerateText(
		c.UserContext(),
		generation_service.CodeProviders(),
		prompt,
		huggingface.TextParams{MaxNewTokens: 1024, Temperature: 0.5},
	)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("Code generation service unavailable. Please try again later.", nil, "generation").Send(),
		)
	}

	if raw == "" {
		raw = "I couldn't generate code for your request."
	}

	recordUsage(c)

	return c.Status(fiber.StatusOK).JSON(generation_model.ConversationResponse{
		Role:    "assistant",
		Content: generation_service.EnsureCodeFence(raw),
	})
}
