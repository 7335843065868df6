package generation_handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	auth_middleware "github.com/nimbusworks/nimbus-server/src/auth/middleware"
	billing_middleware "github.com/nimbusworks/nimbus-server/src/billing/middleware"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	generation_service "github.com/nimbusworks/nimbus-server/src/generation/service"
	"github.com/nimbusworks/nimbus-server/src/integration/huggingface"
	"github.com/nimbusworks/nimbus-server/src/validators"
)

// Conversation generates a chat reply by trying the conversation models in
// order. Usage is recorded only after a model produced a usable result, and
// never for pro users.
//
//	@Summary		Generate a conversation reply
//	@Description	Sends the last message to the conversation models in fallback order and returns the first successful reply.
//	@Tags			Generation
//	@Accept			json
//	@Produce		json
//	@Param			body	body		generation_model.ConversationRequest	true	"Conversation messages"
//	@Success		200		{object}	generation_model.ConversationResponse	"Generated reply"
//	@Failure		400		{object}	common_model.DescriptiveError			"Messages required"
//	@Failure		401		{object}	common_model.DescriptiveError			"Unauthorized"
//	@Failure		403		{object}	common_model.DescriptiveError			"Free trial expired"
//	@Failure		503		{object}	common_model.DescriptiveError			"All providers failed"
//	@Security		ApiKeyAuth
//	@Router			/generation/conversation [post]
func Conversation(c *fiber.Ctx) error {
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

	prompt := generation_service.ConversationPrompt(req.Last())

	raw, err := generation_service.GenerateText(
		c.UserContext(),
		generation_service.ConversationProviders(),
		prompt,
		huggingface.TextParams{MaxNewTokens: 250, Temperature: 0.7},
	)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("AI service unavailable. Please try again later.", nil, "generation").Send(),
		)
	}

	content := strings.TrimSpace(raw)
	if content == "" {
		content = "I couldn't generate a response."
	}

	recordUsage(c)

	return c.Status(fiber.StatusOK).JSON(generation_model.ConversationResponse{
		Role:    "assistant",
		Content: content,
	})
}

// recordUsage charges one free-tier credit for the authenticated user unless
// the entitlement decision marked them pro. Call only after the provider call
// produced a usable result.
func recordUsage(c *fiber.Ctx) {
	decision := billing_middleware.GetDecision(c)
	if decision.IsPro {
		return
	}
	if billing_service.DefaultGate == nil {
		return
	}

	billing_service.DefaultGate.RecordUsage(auth_middleware.GetUserID(c))
}
