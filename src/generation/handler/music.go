package generation_handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	auth_middleware "github.com/nimbusworks/nimbus-server/src/auth/middleware"
	billing_middleware "github.com/nimbusworks/nimbus-server/src/billing/middleware"
	billing_service "github.com/nimbusworks/nimbus-server/src/billing/service"
	common_model "github.com/nimbusworks/nimbus-server/src/common/model"
	"github.com/nimbusworks/nimbus-server/src/config/env"
	generation_model "github.com/nimbusworks/nimbus-server/src/generation/model"
	generation_service "github.com/nimbusworks/nimbus-server/src/generation/service"
	"github.com/nimbusworks/nimbus-server/src/integration/beatoven"
	"github.com/nimbusworks/nimbus-server/src/validators"
	"github.com/pterm/pterm"
)

// Music submits an asynchronous composition job and returns its handle.
// Completion is observed by polling MusicStatus; this server never polls the
// provider on its own.
//
// Free-tier metering for this family is configurable: by default a credit is
// consumed at submission (matching the synchronous families), otherwise the
// first poll that observes the composed state charges it.
//
//	@Summary		Compose music
//	@Description	Submits an asynchronous composition job and returns a task handle to poll.
//	@Tags			Generation
//	@Accept			json
//	@Produce		json
//	@Param			body	body		generation_model.MusicRequest	true	"Composition prompt"
//	@Success		200		{object}	generation_model.JobHandle		"Submitted job"
//	@Failure		400		{object}	common_model.DescriptiveError	"Prompt is required"
//	@Failure		401		{object}	common_model.DescriptiveError	"Unauthorized"
//	@Failure		403		{object}	common_model.DescriptiveError	"Free trial expired"
//	@Failure		503		{object}	common_model.DescriptiveError	"Provider failed"
//	@Security		ApiKeyAuth
//	@Router			/generation/music [post]
func Music(c *fiber.Ctx) error {
	var req generation_model.MusicRequest
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

	if req.Format == "" {
		req.Format = "wav"
	}

	taskID, rawStatus, err := beatoven.DefaultClient.Compose(c.UserContext(), req.Prompt, req.Format, req.Looping)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Music composition submission failed: %v", err),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("Music generation service unavailable. Please try again later.", nil, "generation").Send(),
		)
	}

	decision := billing_middleware.GetDecision(c)
	userID := auth_middleware.GetUserID(c)

	// Pro jobs never bill; free jobs bill now or at completion depending on
	// configuration.
	billedAtSubmission := decision.IsPro || env.MeterAsyncAtSubmission
	job := generation_service.NewMusicJob(taskID, userID, billedAtSubmission)
	if err := generation_service.Jobs.Create(job); err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to track music job %s: %v", taskID, err),
		)
	}

	if env.MeterAsyncAtSubmission {
		recordUsage(c)
	}

	return c.Status(fiber.StatusOK).JSON(generation_model.JobHandle{
		TaskID: taskID,
		Status: generation_model.ParseJobStatus(rawStatus),
	})
}

// MusicStatus polls a composition job. Non-terminal statuses should keep
// being polled by the client; composed and failed are terminal.
//
//	@Summary		Poll a composition job
//	@Description	Returns the job status and, once composed, the track URL.
//	@Tags			Generation
//	@Produce		json
//	@Param			task_id	query		string							true	"Task id returned at submission"
//	@Success		200		{object}	generation_model.MusicStatusResponse	"Job status"
//	@Failure		400		{object}	common_model.DescriptiveError	"Task id is required"
//	@Failure		401		{object}	common_model.DescriptiveError	"Unauthorized"
//	@Failure		503		{object}	common_model.DescriptiveError	"Provider failed"
//	@Security		ApiKeyAuth
//	@Router			/generation/music/status [get]
func MusicStatus(c *fiber.Ctx) error {
	taskID := c.Query("task_id")
	if taskID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("Task id is required", nil, "handler").Send(),
		)
	}

	state, err := beatoven.DefaultClient.TaskStatus(c.UserContext(), taskID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Music status poll failed for task %s: %v", taskID, err),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(
			common_model.NewApiError("Music generation service unavailable. Please try again later.", nil, "generation").Send(),
		)
	}

	status := generation_model.ParseJobStatus(state.Status)
	if status == generation_model.JobComposed {
		billCompletedJob(taskID)
	}

	return c.Status(fiber.StatusOK).JSON(generation_model.MusicStatusResponse{
		Status:   status,
		TrackURL: state.TrackURL,
	})
}

// billCompletedJob charges the free-tier credit for jobs metered at
// completion. Jobs already billed (submission-time metering, pro users)
// transition nothing.
func billCompletedJob(taskID string) {
	job, err := generation_service.Jobs.FindByTask(taskID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to look up music job %s: %v", taskID, err),
		)
		return
	}
	if job == nil || job.Billed {
		return
	}

	transitioned, err := generation_service.Jobs.MarkBilled(taskID)
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Unable to mark music job %s billed: %v", taskID, err),
		)
		return
	}
	if transitioned && billing_service.DefaultGate != nil {
		billing_service.DefaultGate.RecordUsage(job.UserID)
	}
}
