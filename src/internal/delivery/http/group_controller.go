package http

import (
	"chama-service/src/internal/delivery/http/middleware"
	"chama-service/src/internal/model"
	"chama-service/src/internal/usecase"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type GroupController struct {
	Log     log.Log
	UseCase *usecase.GroupUseCase
}

func NewGroupController(useCase *usecase.GroupUseCase, logger log.Log) *GroupController {
	return &GroupController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *GroupController) ListGroups(ctx *fiber.Ctx) error {
	request := &model.ListGroupsRequest{
		Limit:  ctx.QueryInt("limit"),
		Offset: ctx.QueryInt("offset"),
	}
	result := c.UseCase.ListGroups(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Groups", fiber.StatusOK, ctx)
}

func (c *GroupController) JoinGroup(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.JoinGroupRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("GroupController.JoinGroup", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.GroupID = ctx.Params("id")
	request.UserID = auth.UserID

	result := c.UseCase.JoinGroup(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Join Request Submitted", fiber.StatusCreated, ctx)
}
