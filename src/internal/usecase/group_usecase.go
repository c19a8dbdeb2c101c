package usecase

import (
	"context"
	"fmt"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
	"chama-service/src/internal/model/converter"
	"chama-service/src/internal/repository"
	httpError "chama-service/src/pkg/http-error"
	"chama-service/src/pkg/log"
	"chama-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type GroupUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	GroupRepository repository.Groups
	UserRepository  repository.Users
}

func NewGroupUseCase(
	logger log.Log,
	validate *validator.Validate,
	groupRepository repository.Groups,
	userRepository repository.Users,
) *GroupUseCase {
	return &GroupUseCase{
		Log:             logger,
		Validate:        validate,
		GroupRepository: groupRepository,
		UserRepository:  userRepository,
	}
}

func (c *GroupUseCase) ListGroups(ctx context.Context, request *model.ListGroupsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	limit := request.Limit
	if limit == 0 {
		limit = 50
	}
	groups, err := c.GroupRepository.List(ctx, limit, request.Offset)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to list groups: %v", err)
		result.Error = errObj
		c.Log.Error("group-usecase", errObj.Message, "ListGroups", "")
		return result
	}

	responses := make([]*model.GroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, converter.GroupToResponse(&groups[i]))
	}
	result.Data = responses
	return result
}

func (c *GroupUseCase) JoinGroup(ctx context.Context, request *model.JoinGroupRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("group-usecase", errObj.Message, "JoinGroup", utils.ConvertString(request))
		return result
	}

	group, err := c.GroupRepository.FindByID(ctx, request.GroupID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("group with id %s not found", request.GroupID)
		result.Error = errObj
		c.Log.Error("group-usecase", errObj.Message, "JoinGroup", utils.ConvertString(err.Error()))
		return result
	}

	// the join form may omit name/phone, fall back to the member profile
	if request.FullName == "" || request.PhoneNumber == "" {
		user, err := c.UserRepository.FindByID(ctx, request.UserID)
		if err != nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("user with id %s not found", request.UserID)
			result.Error = errObj
			c.Log.Error("group-usecase", errObj.Message, "JoinGroup", utils.ConvertString(err.Error()))
			return result
		}
		if request.FullName == "" {
			request.FullName = user.FullName
		}
		if request.PhoneNumber == "" {
			request.PhoneNumber = user.MobileNumber
		}
	}

	pending, err := c.GroupRepository.HasPendingJoinRequest(ctx, group.ID, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to check existing requests: %v", err)
		result.Error = errObj
		c.Log.Error("group-usecase", errObj.Message, "JoinGroup", request.UserID)
		return result
	}
	if pending {
		errObj := httpError.NewConflict()
		errObj.Message = "you already have a pending request for this group"
		result.Error = errObj
		return result
	}

	joinRequest := &entity.GroupJoinRequest{
		ID:          uuid.NewString(),
		GroupID:     group.ID,
		UserID:      request.UserID,
		FullName:    request.FullName,
		PhoneNumber: request.PhoneNumber,
		Status:      entity.JoinRequestStatusPending,
	}
	if err := c.GroupRepository.CreateJoinRequest(ctx, joinRequest); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to submit join request: %v", err)
		result.Error = errObj
		c.Log.Error("group-usecase", errObj.Message, "JoinGroup", request.UserID)
		return result
	}

	c.Log.Info("group-usecase", "join request submitted", "JoinGroup", joinRequest.ID)
	result.Data = converter.JoinRequestToResponse(joinRequest)
	return result
}
