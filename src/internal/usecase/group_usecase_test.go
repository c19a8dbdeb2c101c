package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"chama-service/src/internal/entity"
	"chama-service/src/internal/model"
	httpError "chama-service/src/pkg/http-error"
	"chama-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type groupsStub struct {
	groups       map[string]*entity.ChamaGroup
	joinRequests []*entity.GroupJoinRequest
}

func newGroupsStub(groups ...*entity.ChamaGroup) *groupsStub {
	s := &groupsStub{groups: map[string]*entity.ChamaGroup{}}
	for _, g := range groups {
		s.groups[g.ID] = g
	}
	return s
}

func (s *groupsStub) List(_ context.Context, _, _ int) ([]entity.ChamaGroup, error) {
	var out []entity.ChamaGroup
	for _, g := range s.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (s *groupsStub) FindByID(_ context.Context, id string) (*entity.ChamaGroup, error) {
	g, ok := s.groups[id]
	if !ok {
		return nil, fmt.Errorf("group %s: no rows", id)
	}
	return g, nil
}

func (s *groupsStub) HasPendingJoinRequest(_ context.Context, groupID, userID string) (bool, error) {
	for _, r := range s.joinRequests {
		if r.GroupID == groupID && r.UserID == userID && r.Status == entity.JoinRequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *groupsStub) CreateJoinRequest(_ context.Context, request *entity.GroupJoinRequest) error {
	s.joinRequests = append(s.joinRequests, request)
	return nil
}

type usersStub struct {
	users map[string]*entity.User
}

func (s *usersStub) FindByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: no rows", id)
	}
	return u, nil
}

func newGroupFixture(groups ...*entity.ChamaGroup) (*GroupUseCase, *groupsStub, *usersStub) {
	groupRepo := newGroupsStub(groups...)
	userRepo := &usersStub{users: map[string]*entity.User{
		"user-1": {UserID: "user-1", FullName: "Wanjiku Kamau", MobileNumber: "+254712345678"},
	}}
	uc := NewGroupUseCase(log.Log{}, validator.New(), groupRepo, userRepo)
	return uc, groupRepo, userRepo
}

func sampleGroup() *entity.ChamaGroup {
	return &entity.ChamaGroup{
		ID:            "group-1",
		Name:          "Umoja Savings",
		Description:   sql.NullString{String: "Monthly merry-go-round", Valid: true},
		MonthlyTarget: 2000,
	}
}

func TestListGroups(t *testing.T) {
	uc, _, _ := newGroupFixture(sampleGroup())

	result := uc.ListGroups(context.Background(), &model.ListGroupsRequest{})
	require.Nil(t, result.Error)

	responses, ok := result.Data.([]*model.GroupResponse)
	require.True(t, ok)
	require.Len(t, responses, 1)
	assert.Equal(t, "Umoja Savings", responses[0].Name)
	assert.Equal(t, "Monthly merry-go-round", responses[0].Description)
}

func TestJoinGroup(t *testing.T) {
	uc, groupRepo, _ := newGroupFixture(sampleGroup())

	result := uc.JoinGroup(context.Background(), &model.JoinGroupRequest{
		GroupID:     "group-1",
		UserID:      "user-1",
		FullName:    "Wanjiku Kamau",
		PhoneNumber: "+254712345678",
	})
	require.Nil(t, result.Error)

	require.Len(t, groupRepo.joinRequests, 1)
	assert.Equal(t, entity.JoinRequestStatusPending, groupRepo.joinRequests[0].Status)
	assert.Equal(t, "group-1", groupRepo.joinRequests[0].GroupID)
}

func TestJoinGroupFallsBackToProfile(t *testing.T) {
	uc, groupRepo, _ := newGroupFixture(sampleGroup())

	result := uc.JoinGroup(context.Background(), &model.JoinGroupRequest{
		GroupID: "group-1",
		UserID:  "user-1",
	})
	require.Nil(t, result.Error)

	require.Len(t, groupRepo.joinRequests, 1)
	assert.Equal(t, "Wanjiku Kamau", groupRepo.joinRequests[0].FullName)
	assert.Equal(t, "+254712345678", groupRepo.joinRequests[0].PhoneNumber)
}

func TestJoinGroupUnknownGroup(t *testing.T) {
	uc, _, _ := newGroupFixture()

	result := uc.JoinGroup(context.Background(), &model.JoinGroupRequest{
		GroupID: "nope",
		UserID:  "user-1",
	})
	require.NotNil(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 404, errObj.Code)
}

func TestJoinGroupDuplicatePending(t *testing.T) {
	uc, groupRepo, _ := newGroupFixture(sampleGroup())

	first := uc.JoinGroup(context.Background(), &model.JoinGroupRequest{GroupID: "group-1", UserID: "user-1"})
	require.Nil(t, first.Error)

	second := uc.JoinGroup(context.Background(), &model.JoinGroupRequest{GroupID: "group-1", UserID: "user-1"})
	require.NotNil(t, second.Error)

	errObj, ok := second.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 409, errObj.Code)
	assert.Len(t, groupRepo.joinRequests, 1)
}
