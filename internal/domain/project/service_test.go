package project_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/takumi/atelier/internal/domain/project"
	"github.com/takumi/atelier/internal/repository"
	"github.com/takumi/atelier/internal/repository/mocks"
)

func TestProjectService_Create_RequiresName(t *testing.T) {
	svc := project.NewService(&mocks.ProjectRepository{}, nil)

	_, err := svc.Create(context.Background(), project.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_Create_GeneratesID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Insert", ctx, mock.MatchedBy(func(p *project.Project) bool {
		return strings.HasPrefix(p.ID, "prj_") &&
			string(p.LinkedChats) == `[]` &&
			string(p.Members) == `[]` &&
			string(p.GameSettings) == `{}`
	})).Return(nil)

	svc := project.NewService(repo, nil)
	p, err := svc.Create(ctx, project.CreateRequest{Name: "Roguelike", CreatorID: "u1"})
	require.NoError(t, err)
	require.False(t, p.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestProjectService_Create_NullCollections(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Insert", ctx, mock.MatchedBy(func(p *project.Project) bool {
		return string(p.Members) == `[]` && string(p.GameSettings) == `{}`
	})).Return(nil)

	svc := project.NewService(repo, nil)
	// explicit JSON nulls are treated like omitted fields
	p, err := svc.Create(ctx, project.CreateRequest{
		Name:         "Roguelike",
		Members:      []byte(`null`),
		GameSettings: []byte(`null`),
	})
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(p.Members))
	repo.AssertExpectations(t)
}

func TestProjectService_Create_KeepsCallerID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Insert", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, nil)
	p, err := svc.Create(ctx, project.CreateRequest{ID: "prj_custom", Name: "Roguelike"})
	require.NoError(t, err)
	require.Equal(t, "prj_custom", p.ID)
}

func TestProjectService_Update_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Update", ctx, "prj_missing", mock.Anything).Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.Update(ctx, "prj_missing", project.Patch{})
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_GetData_DefaultsWhenMissing(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("GetData", ctx, "prj_1").Return(nil, repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	data, err := svc.GetData(ctx, "prj_1")
	require.NoError(t, err)
	require.Equal(t, "prj_1", data.ProjectID)
	require.JSONEq(t, `[]`, string(data.GanttTasks))
	require.JSONEq(t, `{}`, string(data.HolidaySettings))
}

func TestProjectService_GetData_RequiresID(t *testing.T) {
	svc := project.NewService(&mocks.ProjectRepository{}, nil)

	_, err := svc.GetData(context.Background(), "")
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Delete", ctx, "prj_missing").Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	err := svc.Delete(ctx, "prj_missing")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
