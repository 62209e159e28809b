package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/takumi/atelier/internal/domain/user"
	"github.com/takumi/atelier/internal/repository"
	"github.com/takumi/atelier/internal/repository/mocks"
)

func TestUserService_Register_RequiresName(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, nil)

	_, err := svc.Register(context.Background(), user.RegisterRequest{Name: "  "})
	require.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestUserService_Register_New(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("FindByName", ctx, "Alice").Return((*user.User)(nil), repository.ErrNotFound)
	repo.On("Insert", ctx, mock.MatchedBy(func(u *user.User) bool {
		return u.ID != "" && u.Name == "Alice" && u.Status == "online"
	})).Return(nil)

	svc := user.NewService(repo, nil)
	res, err := svc.Register(ctx, user.RegisterRequest{Name: "Alice"})
	require.NoError(t, err)
	require.True(t, res.IsNew)
	require.NotEmpty(t, res.User.ID)
	repo.AssertExpectations(t)
}

func TestUserService_Register_TrimsName(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("FindByName", ctx, "Alice").Return((*user.User)(nil), repository.ErrNotFound)
	repo.On("Insert", ctx, mock.MatchedBy(func(u *user.User) bool {
		return u.Name == "Alice"
	})).Return(nil)

	svc := user.NewService(repo, nil)
	res, err := svc.Register(ctx, user.RegisterRequest{Name: "  Alice  "})
	require.NoError(t, err)
	// both the dedup lookup and the stored record use the trimmed name,
	// so "  Alice  " can never shadow an existing "Alice"
	require.Equal(t, "Alice", res.User.Name)
	repo.AssertExpectations(t)
}

func TestUserService_Register_CaseInsensitiveNameMatch(t *testing.T) {
	ctx := context.Background()
	existing := &user.User{ID: "u1", Name: "Alice"}

	repo := &mocks.UserRepository{}
	repo.On("FindByName", ctx, "alice").Return(existing, nil)

	svc := user.NewService(repo, nil)
	res, err := svc.Register(ctx, user.RegisterRequest{Name: "alice"})
	require.NoError(t, err)
	require.False(t, res.IsNew, "matching an existing name must not create a duplicate")
	require.Equal(t, "u1", res.User.ID)
	repo.AssertNotCalled(t, "Insert", ctx, mock.Anything)
}

func TestUserService_Register_ProviderPrecedence(t *testing.T) {
	ctx := context.Background()
	existing := &user.User{ID: "u1", Name: "Old Name", Provider: "github", ProviderID: "gh-1"}

	repo := &mocks.UserRepository{}
	repo.On("FindByProvider", ctx, "github", "gh-1").Return(existing, nil)

	svc := user.NewService(repo, nil)
	res, err := svc.Register(ctx, user.RegisterRequest{
		Name:       "New Name",
		Provider:   "github",
		ProviderID: "gh-1",
	})
	require.NoError(t, err)
	require.False(t, res.IsNew)
	require.Equal(t, "u1", res.User.ID)
	// provider identity wins; the name lookup never runs
	repo.AssertNotCalled(t, "FindByName", ctx, mock.Anything)
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("Get", ctx, "missing").Return((*user.User)(nil), repository.ErrNotFound)

	svc := user.NewService(repo, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_Search_RequiresQuery(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, nil)

	_, err := svc.Search(context.Background(), "")
	require.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestUserService_AddFriend_Validation(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, nil)
	ctx := context.Background()

	require.ErrorIs(t, svc.AddFriend(ctx, "", "u2"), user.ErrInvalidInput)
	require.ErrorIs(t, svc.AddFriend(ctx, "u1", "u1"), user.ErrInvalidInput)
}
