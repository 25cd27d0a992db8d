package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bagpackers/config"
	"bagpackers/infras/jwt"
	jwtMocks "bagpackers/infras/jwt/mocks"
	"bagpackers/infras/otel/mocks"
	"bagpackers/internal/domains/auth/model/dto"
	"bagpackers/internal/domains/auth/service"
	userMocks "bagpackers/internal/domains/user/mocks"
	userModel "bagpackers/internal/domains/user/model"
	"bagpackers/shared/constant"
	"bagpackers/shared/failure"
	"bagpackers/shared/password"
)

func newService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	return svc, mockUserRepo, mockJWT
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	assert.NoError(t, err)

	return hash
}

func TestAuthService_Register(t *testing.T) {
	validReq := dto.RegisterRequest{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Password:  "secret1",
	}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser)
		wantErr   error
		wantAny   bool
	}{
		{
			name: "successful registration",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "asha@example.com", user.Email)
						assert.Equal(t, userModel.AuthProviderLocal, user.AuthProvider)
						assert.NotEqual(t, "secret1", user.Password)

						return nil
					})
			},
		},
		{
			name: "email already registered",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: service.ErrEmailTaken,
		},
		{
			name: "exist check error",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantAny: true,
		},
		{
			name: "insert error",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockUserRepo, _ := newService(t)

			tt.setupMock(mockUserRepo)

			err := svc.Register(context.Background(), validReq)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAny:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	storedUser := func(t *testing.T) userModel.User {
		return userModel.User{
			ID:           "user-1",
			FirstName:    "Asha",
			LastName:     "Rao",
			Email:        "asha@example.com",
			Password:     hashedPassword(t, "secret1"),
			AuthProvider: userModel.AuthProviderLocal,
		}
	}

	t.Run("successful login", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser(t), nil)

		mockJWT.EXPECT().
			GenerateTokenPair("user-1", "asha@example.com").
			Return(&jwt.TokenPair{
				AccessToken:  "access",
				RefreshToken: "refresh",
				TokenType:    "Bearer",
				ExpiresIn:    900,
			}, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "asha@example.com",
			Password: "secret1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "user-1", res.User.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret1",
		})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("wrong password gets the same generic error", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser(t), nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "asha@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("token generation error", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedUser(t), nil)

		mockJWT.EXPECT().
			GenerateTokenPair(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("signing error"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "asha@example.com",
			Password: "secret1",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().
			RefreshTokens(gomock.Any()).
			Return(nil, errors.New("expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Me(t *testing.T) {
	t.Run("profile from context user", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{ID: "user-1", FirstName: "Asha", Email: "asha@example.com"}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

		res, err := svc.Me(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
	})

	t.Run("missing user in context", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Me(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("user row gone", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

		_, err := svc.Me(ctx)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
