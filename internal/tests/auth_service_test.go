package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"foodcourt/internal/domain"
	"foodcourt/internal/mocks"
	"foodcourt/internal/service"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		password     string
		prepareMocks func(users *mocks.UserRepository)
		wantErr      error
	}{
		{
			name:     "success",
			username: "alice",
			password: "password123",
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("IsUserExists", "alice").Return(false, nil).Once()
				users.On("CreateUser", mock.MatchedBy(func(u *domain.User) bool {
					return u.Username == "alice" &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil &&
						u.Balance.IsZero()
				})).Return(nil).Once()
			},
		},
		{
			name:     "duplicate username",
			username: "alice",
			password: "password123",
			prepareMocks: func(users *mocks.UserRepository) {
				users.On("IsUserExists", "alice").Return(true, nil).Once()
			},
			wantErr: domain.ErrUserExists,
		},
		{
			name:         "short password",
			username:     "alice",
			password:     "123",
			prepareMocks: func(users *mocks.UserRepository) {},
			wantErr:      nil, // generic validation error, checked below
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			testCase.prepareMocks(users)

			svc := service.NewAuthService(users, []byte("secret"))
			user, err := svc.Register(testCase.username, testCase.password)

			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			case testCase.name == "short password":
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, testCase.username, user.Username)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	users := mocks.NewUserRepository(t)
	users.On("GetUserByUsername", "alice").
		Return(&domain.User{ID: 7, Username: "alice", PasswordHash: string(hash)}, nil).Twice()

	svc := service.NewAuthService(users, []byte("secret"))

	token, err := svc.Login("alice", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("alice", "wrongpassword")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
