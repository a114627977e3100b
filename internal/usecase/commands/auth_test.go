//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-backend/internal/domain/auth"
	"hotel-backend/internal/domain/customer"
	"hotel-backend/internal/domain/user"
	"hotel-backend/internal/pkg/jwt"
	"hotel-backend/internal/pkg/password"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedUser struct {
	view *queries.AuthorizedUserView
	hash string
}

type fakeUserStore struct {
	users map[string]storedUser
}

func (s *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	for _, u := range s.users {
		if u.view.ID == id {
			return u.view, nil
		}
	}
	return nil, notFound("user")
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, "", notFound("user")
	}
	return u.view, u.hash, nil
}

type storedCustomer struct {
	view *queries.CustomerView
	hash string
}

type fakeCustomerStore struct {
	customers map[string]storedCustomer
}

func (s *fakeCustomerStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	for _, c := range s.customers {
		if c.view.ID == id {
			return c.view, nil
		}
	}
	return nil, notFound("customer")
}

func (s *fakeCustomerStore) FindByUsername(_ context.Context, username string) (*queries.CustomerView, string, error) {
	c, ok := s.customers[username]
	if !ok {
		return nil, "", notFound("customer")
	}
	return c.view, c.hash, nil
}

func (s *fakeCustomerStore) ListByHotel(context.Context, uuid.UUID) ([]*queries.CustomerView, error) {
	return nil, nil
}

func (s *fakeCustomerStore) SearchByName(context.Context, uuid.UUID, customer.NameSearch) ([]*queries.CustomerView, error) {
	return nil, nil
}

type authScene struct {
	jwt       *jwt.Service
	users     *fakeUserStore
	customers *fakeCustomerStore
	auth      commands.AuthCommands
	hotelID   uuid.UUID
}

func newAuthScene(t *testing.T) *authScene {
	t.Helper()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	hotelID := uuid.New()
	s := &authScene{
		jwt:     jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour),
		hotelID: hotelID,
		users: &fakeUserStore{users: map[string]storedUser{
			"staff@example.com": {
				view: &queries.AuthorizedUserView{ID: uuid.New(), Email: "staff@example.com", Role: "staff", HotelID: &hotelID, IsActive: true},
				hash: hash,
			},
			"admin@example.com": {
				view: &queries.AuthorizedUserView{ID: uuid.New(), Email: "admin@example.com", Role: "admin", IsActive: true},
				hash: hash,
			},
			"gone@example.com": {
				view: &queries.AuthorizedUserView{ID: uuid.New(), Email: "gone@example.com", Role: "staff", HotelID: &hotelID, IsActive: false},
				hash: hash,
			},
		}},
		customers: &fakeCustomerStore{customers: map[string]storedCustomer{
			"jdoe": {view: &queries.CustomerView{ID: uuid.New(), Username: "jdoe"}, hash: hash},
		}},
	}
	s.auth = commands.NewAuthCommands(newMemUoW(nil), s.users, s.customers, s.jwt)
	return s
}

func staffCredentials(t *testing.T, email, pw string) auth.Credentials {
	t.Helper()
	creds, err := auth.NewCredentials(email, pw)
	require.NoError(t, err)
	return creds
}

func customerCredentials(t *testing.T, username, pw string) auth.CustomerCredentials {
	t.Helper()
	creds, err := auth.NewCustomerCredentials(username, pw)
	require.NoError(t, err)
	return creds
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("スタッフはホテル付きのトークンを得る", func(t *testing.T) {
		s := newAuthScene(t)

		res, err := s.auth.Login(ctx, staffCredentials(t, "staff@example.com", "password123"))
		require.NoError(t, err)

		claims, err := s.jwt.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, res.UserID, claims.UserID)
		assert.Equal(t, "staff", claims.Role)
		require.NotNil(t, claims.HotelID)
		assert.Equal(t, s.hotelID, *claims.HotelID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("管理者はホテルなしのトークンを得る", func(t *testing.T) {
		s := newAuthScene(t)

		res, err := s.auth.Login(ctx, staffCredentials(t, "admin@example.com", "password123"))
		require.NoError(t, err)

		claims, err := s.jwt.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
		assert.Nil(t, claims.HotelID)
	})

	t.Run("認証失敗", func(t *testing.T) {
		cases := []struct {
			name     string
			email    string
			password string
			errIs    error
		}{
			{name: "パスワード不一致", email: "staff@example.com", password: "wrong-password", errIs: commands.ErrInvalidCredentials},
			{name: "未登録のメール", email: "nobody@example.com", password: "password123", errIs: commands.ErrInvalidCredentials},
			{name: "無効化されたユーザー", email: "gone@example.com", password: "password123", errIs: commands.ErrUserInactive},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				s := newAuthScene(t)

				res, err := s.auth.Login(ctx, staffCredentials(t, tc.email, tc.password))
				assert.Nil(t, res)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestCustomerLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("顧客ロールのトークンを得る", func(t *testing.T) {
		s := newAuthScene(t)

		res, err := s.auth.CustomerLogin(ctx, customerCredentials(t, "jdoe", "password123"))
		require.NoError(t, err)

		claims, err := s.jwt.ValidateToken(res.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.RoleCustomer.String(), claims.Role)
		assert.Nil(t, claims.HotelID)
	})

	t.Run("未登録と不一致は同じエラー", func(t *testing.T) {
		s := newAuthScene(t)

		_, unknown := s.auth.CustomerLogin(ctx, customerCredentials(t, "ghost", "password123"))
		_, mismatch := s.auth.CustomerLogin(ctx, customerCredentials(t, "jdoe", "wrong-password"))

		assert.ErrorIs(t, unknown, commands.ErrInvalidCredentials)
		assert.ErrorIs(t, mismatch, commands.ErrInvalidCredentials)
		assert.Equal(t, unknown.Error(), mismatch.Error())
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("スタッフのリフレッシュ", func(t *testing.T) {
		s := newAuthScene(t)
		login, err := s.auth.Login(ctx, staffCredentials(t, "staff@example.com", "password123"))
		require.NoError(t, err)

		pair, err := s.auth.RefreshToken(ctx, login.TokenPair.RefreshToken)
		require.NoError(t, err)

		claims, err := s.jwt.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, login.UserID, claims.UserID)
		assert.Equal(t, s.hotelID, *claims.HotelID)
	})

	t.Run("顧客のリフレッシュ", func(t *testing.T) {
		s := newAuthScene(t)
		login, err := s.auth.CustomerLogin(ctx, customerCredentials(t, "jdoe", "password123"))
		require.NoError(t, err)

		pair, err := s.auth.RefreshToken(ctx, login.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("アクセストークンではリフレッシュ不可", func(t *testing.T) {
		s := newAuthScene(t)
		login, err := s.auth.Login(ctx, staffCredentials(t, "staff@example.com", "password123"))
		require.NoError(t, err)

		_, err = s.auth.RefreshToken(ctx, login.TokenPair.AccessToken)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("改ざんされたトークンは不可", func(t *testing.T) {
		s := newAuthScene(t)

		_, err := s.auth.RefreshToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("削除された顧客はUserNotFound", func(t *testing.T) {
		s := newAuthScene(t)
		login, err := s.auth.CustomerLogin(ctx, customerCredentials(t, "jdoe", "password123"))
		require.NoError(t, err)
		delete(s.customers.customers, "jdoe")

		_, err = s.auth.RefreshToken(ctx, login.TokenPair.RefreshToken)
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("無効化されたスタッフはUserInactive", func(t *testing.T) {
		s := newAuthScene(t)
		login, err := s.auth.Login(ctx, staffCredentials(t, "staff@example.com", "password123"))
		require.NoError(t, err)
		s.users.users["staff@example.com"].view.IsActive = false

		_, err = s.auth.RefreshToken(ctx, login.TokenPair.RefreshToken)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
