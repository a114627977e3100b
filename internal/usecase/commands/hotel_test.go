//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-backend/internal/pkg/ptr"
	"hotel-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("ホテルとカテゴリを登録", func(t *testing.T) {
		f := newFixture(t)

		hotelID, err := f.admin.CreateHotel(ctx, "Grand Hotel", "sk_test_grand")
		require.NoError(t, err)
		categoryID, err := f.admin.CreateCategory(ctx, hotelID, "Double", 12000, "Two beds")
		require.NoError(t, err)

		state := f.uow.snapshot()
		assert.Equal(t, "sk_test_grand", state.hotels[hotelID].ProviderKey)
		assert.Equal(t, hotelID, state.categories[categoryID].HotelID)
	})

	t.Run("同名ホテルはHotelAlreadyExists", func(t *testing.T) {
		f := newFixture(t)
		f.addHotel("Grand Hotel", "sk_test_grand")

		_, err := f.admin.CreateHotel(ctx, "Grand Hotel", "sk_test_other")
		assert.ErrorIs(t, err, commands.ErrHotelAlreadyExists)
	})

	t.Run("プロバイダキーがないホテルはInvalidHotel", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.admin.CreateHotel(ctx, "Grand Hotel", "")
		assert.ErrorIs(t, err, commands.ErrInvalidHotel)
	})

	t.Run("存在しないホテルのカテゴリはHotelNotFound", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.admin.CreateCategory(ctx, uuid.New(), "Double", 12000, "Two beds")
		assert.ErrorIs(t, err, commands.ErrHotelNotFound)
	})

	t.Run("スタッフ登録", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")

		id, err := f.admin.RegisterStaff(ctx, commands.RegisterStaffRequest{
			Email:    "Staff@Example.com",
			Password: "password123",
			Role:     "staff",
			HotelID:  ptr.To(h.ID),
		})
		require.NoError(t, err)

		u := f.uow.snapshot().users[id]
		require.NotNil(t, u)
		assert.Equal(t, "staff@example.com", u.Email().Value())
		assert.NotEqual(t, "password123", u.PasswordHash())
	})

	t.Run("スタッフ登録の検証", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(f *fixture, req *commands.RegisterStaffRequest)
			errIs  error
		}{
			{
				name:   "ホテルなしのスタッフはInvalidUser",
				mutate: func(f *fixture, req *commands.RegisterStaffRequest) { req.HotelID = nil },
				errIs:  commands.ErrInvalidUser,
			},
			{
				name:   "短いパスワードはInvalidUser",
				mutate: func(f *fixture, req *commands.RegisterStaffRequest) { req.Password = "short" },
				errIs:  commands.ErrInvalidUser,
			},
			{
				name:   "不明なロールはInvalidUser",
				mutate: func(f *fixture, req *commands.RegisterStaffRequest) { req.Role = "owner" },
				errIs:  commands.ErrInvalidUser,
			},
			{
				name:   "存在しないホテルはHotelNotFound",
				mutate: func(f *fixture, req *commands.RegisterStaffRequest) { req.HotelID = ptr.To(uuid.New()) },
				errIs:  commands.ErrHotelNotFound,
			},
			{
				name: "メール重複はUserAlreadyExists",
				mutate: func(f *fixture, req *commands.RegisterStaffRequest) {
					_, err := f.admin.RegisterStaff(context.Background(), *req)
					if err != nil {
						panic(err)
					}
				},
				errIs: commands.ErrUserAlreadyExists,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				h := f.addHotel("Grand Hotel", "sk_test_grand")
				req := commands.RegisterStaffRequest{
					Email:    "staff@example.com",
					Password: "password123",
					Role:     "staff",
					HotelID:  ptr.To(h.ID),
				}
				tc.mutate(f, &req)

				_, err := f.admin.RegisterStaff(ctx, req)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
