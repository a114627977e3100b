//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/ptr"
	"hotel-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	newRequest := func(categoryID uuid.UUID) commands.CreateRoomRequest {
		return commands.CreateRoomRequest{
			CategoryID:  categoryID,
			Number:      101,
			Description: "Sea view",
			AreaSqm:     24.5,
		}
	}

	t.Run("部屋を作成", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")
		categoryID := f.addCategory(h.ID)

		id, err := f.rooms.CreateRoom(ctx, h.ID, newRequest(categoryID), staffActor(h.ID))
		require.NoError(t, err)

		got := f.uow.snapshot().rooms[id]
		assert.Equal(t, h.ID, got.HotelID)
		assert.Equal(t, categoryID, got.CategoryID)
		assert.Equal(t, int32(101), got.Number)
		assert.Equal(t, "Sea view", got.Description)
		assert.False(t, got.OutOfService)
	})

	t.Run("同じ番号は別ホテルなら作成できる", func(t *testing.T) {
		f := newFixture(t)
		grand := f.addHotel("Grand Hotel", "sk_test_grand")
		plaza := f.addHotel("Plaza Hotel", "sk_test_plaza")
		f.addRoom(grand.ID, 101, false)

		_, err := f.rooms.CreateRoom(ctx, plaza.ID, newRequest(f.addCategory(plaza.ID)), adminActor())
		require.NoError(t, err)
	})

	t.Run("作成時の検証", func(t *testing.T) {
		t.Run("番号重複はRoomNumberTaken", func(t *testing.T) {
			f := newFixture(t)
			h := f.addHotel("Grand Hotel", "sk_test_grand")
			f.addRoom(h.ID, 101, false)

			_, err := f.rooms.CreateRoom(ctx, h.ID, newRequest(f.addCategory(h.ID)), adminActor())
			assert.ErrorIs(t, err, commands.ErrRoomNumberTaken)
		})

		t.Run("他ホテルのカテゴリはCategoryNotFound", func(t *testing.T) {
			f := newFixture(t)
			h := f.addHotel("Grand Hotel", "sk_test_grand")
			other := f.addHotel("Plaza Hotel", "sk_test_plaza")

			_, err := f.rooms.CreateRoom(ctx, h.ID, newRequest(f.addCategory(other.ID)), adminActor())
			assert.ErrorIs(t, err, commands.ErrCategoryNotFound)
		})

		t.Run("存在しないカテゴリはCategoryNotFound", func(t *testing.T) {
			f := newFixture(t)
			h := f.addHotel("Grand Hotel", "sk_test_grand")

			_, err := f.rooms.CreateRoom(ctx, h.ID, newRequest(uuid.New()), adminActor())
			assert.ErrorIs(t, err, commands.ErrCategoryNotFound)
		})

		t.Run("存在しないホテルはHotelNotFound", func(t *testing.T) {
			f := newFixture(t)

			_, err := f.rooms.CreateRoom(ctx, uuid.New(), newRequest(uuid.New()), adminActor())
			assert.ErrorIs(t, err, commands.ErrHotelNotFound)
		})

		t.Run("番号0はInvalidRoom", func(t *testing.T) {
			f := newFixture(t)
			h := f.addHotel("Grand Hotel", "sk_test_grand")
			req := newRequest(f.addCategory(h.ID))
			req.Number = 0

			_, err := f.rooms.CreateRoom(ctx, h.ID, req, adminActor())
			assert.ErrorIs(t, err, commands.ErrInvalidRoom)
		})

		t.Run("他ホテルのスタッフはAccessDenied", func(t *testing.T) {
			f := newFixture(t)
			h := f.addHotel("Grand Hotel", "sk_test_grand")

			_, err := f.rooms.CreateRoom(ctx, h.ID, newRequest(f.addCategory(h.ID)), staffActor(uuid.New()))
			assert.ErrorIs(t, err, commands.ErrAccessDenied)
			assert.Empty(t, f.uow.snapshot().rooms)
		})
	})
}

func TestUpdateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("指定した項目だけ更新", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")
		rm := f.addRoom(h.ID, 101, false)

		err := f.rooms.UpdateRoom(ctx, rm.ID, commands.UpdateRoomRequest{OutOfService: ptr.To(true)}, staffActor(h.ID))
		require.NoError(t, err)

		got := f.uow.snapshot().rooms[rm.ID]
		assert.True(t, got.OutOfService)
		assert.Equal(t, rm.Description, got.Description)
		assert.Equal(t, rm.Number, got.Number)
	})

	t.Run("説明を更新", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")
		rm := f.addRoom(h.ID, 101, true)

		err := f.rooms.UpdateRoom(ctx, rm.ID, commands.UpdateRoomRequest{Description: ptr.To("Garden view")}, adminActor())
		require.NoError(t, err)

		got := f.uow.snapshot().rooms[rm.ID]
		assert.Equal(t, "Garden view", got.Description)
		assert.True(t, got.OutOfService)
	})

	t.Run("空の説明はInvalidRoom", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")
		rm := f.addRoom(h.ID, 101, false)

		err := f.rooms.UpdateRoom(ctx, rm.ID, commands.UpdateRoomRequest{Description: ptr.To("  ")}, adminActor())
		assert.ErrorIs(t, err, commands.ErrInvalidRoom)
	})

	t.Run("存在しない部屋はRoomNotFound", func(t *testing.T) {
		f := newFixture(t)

		err := f.rooms.UpdateRoom(ctx, uuid.New(), commands.UpdateRoomRequest{}, adminActor())
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("他ホテルのスタッフはAccessDenied", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")
		rm := f.addRoom(h.ID, 101, false)

		err := f.rooms.UpdateRoom(ctx, rm.ID, commands.UpdateRoomRequest{OutOfService: ptr.To(true)}, staffActor(uuid.New()))
		assert.ErrorIs(t, err, commands.ErrAccessDenied)
		assert.False(t, f.uow.snapshot().rooms[rm.ID].OutOfService)
	})
}

func TestDeleteRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("部屋を削除", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")
		rm := f.addRoom(h.ID, 101, false)

		require.NoError(t, f.rooms.DeleteRoom(ctx, rm.ID, adminActor()))
		assert.NotContains(t, f.uow.snapshot().rooms, rm.ID)
	})

	t.Run("予約がある部屋はDeleteError", func(t *testing.T) {
		f := newFixture(t)
		h := f.addHotel("Grand Hotel", "sk_test_grand")
		rm := f.addRoom(h.ID, 101, false)
		c := f.addCustomer("jdoe", "X1234567")
		f.addReservation(h.ID, rm.ID, c.ID, "2025-06-10", "2025-06-13")

		err := f.rooms.DeleteRoom(ctx, rm.ID, adminActor())
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDeleteFailed)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
		assert.Contains(t, f.uow.snapshot().rooms, rm.ID)
	})

	t.Run("存在しない部屋はRoomNotFound", func(t *testing.T) {
		f := newFixture(t)

		err := f.rooms.DeleteRoom(ctx, uuid.New(), adminActor())
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
		assert.NotErrorIs(t, err, commands.ErrDeleteFailed)
	})
}
