package request

import (
	"hotel-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	CategoryID   uuid.UUID `json:"category_id" binding:"required"`
	Number       int32     `json:"number" binding:"required,min=1"`
	Description  string    `json:"description" binding:"required"`
	AreaSqm      float64   `json:"area_sqm" binding:"min=0"`
	OutOfService bool      `json:"out_of_service"`
}

func (r *CreateRoomRequest) ToCommand() commands.CreateRoomRequest {
	return commands.CreateRoomRequest{
		CategoryID:   r.CategoryID,
		Number:       r.Number,
		Description:  r.Description,
		AreaSqm:      r.AreaSqm,
		OutOfService: r.OutOfService,
	}
}

type UpdateRoomRequest struct {
	Description  *string `json:"description" binding:"omitempty,min=1"`
	OutOfService *bool   `json:"out_of_service"`
}

func (r *UpdateRoomRequest) ToCommand() commands.UpdateRoomRequest {
	return commands.UpdateRoomRequest{
		Description:  r.Description,
		OutOfService: r.OutOfService,
	}
}
