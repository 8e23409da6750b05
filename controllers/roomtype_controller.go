package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"rooms-api/services"
	"rooms-api/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

type CreateRoomTypeRequest struct {
	Name json.RawMessage `json:"name"`
}

// POST /api/v1/rooms-types
func (ctl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := bindJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	name, err := castString("name", req.Name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}

	rt, err := ctl.RoomTypeSvc.Create(c.Request.Context(), name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// GET /api/v1/rooms-types
func (ctl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctl.RoomTypeSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, types)
}
