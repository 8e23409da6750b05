package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rooms-api/models"
	"rooms-api/repository"
	"rooms-api/services"
	"rooms-api/utils"
)

const roomNotFound = "Room not found"

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// RoomRequest is the body of POST and PATCH. Every field is optional; the
// values are cast by fields, so "50" is a valid price.
type RoomRequest struct {
	Name     json.RawMessage `json:"name"`
	RoomType json.RawMessage `json:"roomType"`
	Price    json.RawMessage `json:"price"`
}

func (r RoomRequest) fields() (models.RoomFields, error) {
	var f models.RoomFields
	var err error
	if f.Name, err = castString("name", r.Name); err != nil {
		return f, err
	}
	if f.RoomType, err = castReference("roomType", r.RoomType); err != nil {
		return f, err
	}
	if f.Price, err = castNumber("price", r.Price); err != nil {
		return f, err
	}
	return f, nil
}

// writeRoomError maps repository.ErrNotFound to 404 and everything else to 500.
func writeRoomError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.JSONMessage(c, http.StatusNotFound, roomNotFound)
		return
	}
	log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	utils.JSONError(c, http.StatusInternalServerError, err)
}

// ----------------------------------------------------
// POST /api/v1/rooms
// ----------------------------------------------------

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := bindJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	fields, err := req.fields()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}

	room, err := ctl.RoomSvc.Create(c.Request.Context(), fields)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// GET /api/v1/rooms?search=&roomType=&minPrice=&maxPrice=
// ----------------------------------------------------

func queryParam(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}

func (ctl *RoomController) GetRooms(c *gin.Context) {
	q := services.RoomQuery{
		Search:   queryParam(c, "search"),
		RoomType: queryParam(c, "roomType"),
		MinPrice: queryParam(c, "minPrice"),
		MaxPrice: queryParam(c, "maxPrice"),
	}

	rooms, err := ctl.RoomSvc.List(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// GET /api/v1/rooms/:roomId
// ----------------------------------------------------

func (ctl *RoomController) GetRoomByID(c *gin.Context) {
	room, err := ctl.RoomSvc.Get(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// PATCH /api/v1/rooms/:roomId
// ----------------------------------------------------

func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	var req RoomRequest
	if err := bindJSON(c, &req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	fields, err := req.fields()
	if err != nil {
		writeRoomError(c, err)
		return
	}

	room, err := ctl.RoomSvc.Update(c.Request.Context(), c.Param("roomId"), fields)
	if err != nil {
		writeRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// DELETE /api/v1/rooms/:roomId
// ----------------------------------------------------

func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("roomId")
	if err := ctl.RoomSvc.Delete(c.Request.Context(), id); err != nil {
		writeRoomError(c, err)
		return
	}

	log.Printf("✅ Room ID %s deleted.", id)
	utils.JSONMessage(c, http.StatusOK, "Room deleted successfully")
}
