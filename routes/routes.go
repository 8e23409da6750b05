package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rooms-api/controllers"
	"rooms-api/middleware"
)

// corsPolicy allows every origin when none are listed (or "*" is), and
// only then leaves credentials off.
func corsPolicy(origins []string) cors.Config {
	policy := cors.DefaultConfig()
	policy.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	policy.AddAllowHeaders("Accept")

	for _, origin := range origins {
		if origin == "*" {
			origins = nil
			break
		}
	}
	if len(origins) == 0 {
		policy.AllowAllOrigins = true
		return policy
	}
	policy.AllowOrigins = origins
	policy.AllowCredentials = true
	return policy
}

// SetupRouter builds the engine with the room type and room routes.
func SetupRouter(corsOrigins []string, rtc *controllers.RoomTypeController, rc *controllers.RoomController) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery(), cors.New(corsPolicy(corsOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		roomTypes := v1.Group("/rooms-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", rtc.CreateRoomType)
		}

		rooms := v1.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/:roomId", rc.GetRoomByID)
			rooms.PATCH("/:roomId", rc.UpdateRoom)
			rooms.DELETE("/:roomId", rc.DeleteRoom)
		}
	}

	return r
}
