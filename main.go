package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rooms-api/config"
	"rooms-api/controllers"
	"rooms-api/routes"
	"rooms-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ ERROR: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// A single attempt; the service never serves without a database.
	db, err := config.ConnectDatabase(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Database connection error: %v", err)
	}
	log.Printf("✅ Connected to %s", db.Backend)

	roomTypeController := controllers.NewRoomTypeController(services.NewRoomTypeService(db.RoomTypes))
	roomController := controllers.NewRoomController(services.NewRoomService(db.Rooms))

	router := routes.SetupRouter(cfg.CORSOrigins, roomTypeController, roomController)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}
	if err := db.Close(ctx); err != nil {
		log.Printf("⚠️  closing database: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
