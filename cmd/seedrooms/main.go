package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	roomsService "github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

// Стартовый каталог комнат коворкинга
var seedRooms = []models.CreateRoomRequest{
	{Code: "P01", RoomType: "PRIVATE", Capacity: 1},
	{Code: "P02", RoomType: "PRIVATE", Capacity: 1},
	{Code: "P03", RoomType: "PRIVATE", Capacity: 1},
	{Code: "P04", RoomType: "PRIVATE", Capacity: 1},
	{Code: "P05", RoomType: "PRIVATE", Capacity: 1},
	{Code: "P06", RoomType: "PRIVATE", Capacity: 1},
	{Code: "P07", RoomType: "PRIVATE", Capacity: 1},
	{Code: "P08", RoomType: "PRIVATE", Capacity: 1},
	{Code: "C01", RoomType: "CONFERENCE", Capacity: 8},
	{Code: "C02", RoomType: "CONFERENCE", Capacity: 8},
	{Code: "C03", RoomType: "CONFERENCE", Capacity: 8},
	{Code: "C04", RoomType: "CONFERENCE", Capacity: 8},
	{Code: "S01", RoomType: "SHARED", Capacity: 4},
	{Code: "S02", RoomType: "SHARED", Capacity: 4},
	{Code: "S03", RoomType: "SHARED", Capacity: 4},
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	roomSvc := roomsService.NewService(roomRepo.NewRepository(db), log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, skipped := 0, 0
	for _, room := range seedRooms {
		if _, err := roomSvc.Create(ctx, &room); err != nil {
			// Повторный запуск не считается ошибкой, существующие комнаты пропускаются
			if errors.Is(err, roomsService.ErrRoomAlreadyExists) {
				log.Info("Room %s already exists, skipping", room.Code)
				skipped++
				continue
			}
			log.Fatal("Failed to create room %s: %v", room.Code, err)
		}
		log.Info("Created room %s (%s, capacity %d)", room.Code, room.RoomType, room.Capacity)
		created++
	}

	log.Info("Room catalog seeded: %d created, %d skipped", created, skipped)
}
