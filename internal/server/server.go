package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardboard/internal/config"
	"cardboard/internal/handler"
	"cardboard/internal/middleware"
	"cardboard/internal/repository"
	"cardboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := runMigrations(db, cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	log.Println("✅ Migrations applied")

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Initialize services
	columnService := service.NewColumnService(columnRepo, cardRepo, userRepo)
	cardService := service.NewCardService(columnRepo, cardRepo, userRepo)
	commentService := service.NewCommentService(cardRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo)
	columnHandler := handler.NewColumnHandler(columnService)
	cardHandler := handler.NewCardHandler(cardService, commentService)

	// Public routes
	r.POST("/api/users/register", userHandler.Register)
	r.POST("/api/users/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/api")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		authorized.GET("/users/me", userHandler.Me)

		// Column routes
		authorized.GET("/columns", columnHandler.List)
		authorized.POST("/columns", columnHandler.Create)
		authorized.PATCH("/columns/:id", columnHandler.Rename)
		authorized.PATCH("/columns/:id/move", columnHandler.Move)
		authorized.DELETE("/columns/:id", columnHandler.Delete)

		// Card routes
		authorized.GET("/cards/:id", cardHandler.GetByID)
		authorized.POST("/cards", cardHandler.Create)
		authorized.PATCH("/cards/:id", cardHandler.Update)
		authorized.PATCH("/cards/:id/move", cardHandler.Move)
		authorized.DELETE("/cards/:id", cardHandler.Delete)

		// Comment routes
		authorized.POST("/cards/:id/comments", cardHandler.AddComment)
		authorized.PATCH("/cards/:id/comments/:comment_id", cardHandler.UpdateComment)
		authorized.DELETE("/cards/:id/comments/:comment_id", cardHandler.DeleteComment)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func runMigrations(db *gorm.DB, migrationsPath string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
