package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MajjK/ToDoAppReact/internal/auth"
	"github.com/MajjK/ToDoAppReact/internal/config"
	"github.com/MajjK/ToDoAppReact/internal/database"
	"github.com/MajjK/ToDoAppReact/internal/domain"
	"github.com/MajjK/ToDoAppReact/internal/handler"
	"github.com/MajjK/ToDoAppReact/internal/logger"
	"github.com/MajjK/ToDoAppReact/internal/repository"
	"github.com/MajjK/ToDoAppReact/internal/service"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
	DS   *repository.Datastore
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	userRepo, taskRepo, err := a.initStorage(ctx)
	if err != nil {
		return err
	}

	policy := auth.NewPolicy()
	taskSvc := service.NewTaskService(taskRepo, policy)
	userSvc := service.NewUserService(userRepo)

	taskHandler := handler.NewTaskHandler(taskSvc)
	userHandler := handler.NewUserHandler(userSvc)
	exportHandler := handler.NewExportHandler(taskSvc)

	a.RegisterMiddlewares()
	a.RegisterRoutes(taskHandler, userHandler, exportHandler)

	return nil
}

func (a *App) initStorage(ctx context.Context) (domain.UserRepository, domain.TaskRepository, error) {
	switch config.DefaultEnvConfig.STORAGE_BACKEND {
	case "postgres":
		dbConfig := database.Config{
			Host:            config.DefaultEnvConfig.DB_HOST,
			Port:            config.DefaultEnvConfig.DB_PORT,
			User:            config.DefaultEnvConfig.DB_USER,
			Password:        config.DefaultEnvConfig.DB_PASSWORD,
			DBName:          config.DefaultEnvConfig.DB_NAME,
			SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
			MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
			MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
			ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
		}
		db, err := database.NewPostgresDB(ctx, dbConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = db
		return repository.NewPostgresUserRepository(db), repository.NewPostgresTaskRepository(db), nil

	case "datastore":
		ds, err := repository.NewDatastore(ctx, config.DefaultEnvConfig.GCP_PROJECT_ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize datastore: %w", err)
		}
		a.DS = ds
		return ds.Users(), ds.Tasks(), nil

	default:
		logger.WarnLog(ctx, "Using in-memory storage, data will not survive restarts")
		mem := repository.NewMemory()
		return mem.Users(), mem.Tasks(), nil
	}
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(taskHandler *handler.TaskHandler, userHandler *handler.UserHandler, exportHandler *handler.ExportHandler) {
	jwt := auth.JWTMiddleware(config.DefaultEnvConfig.JWT_SECRET)

	tasks := a.Echo.Group("/tasks", jwt)
	tasks.GET("", taskHandler.ListHandler)
	tasks.POST("", taskHandler.CreateHandler)
	tasks.GET("/:id", taskHandler.GetHandler)
	tasks.PUT("/:id", taskHandler.UpdateHandler)
	tasks.DELETE("/:id", taskHandler.DeleteHandler)

	users := a.Echo.Group("/users", jwt)
	users.GET("", userHandler.ListHandler)
	users.POST("", userHandler.CreateHandler)
	users.GET("/:id", userHandler.GetHandler)
	users.PUT("/:id", userHandler.UpdateHandler)
	users.DELETE("/:id", userHandler.DeleteHandler)

	exportGroup := a.Echo.Group("/export", jwt)
	exportGroup.GET("/tasks", exportHandler.ExportTasksHandler)
}

func (a *App) Run() error {
	if a.DB != nil {
		defer a.DB.Close()
	}
	if a.DS != nil {
		defer a.DS.Close()
	}
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
