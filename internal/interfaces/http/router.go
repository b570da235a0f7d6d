package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	blogusecases "novita/internal/application/blog/usecases"
	ticketusecases "novita/internal/application/ticket/usecases"
	userusecases "novita/internal/application/user/usecases"
	domainticket "novita/internal/domain/ticket"
	"novita/internal/infrastructure/auth"
	"novita/internal/infrastructure/config"
	"novita/internal/infrastructure/email"
	"novita/internal/infrastructure/ratelimit"
	"novita/internal/infrastructure/repository"
	"novita/internal/infrastructure/storage"
	bloghandlers "novita/internal/interfaces/http/handlers/blog"
	tickethandlers "novita/internal/interfaces/http/handlers/ticket"
	userhandlers "novita/internal/interfaces/http/handlers/user"
	"novita/internal/interfaces/http/middleware"
	"novita/internal/interfaces/http/routes"
	"novita/internal/shared/logger"
	"novita/internal/shared/services/markdown"
)

var (
	loginLimit   = ratelimit.Limit{RequestsPerMinute: 10, RequestsPerHour: 60}
	commentLimit = ratelimit.Limit{RequestsPerMinute: 20, RequestsPerHour: 200}
)

// NewRouter wires repositories, use cases, handlers and middleware into a
// gin engine. A nil redis client disables rate limiting.
func NewRouter(cfg *config.Config, gdb *gorm.DB, redisClient *redis.Client, log logger.Interface) (*gin.Engine, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := registerValidators(); err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Infrastructure services.
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpireMinutes, cfg.Auth.RefreshExpireDays)
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	markdownService := markdown.NewService()
	notifier := email.NewSMTPEmailService(&cfg.Email)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.Root)
	if err != nil {
		return nil, err
	}

	var loginRateLimit, commentRateLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		loginRateLimit = middleware.RateLimit(limiter, loginLimit, log)
		commentRateLimit = middleware.RateLimit(limiter, commentLimit, log)
	}

	// Repositories.
	userRepo := repository.NewUserRepository(gdb)
	postRepo := repository.NewPostRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	likeRepo := repository.NewLikeRepository(gdb)
	categoryRepo := repository.NewCategoryRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)
	responseRepo := repository.NewResponseRepository(gdb)
	attachmentRepo := repository.NewAttachmentRepository(gdb)

	// User context.
	userHandler := userhandlers.NewUserHandler(
		userusecases.NewRegisterUseCase(userRepo, passwordHasher, log),
		userusecases.NewLoginUseCase(userRepo, passwordHasher, jwtService, log),
		userusecases.NewUpdateProfileUseCase(userRepo, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		jwtService,
	)

	// Blog context.
	postHandler := bloghandlers.NewPostHandler(
		blogusecases.NewCreatePostUseCase(postRepo, categoryRepo, log),
		blogusecases.NewUpdatePostUseCase(postRepo, log),
		blogusecases.NewDeletePostUseCase(postRepo, log),
		blogusecases.NewViewPostUseCase(postRepo, commentRepo, likeRepo, markdownService, log),
		blogusecases.NewToggleLikeUseCase(postRepo, likeRepo, log),
		blogusecases.NewAddCommentUseCase(postRepo, commentRepo, markdownService, log),
		blogusecases.NewListPostsUseCase(postRepo, log),
	)

	// Ticket context.
	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, attachmentRepo, domainticket.NewIDGenerator(), fileStorage, log),
		ticketusecases.NewAddResponseUseCase(ticketRepo, responseRepo, attachmentRepo, userRepo, fileStorage, notifier, log),
		ticketusecases.NewCloseTicketUseCase(ticketRepo, log),
		ticketusecases.NewChangeStatusUseCase(ticketRepo, log),
		ticketusecases.NewAssignTicketUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, responseRepo, attachmentRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewDownloadAttachmentUseCase(ticketRepo, attachmentRepo, fileStorage, log),
	)

	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
		LoginRateLimit: loginRateLimit,
	})
	routes.SetupBlogRoutes(engine, &routes.BlogRouteConfig{
		PostHandler:      postHandler,
		AuthMiddleware:   authMiddleware,
		CommentRateLimit: commentRateLimit,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})

	return engine, nil
}
