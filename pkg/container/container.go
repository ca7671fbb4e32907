package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookshelf-api/internal/config"
	infraCache "bookshelf-api/internal/infrastructure/cache"
	"bookshelf-api/internal/infrastructure/database"
	"bookshelf-api/internal/seed"
	"bookshelf-api/pkg/cache"
	"bookshelf-api/pkg/jwt"

	authorHandler "bookshelf-api/internal/domains/author/handler"
	authorRepo "bookshelf-api/internal/domains/author/repository"
	authorService "bookshelf-api/internal/domains/author/service"
	bookHandler "bookshelf-api/internal/domains/book/handler"
	bookRepo "bookshelf-api/internal/domains/book/repository"
	bookService "bookshelf-api/internal/domains/book/service"
	userHandler "bookshelf-api/internal/domains/user/handler"
	userRepo "bookshelf-api/internal/domains/user/repository"
	userService "bookshelf-api/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the composition root: every dependency of the API is built
// here, once, in dependency order.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB // nil with the memory driver
	Cache      cache.Cache          // cache.Noop when Redis is disabled or down
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo   userRepo.RepositoryInterface
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService   userService.ServiceInterface
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	UserHandler   *userHandler.UserHandler
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph from cfg. Order matters:
// infrastructure, repositories, services, handlers, then sample data.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: STORAGE
	// ========================================
	if cfg.Storage.Driver == config.StoragePostgres {
		if err := c.initDatabase(ctx); err != nil {
			return nil, err
		}
	} else {
		log.Println("🗄️  Using in-memory storage")
	}

	// ========================================
	// STEP 2: CACHE
	// ========================================
	c.initCache(ctx)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// ========================================
	// STEP 3: REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	// ========================================
	// STEP 6: SAMPLE DATA
	// ========================================
	if cfg.Seed.SampleData {
		log.Println("🌱 Seeding sample data...")
		if err := seed.NewSeeder(c.UserService, c.AuthorService, c.BookService).Run(ctx); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initDatabase(ctx context.Context) error {
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	if c.Config.Storage.Migrate {
		migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := database.Migrate(migrateCtx, dbConfig); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Println("✅ Schema up to date")
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")
	return nil
}

// initCache never fails: without Redis the repositories read through a
// cache that stores nothing.
func (c *Container) initCache(ctx context.Context) {
	c.Cache = cache.Noop{}
	if !c.Config.Redis.Enabled {
		return
	}

	log.Println("🔴 Connecting to Redis...")
	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB, "bookshelf:")
	if err := rc.Connect(ctx); err != nil {
		// Redis failure không critical - log warning và continue
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		_ = rc.Close()
		return
	}

	c.Cache = rc
	log.Println("✅ Redis connected")
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
		c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	} else {
		c.UserRepo = userRepo.NewMemoryRepository()
		c.AuthorRepo = authorRepo.NewMemoryRepository()
		c.BookRepo = bookRepo.NewMemoryRepository()
	}

	if _, ok := c.Cache.(*infraCache.RedisCache); ok {
		ttl := c.Config.Redis.TTL
		c.AuthorRepo = authorRepo.NewCachedRepository(c.AuthorRepo, c.Cache, ttl)
		c.BookRepo = bookRepo.NewCachedRepository(c.BookRepo, c.Cache, ttl)
	}
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.Config.Auth.BcryptCost)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(
		c.BookRepo,
		c.AuthorService, // resolves book authors
		c.UserService,   // audit actor
	)
}

func (c *Container) initHandlers() {
	emptyNotFound := c.Config.API.SearchEmptyNotFound
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.JWTManager, emptyNotFound)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, emptyNotFound)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, emptyNotFound)
}

// ========================================
// HEALTH / CLEANUP
// ========================================

// Health reports the status of each backing component.
func (c *Container) Health(ctx context.Context) map[string]string {
	status := map[string]string{"storage": c.Config.Storage.Driver}

	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			status["database"] = "down: " + err.Error()
		} else {
			status["database"] = "up"
		}
	}

	if _, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := c.Cache.Ping(ctx); err != nil {
			status["cache"] = "down: " + err.Error()
		} else {
			status["cache"] = "up"
		}
	} else {
		status["cache"] = "disabled"
	}

	return status
}

// Cleanup releases connections. It is called on graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("⚠️  Failed to close database: %v", err)
		} else {
			log.Println("✅ Database connections closed")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
