package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"b2b-showcase-backend/internal/config"
	infraCache "b2b-showcase-backend/internal/infrastructure/cache"
	"b2b-showcase-backend/internal/infrastructure/firebase"
	"b2b-showcase-backend/internal/infrastructure/storage"
	"b2b-showcase-backend/pkg/cache"
	"b2b-showcase-backend/pkg/events"

	catalogHandler "b2b-showcase-backend/internal/domains/catalog/handler"
	catalogRepo "b2b-showcase-backend/internal/domains/catalog/repository"
	catalogService "b2b-showcase-backend/internal/domains/catalog/service"

	"github.com/hibiken/asynq"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Struct này là "root" của dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared singletons, 1 instance trong app lifetime.

	Config      *config.Config
	Firebase    *firebase.Clients
	Cache       cache.Cache       // Redis cache (interface)
	Storage     storage.ImageHost // MinIO image hosting
	Bus         *events.Bus       // in-process notification bus
	AsynqClient *asynq.Client     // background task enqueue

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	CatalogStore catalogRepo.RemoteStore  // Firestore documents
	CatalogCache catalogRepo.CatalogCache // local mirror on Redis

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	CatalogService catalogService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	CatalogHandler *catalogHandler.CatalogHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph.
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (Firebase, Redis, MinIO, Bus, Asynq)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE FIREBASE
	// ========================================
	// Firestore là system of record cho catalog documents;
	// Auth verify ID tokens cho admin routes.
	log.Println("🔥 Connecting to Firebase...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fb, err := firebase.NewClients(ctx, cfg.Firebase)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase: %w", err)
	}
	c.Firebase = fb
	log.Println("✅ Firebase connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure không critical - catalog vẫn chạy được với
	// remote store + seed fallback.
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	st, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio: %w", err)
	}
	c.Storage = st
	log.Println("✅ MinIO connected")

	// ========================================
	// STEP 5: NOTIFICATION BUS + TASK QUEUE
	// ========================================
	c.Bus = events.NewBus()
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// ========================================
	// STEP 6: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	log.Println("📦 Initializing catalog domain...")

	c.CatalogStore = catalogRepo.NewFirestoreStore(fb.Firestore)
	c.CatalogCache = catalogRepo.NewCatalogCache(c.Cache)

	c.CatalogService = catalogService.NewService(
		c.CatalogStore,
		c.CatalogCache,
		c.Bus,
		c.AsynqClient,
	)

	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService, c.Storage)

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// STARTUP STATE
// ========================================

// LoadCatalog populates the in-memory catalog state. Products never
// fail to load (fallback chain ends at seed data); a category load
// failure is logged and the list stays empty until the next refresh.
func (c *Container) LoadCatalog(ctx context.Context) {
	c.CatalogService.LoadInitial(ctx)

	if err := c.CatalogService.LoadCategories(ctx); err != nil {
		log.Printf("⚠️  Category load failed: %v", err)
	}
}

// ========================================
// CLEANUP
// ========================================

// Cleanup đóng tất cả connections. Gọi khi shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Asynq close error: %v", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Redis close error: %v", err)
		}
	}

	if c.Firebase != nil {
		c.Firebase.Close()
	}

	log.Println("✅ Cleanup completed")
}
