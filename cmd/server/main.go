package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"meatshop/internal/admin"
	"meatshop/internal/category"
	"meatshop/internal/config"
	"meatshop/internal/infrastructure/auditlog"
	"meatshop/internal/infrastructure/logger"
	"meatshop/internal/infrastructure/mysql"
	"meatshop/internal/infrastructure/redis"
	"meatshop/internal/order"
	"meatshop/internal/product"
	"meatshop/internal/server"
	"meatshop/internal/serviceability"
	"meatshop/internal/stats"
	"meatshop/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx := context.Background()

	db, err := mysql.NewConnection(ctx, cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	if err := mysql.Migrate(ctx, db); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}
	zapLogger.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))

	var cache *goredis.Client
	if cfg.Redis.Enabled {
		cache, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			zapLogger.Warn("redis unavailable, product cache disabled", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
			zapLogger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		}
	}

	checker := serviceability.NewChecker(cfg.Order.ServiceablePincodes)
	orderLog := auditlog.NewOrderLog(cfg.Order.AuditLogPath)

	categorySvc, categoryCtrl := category.NewModule(db, zapLogger)
	if err := categorySvc.SeedDefaults(ctx); err != nil {
		zapLogger.Warn("seeding default categories failed", zap.Error(err))
	}

	router := server.NewRouter(server.Controllers{
		Serviceability: serviceability.NewController(checker, zapLogger),
		Admin:          admin.NewController(admin.NewStaticPINVerifier(cfg.Admin.PIN), zapLogger),
		Products:       product.NewModule(db, cache, cfg.Redis.TTL, zapLogger),
		Categories:     categoryCtrl,
		Orders:         order.NewModule(db, checker, orderLog, cfg.Order, zapLogger),
		Stats:          stats.NewModule(db, zapLogger),
		Upload:         upload.NewController(cfg.Upload.MaxBytes, zapLogger),
	}, cfg.Server.CORSOrigins, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
		return
	}

	zapLogger.Info("server stopped gracefully")
}
