package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Leganyst/time-manager/internal/api/grpcapi"
	"github.com/Leganyst/time-manager/internal/api/httpapi"
	"github.com/Leganyst/time-manager/internal/config"
	"github.com/Leganyst/time-manager/internal/db"
	"github.com/Leganyst/time-manager/internal/logger"
	"github.com/Leganyst/time-manager/internal/metrics"
	"github.com/Leganyst/time-manager/internal/model"
	"github.com/Leganyst/time-manager/internal/repository"
	"github.com/Leganyst/time-manager/internal/seed"
	"github.com/Leganyst/time-manager/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("time-manager terminated with error")
		os.Exit(1)
	}
}

func run() error {
	// 1. Environment: .env first, then typed config.
	envLoaded, err := config.LoadDotEnv(os.Getenv("ENV_FILE"))
	if err != nil {
		return err
	}
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}
	logger.Setup(appCfg.Environment, appCfg.LogLevel)
	if !envLoaded {
		log.Debug().Msg("No .env file found")
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return fmt.Errorf("load db config: %w", err)
	}

	// 2. Database.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("sql DB: %w", err)
	}
	defer sqlDB.Close()

	if appCfg.AutoMigrate {
		if err := model.AutoMigrate(gormDB); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	if appCfg.SeedFile != "" {
		f, err := seed.LoadFile(appCfg.SeedFile)
		if err != nil {
			return err
		}
		if _, err := seed.Apply(ctx, gormDB, f); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	// 3. Repositories, metrics and the hours service.
	contactCenterRepo := repository.NewGormContactCenterRepository(gormDB)
	timeScheduleRepo := repository.NewGormTimeScheduleRepository(gormDB)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	hoursSvc := service.NewHoursService(contactCenterRepo, timeScheduleRepo, service.SystemClock{}, recorder)

	// 4. Transports.
	httpServer := &http.Server{
		Addr: appCfg.HTTPAddr,
		Handler: httpapi.NewRouter(hoursSvc, httpapi.Options{
			AllowedOrigins: appCfg.CORSOrigins,
			Gatherer:       registry,
			Ping:           sqlDB.PingContext,
		}),
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcapi.LoggingInterceptor))
	grpcapi.RegisterHoursServer(grpcServer, grpcapi.NewServer(hoursSvc))
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(grpcapi.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	g, ctx := errgroup.WithContext(ctx)

	if appCfg.HTTPAddr != "" {
		g.Go(func() error {
			log.Info().Str("addr", appCfg.HTTPAddr).Msg("HTTP server listening")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http serve: %w", err)
			}
			return nil
		})
	}

	if appCfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", appCfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("listen %s: %w", appCfg.GRPCAddr, err)
		}
		g.Go(func() error {
			log.Info().Str("addr", appCfg.GRPCAddr).Msg("gRPC server listening")
			if err := grpcServer.Serve(lis); err != nil {
				return fmt.Errorf("grpc serve: %w", err)
			}
			return nil
		})
	}

	// 5. Graceful shutdown on signal or on the first transport failure.
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		healthSrv.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appCfg.ShutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
