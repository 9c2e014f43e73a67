package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-adventure/internal/config"
	"github.com/KirkDiggler/rpg-adventure/internal/engine/encounter"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/quest"
	v1alpha1 "github.com/KirkDiggler/rpg-adventure/internal/handlers/adventure/v1alpha1"
	adventureorch "github.com/KirkDiggler/rpg-adventure/internal/orchestrators/adventure"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/lock"
	"github.com/KirkDiggler/rpg-adventure/internal/redis"
	"github.com/KirkDiggler/rpg-adventure/internal/repositories/player"
	"github.com/KirkDiggler/rpg-adventure/internal/services/adventure"
)

const shutdownTimeout = 30 * time.Second

var configPath string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the adventure gRPC server and the survival ticker.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	serverCmd.Flags().String("log-format", "text", "log format (text, json)")
	serverCmd.Flags().Duration("tick-interval", 5*time.Second, "survival tick interval, 0 disables")
	serverCmd.Flags().String("redis-addr", "", "Redis address for player locks, empty keeps locks in memory")
}

func runServer(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	locker, err := newLocker(ctx, cfg)
	if err != nil {
		return err
	}

	svc, err := newAdventureService(cfg, locker)
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		AdventureService: svc,
	})
	if err != nil {
		return fmt.Errorf("failed to create adventure handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterAdventureServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		runTicker(gctx, svc, cfg.Tick.Interval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()
		gracefulStop(srv)
		return nil
	})

	return g.Wait()
}

func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("using in-memory player locks")
		return lock.NewMemory(), nil
	}

	client, err := redis.Connect(ctx, cfg.Redis.Addr, nil)
	if err != nil {
		return nil, err
	}

	locker, err := lock.NewRedis(&lock.RedisConfig{
		Client: client,
		TTL:    cfg.Lock.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis locker: %w", err)
	}

	slog.Info("using redis player locks", "addr", cfg.Redis.Addr)
	return locker, nil
}

func newAdventureService(cfg *config.Config, locker lock.Locker) (adventure.Service, error) {
	roller := dice.DefaultRoller

	board, err := quest.NewBoard(&quest.BoardConfig{
		Roller:      roller,
		IDGenerator: idgen.NewUUID("quest"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quest board: %w", err)
	}

	var loot []item.Factory
	if cfg.Encounter.Materials {
		loot = item.CraftingLoot()
	}

	generator, err := encounter.New(&encounter.Config{
		Roller:      roller,
		IDGenerator: idgen.NewUUID("npc"),
		Loot:        loot,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create encounter generator: %w", err)
	}

	orch, err := adventureorch.New(&adventureorch.Config{
		PlayerRepo: player.NewInMemory(),
		Locker:     locker,
		Encounters: generator,
		Quests:     board,
		EventBus:   events.NewBus(),
		Clock:      clock.New(),
		MaxWeight:  cfg.Inventory.MaxWeight,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create adventure orchestrator: %w", err)
	}

	return orch, nil
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p any) error {
			slog.Error("recovered from panic", "panic", p)
			return status.Errorf(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}

// runTicker applies survival decay to every character until ctx is done
func runTicker(ctx context.Context, svc adventure.Service, interval time.Duration) {
	if interval <= 0 {
		slog.Info("survival ticker disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			output, err := svc.TickAll(ctx, &adventure.TickAllInput{})
			if err != nil {
				slog.Error("survival tick failed", "error", err)
				continue
			}
			slog.Debug("survival tick", "characters", output.Ticked)
		}
	}
}

func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
