package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	config "github.com/DRSN-tech/visual-search/internal/cfg"
	v1Grpc "github.com/DRSN-tech/visual-search/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/visual-search/internal/delivery/v1/http"
	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/infrastructure"
	"github.com/DRSN-tech/visual-search/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/visual-search/internal/infrastructure/minio"
	ml_service "github.com/DRSN-tech/visual-search/internal/infrastructure/ml-service"
	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/repository/artifacts"
	"github.com/DRSN-tech/visual-search/internal/repository/flatindex"
	s3Repo "github.com/DRSN-tech/visual-search/internal/repository/minio"
	qdrantRepo "github.com/DRSN-tech/visual-search/internal/repository/qdrant"
	"github.com/DRSN-tech/visual-search/internal/repository/redis"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/clients"
	"github.com/DRSN-tech/visual-search/pkg/closer"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Run поднимает поисковый сервис: загружает артефакты индекса,
// подключает внешние зависимости и запускает HTTP- и gRPC-серверы.
func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	appCloser := closer.NewCloser(10 * time.Second)

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	defer shutdownCancel()

	// Объектное хранилище артефактов (опционально)
	var artifactsInfra usecase.ArtifactsInfra = infrastructure.NewNoopArtifacts()
	if cfg.Minio.Enabled {
		minioClient, err := clients.NewMinIOClient(cfg)
		if err != nil {
			logger.Errorf(err, "failed to initialize minio client")
			os.Exit(1)
		}

		minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
			minioCancel()
			logger.Errorf(err, "failed to initialize MinIO bucket")
			os.Exit(1)
		}
		minioCancel()

		objectRepo := s3Repo.NewObjectRepo(minioClient, cfg.Minio)
		artifactsInfra = minioInfra.NewArtifactsInfrastructure(objectRepo, cfg.Index.DataDir, logger, shutdownCtx)
	}

	// Если локальных артефактов нет, пробуем подтянуть их из хранилища
	if _, err := os.Stat(filepath.Join(cfg.Index.DataDir, artifacts.VectorsFile)); os.IsNotExist(err) {
		fetchCtx, fetchCancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := artifactsInfra.Fetch(fetchCtx); err != nil {
			logger.Warnf("failed to fetch artifacts: %v", err)
		}
		fetchCancel()
	}

	store := artifacts.NewStore(cfg.Index.DataDir, logger)
	records, err := store.Load(context.Background())
	if err != nil {
		logger.Errorf(err, "failed to load index artifacts")
		os.Exit(1)
	}
	if len(records) == 0 {
		logger.Warnf("similarity index is empty, match requests will be rejected until the indexer runs")
	}

	index, err := buildSearchIndex(logger, cfg, records, appCloser)
	if err != nil {
		logger.Errorf(err, "failed to build search index")
		os.Exit(1)
	}
	logger.Infof("search index ready: backend=%s, records=%d", cfg.Index.Backend, len(records))

	// Кэш ответов (опционально)
	var cacheRepo usecase.CacheRepository = infrastructure.NewNoopCache()
	if cfg.Redis.Enabled {
		redisClient := clients.NewRedisClient(cfg.Redis)
		redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(redisCtx); err != nil {
			redisCancel()
			logger.Errorf(err, "failed to connect to redis")
			os.Exit(1)
		}
		redisCancel()

		cacheRepo = redis.NewCacheRepo(redisClient, cfg.Redis, logger)
		appCloser.Add(func(ctx context.Context) error {
			return redisClient.Client.Close()
		})
	}

	// События поиска (опционально)
	var events usecase.EventsInfra = infrastructure.NewNoopEvents()
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(logger, cfg.Kafka)
		if err != nil {
			logger.Errorf(err, "failed to initialize kafka producer")
			os.Exit(1)
		}
		if err := producer.EnsureTopic(10 * time.Second); err != nil {
			logger.Errorf(err, "failed to ensure kafka topic")
			os.Exit(1)
		}

		events = producer
		appCloser.Add(func(ctx context.Context) error {
			return producer.Close()
		})
	}

	// gRPC-клиент ML-сервиса
	conn, err := grpc.NewClient(
		cfg.Ml.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()), // соединение внутри кластера, без TLS
	)
	if err != nil {
		logger.Errorf(err, "failed to initialize grpc client")
		os.Exit(1)
	}
	appCloser.Add(func(ctx context.Context) error {
		return conn.Close()
	})

	mlClient := proto.NewVisionServiceClient(conn)
	ml := ml_service.NewMLService(mlClient, cfg.Ml.MaxRetries, cfg.Ml.CallTimeout, cfg.Index.VectorSize, logger)

	var detector usecase.DetectorInfra = ml_service.NewNoopDetector()
	if cfg.Ml.DetectorEnabled {
		detector = ml_service.NewDetector(mlClient, cfg.Ml.CallTimeout)
	}

	matchUC := usecase.NewMatchUC(
		index,
		records,
		ml,
		detector,
		cacheRepo,
		events,
		logger,
		cfg.Index.ScratchDir,
		cfg.Index.TopK,
	)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc)
	grpcSrv.RegisterServices(matchUC, logger)

	grpcErrCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC server starting on %s:%s", cfg.Grpc.NetworkMode, cfg.Grpc.Port)
		if err := grpcSrv.Start(); err != nil {
			logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(matchUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := httpSrv.Stop(stopCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := grpcSrv.Stop(stopCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			logger.Errorf(err, "gRPC server shutdown error")
		} else {
			logger.Warnf("gRPC server shutdown timeout")
		}
	} else {
		logger.Infof("gRPC server stopped")
	}

	shutdownCancel()

	if err := appCloser.Close(stopCtx); err != nil {
		logger.Warnf("failed to close dependencies: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

// buildSearchIndex выбирает бэкенд поиска. Плоский in-memory индекс
// строится из загруженных записей; Qdrant используется как внешняя
// альтернатива с тем же контрактом.
func buildSearchIndex(logger logger.Logger, cfg *config.Config, records []domain.IndexRecord, appCloser *closer.Closer) (usecase.SimilarityRepository, error) {
	if cfg.Index.Backend == config.BackendQdrant {
		qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
		if err != nil {
			return nil, err
		}

		qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer qdrantCancel()
		if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
			return nil, err
		}

		appCloser.Add(func(ctx context.Context) error {
			return qdrantClient.Client.Close()
		})

		return qdrantRepo.NewSearchRepo(qdrantClient.Client, cfg.Qdrant, len(records)), nil
	}

	index, err := flatindex.NewFromRecords(cfg.Index.VectorSize, records)
	if err != nil {
		return nil, err
	}

	return index, nil
}
