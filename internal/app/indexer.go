package app

import (
	"context"
	"os"
	"time"

	config "github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/infrastructure"
	"github.com/DRSN-tech/visual-search/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/visual-search/internal/infrastructure/minio"
	ml_service "github.com/DRSN-tech/visual-search/internal/infrastructure/ml-service"
	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/repository/artifacts"
	"github.com/DRSN-tech/visual-search/internal/repository/imagecache"
	s3Repo "github.com/DRSN-tech/visual-search/internal/repository/minio"
	"github.com/DRSN-tech/visual-search/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/visual-search/internal/repository/pgdb/converter"
	qdrantRepo "github.com/DRSN-tech/visual-search/internal/repository/qdrant"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/clients"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/DRSN-tech/visual-search/pkg/postgres"
	"github.com/jimlawless/whereami"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// RunIndexer выполняет один прогон индексации каталога и завершает процесс.
// limit ограничивает число записей каталога, 0 — без ограничения.
func RunIndexer(limit int) {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}
	if cfg.Db.User == "" || cfg.Db.DBName == "" {
		logger.Errorf(e.ErrIncorrectEnvVariable, "POSTGRES_USER and POSTGRES_DB are required for the indexer")
		os.Exit(1)
	}

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	defer db.Close()

	catalogRepo := pgdb.NewCatalogRepo(db.Pool, pgdbConv.NewCatalogConverter())
	resolver := imagecache.NewResolver(cfg.Index.ImagesDir, cfg.Index.HTTPTimeout)
	store := artifacts.NewStore(cfg.Index.DataDir, logger)

	conn, err := grpc.NewClient(
		cfg.Ml.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		logger.Errorf(err, "failed to initialize grpc client")
		os.Exit(1)
	}
	defer conn.Close()

	ml := ml_service.NewMLService(
		proto.NewVisionServiceClient(conn),
		cfg.Ml.MaxRetries,
		cfg.Ml.CallTimeout,
		cfg.Index.VectorSize,
		logger,
	)

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	defer shutdownCancel()

	// Зеркало векторов в Qdrant (опционально)
	var mirror usecase.EmbeddingRepository = infrastructure.NewNoopMirror()
	var qdrantClient *clients.QdrantClient
	if cfg.Index.Backend == config.BackendQdrant {
		qdrantClient, err = clients.NewQdrantClient(cfg.Qdrant)
		if err != nil {
			logger.Errorf(err, "failed to initialize qdrant")
			os.Exit(1)
		}

		qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
			qdrantCancel()
			logger.Errorf(err, "failed to initialize qdrant collection")
			os.Exit(1)
		}
		qdrantCancel()

		mirror = qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)
	}

	// Публикация артефактов в MinIO (опционально)
	var artifactsInfra usecase.ArtifactsInfra = infrastructure.NewNoopArtifacts()
	var minioArtifacts *minioInfra.ArtifactsInfrastructure
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

		minioArtifacts = minioInfra.NewArtifactsInfrastructure(
			s3Repo.NewObjectRepo(minioClient, cfg.Minio),
			cfg.Index.DataDir,
			logger,
			shutdownCtx,
		)
		artifactsInfra = minioArtifacts
	}

	// События индексации (опционально)
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
		defer producer.Close()

		events = producer
	}

	buildUC := usecase.NewBuildUC(
		catalogRepo,
		resolver,
		ml,
		store,
		mirror,
		artifactsInfra,
		events,
		logger,
		cfg.Ml.MaxConcurrent,
	)

	res, err := buildUC.BuildIndex(context.Background(), usecase.NewBuildReq(limit))
	if err != nil {
		logger.Errorf(err, "index build failed")
		os.Exit(1)
	}

	logger.Infof(
		"index build finished: total=%d indexed=%d cache_hits=%d downloaded=%d resolve_failed=%d embed_failed=%d",
		res.TotalRows, res.Indexed, res.CacheHits, res.Downloaded, res.ResolveFailed, res.EmbedFailed,
	)

	if minioArtifacts != nil {
		waitCtx, waitCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer waitCancel()
		if err := minioArtifacts.WaitForCleanup(waitCtx); err != nil {
			logger.Warnf("MinIO cleanup error: %v", err)
		}
	}

	if qdrantClient != nil {
		if err := qdrantClient.Client.Close(); err != nil {
			logger.Warnf("Qdrant close error: %v", err)
		}
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
