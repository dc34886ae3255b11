package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/drivergigspro/demandmap/internal/db"
	"github.com/drivergigspro/demandmap/internal/factories"
	"github.com/drivergigspro/demandmap/internal/geocode"
	"github.com/drivergigspro/demandmap/internal/models"
	"github.com/drivergigspro/demandmap/internal/repositories"
	"github.com/drivergigspro/demandmap/internal/repositories/memory"
	pgrepos "github.com/drivergigspro/demandmap/internal/repositories/postgres"
	redisrepos "github.com/drivergigspro/demandmap/internal/repositories/redis"
	"github.com/drivergigspro/demandmap/internal/server"
	"github.com/drivergigspro/demandmap/internal/server/handlers"
	"github.com/drivergigspro/demandmap/internal/simulator"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "demandmap",
	Short: "Simulates and serves rideshare demand heat maps",
	Long:  `demandmap generates a synthetic rideshare demand snapshot around the driver's position, renders it as a heat map, and serves it over a REST API alongside business-entity, notes, and driver-resource endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		geocoder := geocode.NewClient(geocode.NewHTTPClient(cfg.GeocoderBaseURL))
		sim := simulator.NewFromConfig(cfg, geocoder)
		defer sim.Close()

		ctx := context.Background()

		if cfg.Ticks > 0 {
			if err := sim.RunBatch(ctx, cfg.Ticks); err != nil {
				log.Fatalf("Batch simulation failed: %v", err)
			}
			return
		}

		var kv db.RedisClient
		if cfg.RedisAddr != "" {
			redisClient, err := db.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
			if err != nil {
				log.Fatalf("Failed to connect to Redis: %v", err)
			}
			defer redisClient.Close()
			kv = redisClient
		} else {
			log.Println("No Redis address configured, using in-memory store")
			kv = db.NewMemoryClient()
		}

		var entityRepo repositories.EntityRepository
		var documentRepo repositories.DocumentRepository
		if cfg.PostgresDSN != "" {
			pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
			if err != nil {
				log.Fatalf("Failed to connect to Postgres: %v", err)
			}
			defer pool.Close()
			entityRepo = pgrepos.NewEntityRepository(pool)
			documentRepo = pgrepos.NewDocumentRepository(pool)
		} else {
			log.Println("No Postgres DSN configured, using in-memory repositories")
			entityRepo = memory.NewEntityRepository()
			documentRepo = memory.NewDocumentRepository()
		}

		if cfg.SeedEntities > 0 {
			seedEntities(ctx, entityRepo, documentRepo, cfg.SeedEntities)
		}

		demandCache := redisrepos.NewDemandCache(kv)
		notesRepo := redisrepos.NewNotesRepository(kv)

		demandHandler := handlers.NewDemandHandler(sim, demandCache, geocoder, cfg.CacheTTL)
		entityHandler := handlers.NewEntityHandler(entityRepo, documentRepo)
		notesHandler := handlers.NewNotesHandler(notesRepo)
		resourceHandler := handlers.NewResourceHandler()

		muxRouter := mux.NewRouter()
		router := server.NewRouter(demandHandler, entityHandler, notesHandler, resourceHandler, muxRouter)
		httpServer := server.NewDemandMapHttpServer(router, muxRouter, cfg.HTTPAddr)

		simCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go sim.Run(simCtx)

		if err := httpServer.Start(ctx); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

func seedEntities(ctx context.Context, entityRepo repositories.EntityRepository, documentRepo repositories.DocumentRepository, count int) {
	existing, err := entityRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting entities, skipping seed: %v", err)
		return
	}
	if existing > 0 {
		return
	}

	factory := &factories.EntityFactory{}
	entities := factory.CreateBusinessEntities(count)
	if err := entityRepo.BulkCreate(ctx, entities); err != nil {
		log.Printf("Error seeding entities: %v", err)
		return
	}
	for _, entity := range entities {
		doc := factory.CreateDocument(entity.ID)
		if _, err := documentRepo.Create(ctx, doc); err != nil {
			log.Printf("Error seeding document for entity %d: %v", entity.ID, err)
		}
	}
	log.Printf("Seeded %d business entities", count)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.demandmap.yaml)")

	rootCmd.Flags().String("http-addr", ":8080", "HTTP listen address")
	rootCmd.Flags().Float64("device-latitude", 0, "Device latitude (omit for fallback origin)")
	rootCmd.Flags().Float64("device-longitude", 0, "Device longitude (omit for fallback origin)")
	rootCmd.Flags().String("refresh-interval", "30s", "Interval between automatic demand refreshes")
	rootCmd.Flags().String("manual-refresh-delay", "1s", "Delay applied to manual refresh requests")
	rootCmd.Flags().String("cache-ttl", "5m", "Demand snapshot cache lifetime")
	rootCmd.Flags().Int("ticks", 0, "Run N perturbation ticks and exit (batch mode)")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-path", "", "Output directory for file-based event sinks")
	rootCmd.Flags().String("output-format", "", "Event sink format: json, csv, parquet, postgres")
	rootCmd.Flags().String("redis-addr", "", "Redis address (omit for in-memory store)")
	rootCmd.Flags().String("postgres-dsn", "", "Postgres DSN (omit for in-memory repositories)")
	rootCmd.Flags().Int("seed-entities", 0, "Seed N fake business entities on startup")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".demandmap")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
