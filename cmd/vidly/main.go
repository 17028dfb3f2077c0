package main

import (
	customershandler "github.com/LeQuyetTien/vidly/internal/customers/handler"
	customersrepo "github.com/LeQuyetTien/vidly/internal/customers/repository"
	customersservice "github.com/LeQuyetTien/vidly/internal/customers/service"
	genreshandler "github.com/LeQuyetTien/vidly/internal/genres/handler"
	genresrepo "github.com/LeQuyetTien/vidly/internal/genres/repository"
	genresservice "github.com/LeQuyetTien/vidly/internal/genres/service"
	movieshandler "github.com/LeQuyetTien/vidly/internal/movies/handler"
	moviesrepo "github.com/LeQuyetTien/vidly/internal/movies/repository"
	moviesservice "github.com/LeQuyetTien/vidly/internal/movies/service"
	rentalshandler "github.com/LeQuyetTien/vidly/internal/rentals/handler"
	rentalsrepo "github.com/LeQuyetTien/vidly/internal/rentals/repository"
	rentalsservice "github.com/LeQuyetTien/vidly/internal/rentals/service"
	usershandler "github.com/LeQuyetTien/vidly/internal/users/handler"
	usersrepo "github.com/LeQuyetTien/vidly/internal/users/repository"
	usersservice "github.com/LeQuyetTien/vidly/internal/users/service"
	"github.com/LeQuyetTien/vidly/pkg/app"
	"github.com/LeQuyetTien/vidly/pkg/auth"
	"github.com/LeQuyetTien/vidly/pkg/config"
	"github.com/LeQuyetTien/vidly/pkg/events"
	"github.com/LeQuyetTien/vidly/pkg/validation"
)

const ServiceName = "vidly"

func main() {
	cfg := config.Load(ServiceName)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	// Log all configuration values
	cfg.LogConfiguration()

	cfg.Log.Info("Starting Vidly service")
	cfg.SetMongo()

	verifier := auth.NewVerifier(cfg.JWTPrivateKey)
	validator := validation.New()
	publisher := initPublisher(cfg)

	genreRepo := genresrepo.NewMongoGenreRepository(cfg)
	movieRepo := moviesrepo.NewMongoMovieRepository(cfg)
	customerRepo := customersrepo.NewMongoCustomerRepository(cfg)
	rentalRepo := rentalsrepo.NewMongoRentalRepository(cfg)
	userRepo := usersrepo.NewMongoUserRepository(cfg)

	genreService := genresservice.NewGenreService(genreRepo, validator, cfg)
	movieService := moviesservice.NewMovieService(movieRepo, genreRepo, validator, cfg)
	customerService := customersservice.NewCustomerService(customerRepo, validator, cfg)
	rentalService := rentalsservice.NewRentalService(
		rentalRepo,
		customerRepo,
		movieRepo,
		validator,
		publisher,
		cfg,
	)
	userService := usersservice.NewUserService(userRepo, validator, cfg)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, publisher,
		genreshandler.NewGenreHandler(genreService, verifier, cfg.Log),
		movieshandler.NewMovieHandler(movieService, verifier, cfg.Log),
		customershandler.NewCustomerHandler(customerService, verifier, cfg.Log),
		rentalshandler.NewRentalHandler(rentalService, cfg.Log),
		usershandler.NewUserHandler(userService, verifier, cfg.Log),
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured, rental events disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.RentalEventsTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize Kafka publisher", "error", err)
	}

	cfg.Log.Info("Kafka publisher initialized",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.RentalEventsTopic,
	)
	return publisher
}
