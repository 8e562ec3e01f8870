package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/frogblogs/internal/common"
	"github.com/sushihentaime/frogblogs/internal/mailservice"
	"github.com/sushihentaime/frogblogs/internal/ownershipservice"
	"github.com/sushihentaime/frogblogs/internal/rosterservice"
	"github.com/sushihentaime/frogblogs/migrations"
)

type application struct {
	config           *Config
	logger           *slog.Logger
	rosterService    *rosterservice.RosterService
	ownershipService *ownershipservice.OwnershipService
	mailService      *mailservice.MailService
	producer         common.MessageProducer
	cache            *common.Cache
}

func main() {
	configPath := flag.String("config", ".env", "path to the dotenv configuration file")
	flag.Parse()

	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database and bring both schemas up to date
	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns, cfg.DB.MaxIdleTime)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	err = common.Migrate(migrations.FS, common.DSN(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name))
	if err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the message broker
	broker, err := common.NewMessageBroker(cfg.RabbitMQ.URI())
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	// Setup the exchange, queue, and binding key
	err = common.SetupCommentExchange(broker)
	if err != nil {
		logger.Error("failed to setup the comment exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:           cfg,
		logger:           logger,
		rosterService:    rosterservice.NewRosterService(db),
		ownershipService: ownershipservice.NewOwnershipService(db),
		mailService:      mailservice.NewMailService(broker, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.Recipient, cfg.Mail.Port, logger),
		producer:         broker,
		cache:            common.NewCache(3*time.Minute, 5*time.Minute),
	}

	// Start the notification consumer when someone is listening
	if cfg.Mail.Recipient != "" {
		app.mailService.SendCommentNotifications()
	}

	err = app.serve()
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
