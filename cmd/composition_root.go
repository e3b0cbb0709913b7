package cmd

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "ordertaking/internal/adapters/in/http"
	"ordertaking/internal/adapters/out/addresscheck"
	"ordertaking/internal/adapters/out/catalog"
	"ordertaking/internal/adapters/out/kafka"
	"ordertaking/internal/adapters/out/letter"
	"ordertaking/internal/adapters/out/postgres"
	"ordertaking/internal/adapters/out/postgres/placedorderrepo"
	"ordertaking/internal/adapters/out/postgres/productrepo"
	redisstore "ordertaking/internal/adapters/out/redis"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/jobs"
)

// ErrKafkaBrokersAreRequired is returned when KAFKA_HOST lists no broker.
var ErrKafkaBrokersAreRequired = errors.New("kafka brokers are required")

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	catalog         *catalog.Catalog
	ackSender       *kafka.AcknowledgmentSender
	eventPublisher  *kafka.EventPublisher
	redisClient     *redis.Client
	metricsRegistry *prometheus.Registry
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	kafkaClient := kafka.NewClient(config.KafkaHost)
	if !kafkaClient.Enabled() {
		return nil, ErrKafkaBrokersAreRequired
	}

	var redisClient *redis.Client
	if config.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ackWriter := kafkaClient.NewWriter(config.KafkaAcknowledgmentsTopic)
	eventWriter := kafkaClient.NewWriter(config.KafkaOrderEventsTopic)

	return &CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		logger:          logger,
		uowFactory:      postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:         catalog.New(productrepo.NewGormProductRepository(gormDB), logger),
		ackSender:       kafka.NewAcknowledgmentSender(ackWriter, logger),
		eventPublisher:  kafka.NewEventPublisher(eventWriter),
		redisClient:     redisClient,
		metricsRegistry: registry,
	}, nil
}

// Catalog is shared by the workflow and the refresh job.
func (c *CompositionRoot) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreatePlaceOrderWorkflow() (services.PlaceOrderWorkflow, error) {
	addressClient := addresscheck.NewClient(
		c.config.AddressServiceURL, c.config.AddressServiceTimeout, http.DefaultClient)
	renderer := letter.NewRenderer()

	return services.NewPlaceOrderWorkflow(
		c.catalog.CheckProductCodeExists,
		addressClient.CheckAddressExists,
		c.catalog.GetProductPrice,
		renderer.CreateOrderAcknowledgmentLetter,
		c.ackSender.SendOrderAcknowledgment,
	)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (commands.PlaceOrderCommandHandler, error) {
	workflow, err := c.CreatePlaceOrderWorkflow()
	if err != nil {
		return commands.PlaceOrderCommandHandler{}, err
	}

	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	placedOrders := placedorderrepo.NewGormPlacedOrderRepository(c.gormDB)
	return commands.NewPlaceOrderCommandHandler(workflow, c.catalog, placedOrders, f), nil
}

func (c *CompositionRoot) CreatePublishOrderEventsCommandHandler() commands.PublishOrderEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOrderEventsCommandHandler(f, c.eventPublisher)
}

func (c *CompositionRoot) CreateGetPlacedOrderQueryHandler() queries.GetPlacedOrderQueryHandler {
	return queries.NewGetPlacedOrderQueryHandler(c.gormDB)
}

// CreateIdempotencyStore returns nil when REDIS_ADDR is empty, which turns replay off.
func (c *CompositionRoot) CreateIdempotencyStore() ports.IdempotencyStore {
	if c.redisClient == nil {
		return nil
	}
	return redisstore.NewIdempotencyStore(c.redisClient, c.config.IdempotencyTTL)
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	placeOrder, err := c.CreatePlaceOrderCommandHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		placeOrder,
		c.CreateGetPlacedOrderQueryHandler(),
		c.CreateIdempotencyStore(),
		httpin.NewMetrics(c.metricsRegistry),
		c.logger,
	), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	outboxJob := jobs.NewOutboxPublisherJob(
		c.CreatePublishOrderEventsCommandHandler(),
		c.config.OutboxSchedule,
		c.config.OutboxBatchSize,
		c.logger,
	)
	catalogJob := jobs.NewCatalogRefreshJob(c.catalog, c.config.CatalogRefreshSchedule, c.logger)
	return jobs.NewJobManager(outboxJob, catalogJob)
}

// Close releases the Kafka writers and the Redis client.
func (c *CompositionRoot) Close() error {
	errList := []error{c.ackSender.Close(), c.eventPublisher.Close()}
	if c.redisClient != nil {
		errList = append(errList, c.redisClient.Close())
	}
	return errors.Join(errList...)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
