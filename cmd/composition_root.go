package cmd

import (
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/auth"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/realtime"
	"logistics/internal/adapters/out/viacep"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	hub      *realtime.Hub
	tokens   *auth.TokenService
	hasher   ports.PasswordHasher
	resolver ports.AddressResolver
}

// Option replaces a collaborator, for tests that must not reach the network.
type Option func(*CompositionRoot)

func WithAddressResolver(resolver ports.AddressResolver) Option {
	return func(c *CompositionRoot) {
		c.resolver = resolver
	}
}

func WithPasswordHasher(hasher ports.PasswordHasher) Option {
	return func(c *CompositionRoot) {
		c.hasher = hasher
	}
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger, opts ...Option) (CompositionRoot, error) {
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Issuer:   config.JWTIssuer,
		Audience: config.JWTAudience,
		Secret:   config.JWTSecret,
		TTL:      config.JWTExpiration,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	c := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		hub:        realtime.NewHub(logger, realtime.WithAllowedOrigin(config.CORSAllowedOrigin)),
		tokens:     tokens,
		hasher:     auth.NewBcryptHasher(bcrypt.DefaultCost),
		resolver:   viacep.NewClient(config.PostalCodeBaseURL, config.PostalCodeTimeout, logger),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c, nil
}

func (c *CompositionRoot) Hub() *realtime.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() *commands.RegisterUserCommandHandler {
	h := commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
	return &h
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() *commands.LoginUserCommandHandler {
	h := commands.NewLoginUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
	return &h
}

func (c *CompositionRoot) CreateCreateNotificationCommandHandler() *commands.CreateNotificationCommandHandler {
	h := commands.NewCreateNotificationCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() *commands.MarkNotificationReadCommandHandler {
	h := commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.resolver, c.CreateCreateNotificationCommandHandler(), c.hub)
	return &h
}

func (c *CompositionRoot) CreateRegisterDeliveryCommandHandler() *commands.RegisterDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRegisterDeliveryCommandHandler(f, c.CreateCreateNotificationCommandHandler(), c.hub)
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyNotificationsQueryHandler() queries.ListMyNotificationsQueryHandler {
	return queries.NewListMyNotificationsQueryHandler(c.gormDB)
}

// CreateRouter wires every handler into the echo instance.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		RegisterUser:         c.CreateRegisterUserCommandHandler(),
		LoginUser:            c.CreateLoginUserCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		RegisterDelivery:     c.CreateRegisterDeliveryCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		ListMyNotifications:  c.CreateListMyNotificationsQueryHandler(),
	}, c.hub)

	return httpadapter.NewRouter(
		httpadapter.RouterConfig{AllowedOrigin: c.config.CORSAllowedOrigin},
		server,
		c.tokens,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.hub, c.config.HubPingSchedule, c.logger)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
