package http

import (
	"context"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type RegisterUserHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterUserCommand) (kernel.UUID, error)
}

type LoginUserHandler interface {
	Handle(ctx context.Context, cmd commands.LoginUserCommand) (commands.LoginUserResult, error)
}

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

type RegisterDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterDeliveryCommand) error
}

type MarkNotificationReadHandler interface {
	Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
}

type ListMyNotificationsHandler interface {
	Handle(ctx context.Context, query queries.ListMyNotificationsQuery) ([]queries.NotificationView, error)
}

// RealtimeHub upgrades an authenticated request to a websocket.
type RealtimeHub interface {
	Serve(w http.ResponseWriter, r *http.Request, userID string) error
}

type Handlers struct {
	RegisterUser         RegisterUserHandler
	LoginUser            LoginUserHandler
	CreateOrder          CreateOrderHandler
	RegisterDelivery     RegisterDeliveryHandler
	MarkNotificationRead MarkNotificationReadHandler
	ListOrders           ListOrdersHandler
	ListMyNotifications  ListMyNotificationsHandler
}

type Server struct {
	handlers Handlers
	hub      RealtimeHub
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, hub RealtimeHub) *Server {
	return &Server{handlers: handlers, hub: hub}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type MeResponse struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type CreateOrderRequest struct {
	OrderNumber   string          `json:"orderNumber"`
	Description   string          `json:"description"`
	Value         decimal.Decimal `json:"value"`
	PostalCode    string          `json:"postalCode"`
	AddressNumber string          `json:"addressNumber"`
}

type RegisterDeliveryRequest struct {
	OrderNumber string     `json:"orderNumber"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

type Order struct {
	OrderNumber string    `json:"orderNumber"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	PostalCode  string    `json:"postalCode"`
	Street      string    `json:"street"`
	Number      string    `json:"number"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	userID, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{UserID: userID.String()})
}

func (s *Server) LoginUser(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginUserCommand(req.Email, req.Password)
	if err != nil {
		return err
	}

	result, err := s.handlers.LoginUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		UserID: result.UserID.String(),
		Name:   result.Name,
		Email:  result.Email,
		Token:  result.Token,
	})
}

func (s *Server) Me(ctx echo.Context) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return errMissingToken
	}

	return ctx.JSON(http.StatusOK, MeResponse{Sub: p.Subject, Email: p.Email, Name: p.Name})
}

func (s *Server) ListOrders(ctx echo.Context) error {
	views, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = Order{
			OrderNumber: v.OrderNumber,
			Description: v.Description,
			Value:       v.Value.InexactFloat64(),
			PostalCode:  v.PostalCode,
			Street:      v.Street,
			Number:      v.Number,
			District:    v.District,
			City:        v.City,
			State:       v.State,
			Status:      v.Status,
			CreatedAt:   v.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.OrderNumber, req.Description, req.Value, req.PostalCode, req.AddressNumber, actor)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, OkResponse{Ok: true})
}

func (s *Server) RegisterDelivery(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	var req RegisterDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	var deliveredAt time.Time
	if req.DeliveredAt != nil {
		deliveredAt = *req.DeliveredAt
	}

	cmd, err := commands.NewRegisterDeliveryCommand(req.OrderNumber, deliveredAt, actor)
	if err != nil {
		return err
	}

	if err = s.handlers.RegisterDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, OkResponse{Ok: true})
}

func (s *Server) ListMyNotifications(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyNotificationsQuery(actor)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListMyNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Notification, len(views))
	for i, v := range views {
		response[i] = Notification{
			ID:        v.ID,
			Message:   v.Message,
			IsRead:    v.IsRead,
			CreatedAt: v.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) MarkNotificationRead(ctx echo.Context, id string) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id, actor)
	if err != nil {
		return err
	}

	if err = s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, OkResponse{Ok: true})
}

// ConnectNotificationsHub hands the connection to the hub. A failed upgrade has
// already been answered by the upgrader.
func (s *Server) ConnectNotificationsHub(ctx echo.Context) error {
	p, ok := principalFrom(ctx)
	if !ok {
		return errMissingToken
	}

	if err := s.hub.Serve(ctx.Response(), ctx.Request(), p.Subject); err != nil {
		ctx.Logger().Debug(err)
	}
	return nil
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
