package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation of openapi.json.
type ServerInterface interface {
	// (POST /auth/register)
	RegisterUser(ctx echo.Context) error
	// (POST /auth/login)
	LoginUser(ctx echo.Context) error
	// (GET /auth/me)
	Me(ctx echo.Context) error
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (POST /deliveries)
	RegisterDelivery(ctx echo.Context) error
	// (GET /notifications/me)
	ListMyNotifications(ctx echo.Context) error
	// (PUT /notifications/{id}/read)
	MarkNotificationRead(ctx echo.Context, id string) error
	// (GET /hubs/notifications)
	ConnectNotificationsHub(ctx echo.Context) error
	// (GET /health)
	Health(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) MarkNotificationRead(ctx echo.Context) error {
	var id string

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid format for parameter id: "+err.Error())
	}

	return w.Handler.MarkNotificationRead(ctx, id)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route. bearer guards the authenticated operations and
// hubAuth guards the websocket endpoint.
func RegisterHandlers(router EchoRouter, si ServerInterface, bearer, hubAuth echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/auth/register", si.RegisterUser)
	router.POST("/auth/login", si.LoginUser)
	router.GET("/auth/me", si.Me, bearer)
	router.GET("/orders", si.ListOrders, bearer)
	router.POST("/orders", si.CreateOrder, bearer)
	router.POST("/deliveries", si.RegisterDelivery, bearer)
	router.GET("/notifications/me", si.ListMyNotifications, bearer)
	router.PUT("/notifications/:id/read", wrapper.MarkNotificationRead, bearer)
	router.GET("/hubs/notifications", si.ConnectNotificationsHub, hubAuth)
	router.GET("/health", si.Health)
}
