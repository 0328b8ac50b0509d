package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/carlfranklin/AppStateAuto/api"
	"github.com/carlfranklin/AppStateAuto/config"
	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/logger"
	"github.com/carlfranklin/AppStateAuto/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type jwtCustomClaims struct {
	// we can add extra claims here
	// Name  string `json:"name"`
	// Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

type HttpService struct {
	api            api.API
	cfg            config.Config
	eventPublisher events.EventPublisher
	db             *gorm.DB
	svc            service.Service
}

func NewHttpService(svc service.Service, eventPublisher events.EventPublisher) *HttpService {
	return &HttpService{
		api:            api.NewAPI(svc, svc.GetDB(), svc.GetConfig(), eventPublisher),
		cfg:            svc.GetConfig(),
		eventPublisher: eventPublisher,
		db:             svc.GetDB(),
		svc:            svc,
	}
}

func (httpSvc *HttpService) RegisterSharedRoutes(e *echo.Echo) {
	e.HideBanner = true

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; connect-src 'self' ws://wails.localhost:*; img-src 'self' data:; frame-src 'none'; object-src 'none'; base-uri 'self';",
		ReferrerPolicy:        "no-referrer",
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogHost:      true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			logger.HttpLogger.Info().
				Str("uri", values.URI).
				Int("status", values.Status).
				Str("remote_ip", values.RemoteIP).
				Str("user_agent", values.UserAgent).
				Str("host", values.Host).
				Str("request_id", values.RequestID).
				Msg("handled API request")
			return nil
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/api/info", httpSvc.infoHandler)
	e.GET("/api/state", httpSvc.getStateHandler)

	// allow one client registration per second
	registerRateLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(1))
	e.POST("/api/clients", httpSvc.createClientHandler, registerRateLimiter)
	e.GET("/logout", httpSvc.logoutHandler, registerRateLimiter)

	// restricted routes
	// Configure middleware with the custom claims type
	jwtConfig := echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtCustomClaims)
		},
		KeyFunc: func(token *jwt.Token) (interface{}, error) {
			return []byte(httpSvc.svc.GetJWTSecret()), nil
		},
		// the query token allows EventSource connections which cannot set headers
		TokenLookup: "header:Authorization:Bearer ,query:token",
	}

	restrictedApiGroup := e.Group("/api")
	restrictedApiGroup.Use(echojwt.WithConfig(jwtConfig))

	restrictedApiGroup.PATCH("/state/message", httpSvc.setMessageHandler)
	restrictedApiGroup.PUT("/state/count", httpSvc.setCountHandler)
	restrictedApiGroup.POST("/state/count/increment", httpSvc.incrementCountHandler)
	restrictedApiGroup.POST("/state/restore", httpSvc.restoreStateHandler)
	restrictedApiGroup.POST("/state/save", httpSvc.saveStateHandler)
	restrictedApiGroup.GET("/state/poll", httpSvc.pollStateHandler)
	restrictedApiGroup.GET("/state/changes", httpSvc.listStateChangesHandler)

	restrictedApiGroup.GET("/clients", httpSvc.clientsListHandler)
	restrictedApiGroup.GET("/clients/:sessionId", httpSvc.clientsShowHandler)
	restrictedApiGroup.DELETE("/clients/:sessionId", httpSvc.clientsDeleteHandler)

	restrictedApiGroup.POST("/event", httpSvc.eventHandler)
	restrictedApiGroup.GET("/health", httpSvc.healthHandler)
	restrictedApiGroup.GET("/log/:type", httpSvc.getLogOutputHandler)

	// SSE endpoint for state events - requires auth to subscribe
	restrictedApiGroup.GET("/state/events", httpSvc.stateEventsSSEHandler)
}

func (httpSvc *HttpService) infoHandler(c echo.Context) error {
	// Check if the caller holds a valid session token
	unlocked := false
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString := parts[1]
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(httpSvc.svc.GetJWTSecret()), nil
			})
			if err == nil && token != nil && token.Valid {
				unlocked = true
			}
		}
	}

	responseBody, err := httpSvc.api.GetInfo(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
		})
	}

	if !unlocked {
		responseBody.WorkDir = "" // Don't expose workdir if not unlocked
	}
	responseBody.Unlocked = unlocked

	return c.JSON(http.StatusOK, responseBody)
}

func (httpSvc *HttpService) getStateHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, httpSvc.api.GetState())
}

func (httpSvc *HttpService) setMessageHandler(c echo.Context) error {
	var setMessageRequest api.SetMessageRequest
	if err := c.Bind(&setMessageRequest); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}

	return c.JSON(http.StatusOK, httpSvc.api.SetMessage(&setMessageRequest))
}

func (httpSvc *HttpService) setCountHandler(c echo.Context) error {
	var setCountRequest api.SetCountRequest
	if err := c.Bind(&setCountRequest); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}

	return c.JSON(http.StatusOK, httpSvc.api.SetCount(&setCountRequest))
}

func (httpSvc *HttpService) incrementCountHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, httpSvc.api.IncrementCount())
}

func (httpSvc *HttpService) restoreStateHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, httpSvc.api.RestoreState())
}

func (httpSvc *HttpService) saveStateHandler(c echo.Context) error {
	saveStateResponse, err := httpSvc.api.SaveState()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to save state: %s", err.Error()),
		})
	}

	return c.JSON(http.StatusOK, saveStateResponse)
}

func (httpSvc *HttpService) pollStateHandler(c echo.Context) error {
	token := c.Get("user").(*jwt.Token)
	claims := token.Claims.(*jwtCustomClaims)

	pollResponse, err := httpSvc.api.PollClientState(claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Message: "Client not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, pollResponse)
}

func (httpSvc *HttpService) listStateChangesHandler(c echo.Context) error {
	limit := uint64(20)
	offset := uint64(0)

	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if parsedLimit, err := strconv.ParseUint(limitParam, 10, 64); err == nil {
			limit = parsedLimit
		}
	}

	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if parsedOffset, err := strconv.ParseUint(offsetParam, 10, 64); err == nil {
			offset = parsedOffset
		}
	}

	filters := api.ListStateChangesFilters{
		Property:  c.QueryParam("property"),
		SessionId: c.QueryParam("sessionId"),
	}

	changes, err := httpSvc.api.ListStateChanges(limit, offset, filters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, changes)
}

func (httpSvc *HttpService) createClientHandler(c echo.Context) error {
	var createClientRequest api.CreateClientRequest
	if err := c.Bind(&createClientRequest); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}

	if createClientRequest.Name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Name field is required",
		})
	}

	createClientResponse, err := httpSvc.api.CreateClient(&createClientRequest)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to create client: %s", err.Error()),
		})
	}

	token, err := httpSvc.createJWT(createClientResponse.SessionId)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to save session: %s", err.Error()),
		})
	}
	createClientResponse.Token = token

	return c.JSON(http.StatusOK, createClientResponse)
}

func (httpSvc *HttpService) clientsListHandler(c echo.Context) error {
	clients, err := httpSvc.api.ListClients()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, clients)
}

func (httpSvc *HttpService) clientsShowHandler(c echo.Context) error {
	client, err := httpSvc.api.GetClient(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Message: "Client not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, client)
}

func (httpSvc *HttpService) clientsDeleteHandler(c echo.Context) error {
	err := httpSvc.api.DeleteClient(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Message: "Client not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

func (httpSvc *HttpService) eventHandler(c echo.Context) error {
	var sendEventRequest api.SendEventRequest
	if err := c.Bind(&sendEventRequest); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}

	httpSvc.api.SendEvent(sendEventRequest.Event, sendEventRequest.Properties)

	return c.NoContent(http.StatusOK)
}

func (httpSvc *HttpService) healthHandler(c echo.Context) error {
	healthResponse, err := httpSvc.api.Health(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to check health: %v", err),
		})
	}

	return c.JSON(http.StatusOK, healthResponse)
}

func (httpSvc *HttpService) getLogOutputHandler(c echo.Context) error {
	var getLogRequest api.GetLogOutputRequest
	if err := c.Bind(&getLogRequest); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Bad request: %s", err.Error()),
		})
	}

	logType := c.Param("type")
	if logType != api.LogTypeApp {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("Invalid log type parameter: '%s'", logType),
		})
	}

	getLogResponse, err := httpSvc.api.GetLogOutput(c.Request().Context(), logType, &getLogRequest)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to get log output: %v", err),
		})
	}

	return c.JSON(http.StatusOK, getLogResponse)
}

func (httpSvc *HttpService) logoutHandler(c echo.Context) error {
	redirectUrl := httpSvc.cfg.GetBaseFrontendUrl()
	if redirectUrl == "" {
		redirectUrl = "/"
	}

	return c.Redirect(http.StatusFound, redirectUrl)
}

func (httpSvc *HttpService) createJWT(sessionId string) (string, error) {
	// Set custom claims
	claims := &jwtCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionId,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(constants.SESSION_TOKEN_TTL)),
		},
	}

	// Create token with claims
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if token == nil {
		return "", errors.New("failed to create token")
	}

	signed, err := token.SignedString([]byte(httpSvc.svc.GetJWTSecret()))
	if err != nil {
		return "", err
	}
	return signed, nil
}
