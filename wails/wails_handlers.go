package wails

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/carlfranklin/AppStateAuto/api"
	"github.com/carlfranklin/AppStateAuto/logger"
)

type WailsRequestRouterResponse struct {
	Body  interface{} `json:"body"`
	Error string      `json:"error"`
}

// TODO: make this match echo
func (app *WailsApp) WailsRequestRouter(route string, method string, body string) WailsRequestRouterResponse {
	ctx := app.ctx

	clientRegex := regexp.MustCompile(
		`/api/clients/([0-9a-fA-F-]+)`,
	)

	clientMatch := clientRegex.FindStringSubmatch(route)

	switch {
	case len(clientMatch) > 1:
		sessionId := clientMatch[1]

		switch method {
		case "GET":
			client, err := app.api.GetClient(sessionId)
			if err != nil {
				return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
			}
			return WailsRequestRouterResponse{Body: client, Error: ""}
		case "DELETE":
			err := app.api.DeleteClient(sessionId)
			if err != nil {
				return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
			}
			return WailsRequestRouterResponse{Body: nil, Error: ""}
		}
	}

	// list state changes
	if strings.HasPrefix(route, "/api/state/changes") && method == "GET" {
		limit := uint64(0)
		offset := uint64(0)
		filters := api.ListStateChangesFilters{}

		// Extract pagination and filter parameters
		paramRegex := regexp.MustCompile(`[?&](limit|offset|property|sessionId)=([^&]+)`)
		paramMatches := paramRegex.FindAllStringSubmatch(route, -1)
		for _, match := range paramMatches {
			switch match[1] {
			case "limit":
				if parsedLimit, err := strconv.ParseUint(match[2], 10, 64); err == nil {
					limit = parsedLimit
				}
			case "offset":
				if parsedOffset, err := strconv.ParseUint(match[2], 10, 64); err == nil {
					offset = parsedOffset
				}
			case "property":
				filters.Property = match[2]
			case "sessionId":
				filters.SessionId = match[2]
			}
		}

		changes, err := app.api.ListStateChanges(limit, offset, filters)
		if err != nil {
			return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
		}
		return WailsRequestRouterResponse{Body: changes, Error: ""}
	}

	// poll a client's change tracker
	if strings.HasPrefix(route, "/api/state/poll") && method == "GET" {
		sessionIdRegex := regexp.MustCompile(`[?&]sessionId=([^&]+)`)
		sessionIdMatch := sessionIdRegex.FindStringSubmatch(route)
		if len(sessionIdMatch) < 2 {
			return WailsRequestRouterResponse{Body: nil, Error: "Missing sessionId parameter"}
		}

		pollResponse, err := app.api.PollClientState(sessionIdMatch[1])
		if err != nil {
			return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
		}
		return WailsRequestRouterResponse{Body: pollResponse, Error: ""}
	}

	logRegex := regexp.MustCompile(
		`/api/log/([a-z]+)`,
	)
	logMatch := logRegex.FindStringSubmatch(route)

	switch {
	case len(logMatch) > 1 && method == "GET":
		maxLen := 0
		maxLenRegex := regexp.MustCompile(`[?&]maxLen=([0-9]+)`)
		if maxLenMatch := maxLenRegex.FindStringSubmatch(route); len(maxLenMatch) > 1 {
			if parsedMaxLen, err := strconv.Atoi(maxLenMatch[1]); err == nil {
				maxLen = parsedMaxLen
			}
		}

		getLogResponse, err := app.api.GetLogOutput(ctx, logMatch[1], &api.GetLogOutputRequest{MaxLen: maxLen})
		if err != nil {
			return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
		}
		return WailsRequestRouterResponse{Body: getLogResponse, Error: ""}
	}

	path := strings.Split(route, "?")[0]
	switch path {
	case "/api/info":
		infoResponse, err := app.api.GetInfo(ctx)
		if err != nil {
			return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
		}
		// the embedded frontend talks to its own backend, no session token
		infoResponse.Unlocked = true
		res := WailsRequestRouterResponse{Body: *infoResponse, Error: ""}
		return res
	case "/api/state":
		return WailsRequestRouterResponse{Body: app.api.GetState(), Error: ""}
	case "/api/state/message":
		switch method {
		case "PATCH":
			setMessageRequest := &api.SetMessageRequest{}
			err := json.Unmarshal([]byte(body), setMessageRequest)
			if err != nil {
				logger.Logger.Error().Err(err).
					Str("route", route).
					Str("method", method).
					Str("body", body).
					Msg("Failed to decode request to wails router")
				return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
			}
			return WailsRequestRouterResponse{Body: app.api.SetMessage(setMessageRequest), Error: ""}
		}
	case "/api/state/count":
		switch method {
		case "PUT":
			setCountRequest := &api.SetCountRequest{}
			err := json.Unmarshal([]byte(body), setCountRequest)
			if err != nil {
				logger.Logger.Error().Err(err).
					Str("route", route).
					Str("method", method).
					Str("body", body).
					Msg("Failed to decode request to wails router")
				return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
			}
			return WailsRequestRouterResponse{Body: app.api.SetCount(setCountRequest), Error: ""}
		}
	case "/api/state/count/increment":
		return WailsRequestRouterResponse{Body: app.api.IncrementCount(), Error: ""}
	case "/api/state/restore":
		return WailsRequestRouterResponse{Body: app.api.RestoreState(), Error: ""}
	case "/api/state/save":
		saveStateResponse, err := app.api.SaveState()
		if err != nil {
			return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
		}
		return WailsRequestRouterResponse{Body: saveStateResponse, Error: ""}
	case "/api/clients":
		switch method {
		case "GET":
			clients, err := app.api.ListClients()
			if err != nil {
				return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
			}
			return WailsRequestRouterResponse{Body: clients, Error: ""}
		case "POST":
			createClientRequest := &api.CreateClientRequest{}
			err := json.Unmarshal([]byte(body), createClientRequest)
			if err != nil {
				logger.Logger.Error().Err(err).
					Str("route", route).
					Str("method", method).
					Str("body", body).
					Msg("Failed to decode request to wails router")
				return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
			}

			createClientResponse, err := app.api.CreateClient(createClientRequest)
			if err != nil {
				return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
			}
			return WailsRequestRouterResponse{Body: createClientResponse, Error: ""}
		}
	case "/api/event":
		sendEventRequest := &api.SendEventRequest{}
		err := json.Unmarshal([]byte(body), sendEventRequest)
		if err != nil {
			logger.Logger.Error().Err(err).
				Str("route", route).
				Str("method", method).
				Str("body", body).
				Msg("Failed to decode request to wails router")
			return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
		}

		app.api.SendEvent(sendEventRequest.Event, sendEventRequest.Properties)
		return WailsRequestRouterResponse{Body: nil, Error: ""}
	case "/api/health":
		healthResponse, err := app.api.Health(ctx)
		if err != nil {
			return WailsRequestRouterResponse{Body: nil, Error: err.Error()}
		}
		return WailsRequestRouterResponse{Body: *healthResponse, Error: ""}
	}

	logger.Logger.Error().
		Str("route", route).
		Str("method", method).
		Msg("Unhandled route")
	return WailsRequestRouterResponse{Body: nil, Error: fmt.Sprintf("Unhandled route: %s %s", method, route)}
}
