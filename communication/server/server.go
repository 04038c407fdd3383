package server

import (
	"errors"

	"tictacchess/communication"
	"tictacchess/game"
	"tictacchess/gamemaster"
	"tictacchess/searcher"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

type Server struct {
	app     *fiber.App
	manager *gamemaster.Manager
}

// New wires the REST routes and the websocket relay for every session of manager.
func New(manager *gamemaster.Manager) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "tictacchess",
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		manager: manager,
	}

	s.app.Use(func(c *fiber.Ctx) error {
		log.Debug().Msgf("%s %s", c.Method(), c.Path())
		return c.Next()
	})

	api := s.app.Group("/api/game")
	api.Post("/", s.createGame)
	api.Get("/:id", s.getGame)
	api.Get("/:id/moves", s.legalMoves)
	api.Post("/:id/validate", s.validateMove)
	api.Post("/:id/move", s.playMove)
	api.Post("/:id/ai", s.aiMove)
	api.Post("/:id/reset", s.resetGame)
	api.Delete("/:id", s.deleteGame)

	s.app.Use("/ws", requireUpgrade)
	s.app.Get("/ws/game/:id", websocket.New(s.relay, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return s
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	log.Info().Msgf("listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// errorHandler maps domain errors to status codes and answers with an ErrorResponse.
func errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Msgf("%s %s", c.Method(), c.Path())
	}
	return c.Status(code).JSON(communication.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, gamemaster.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, gamemaster.ErrGameOver),
		errors.Is(err, gamemaster.ErrNotYourTurn),
		errors.Is(err, gamemaster.ErrSearchInFlight),
		errors.Is(err, gamemaster.ErrStaleSearch),
		errors.Is(err, searcher.ErrNoLegalMoves):
		return fiber.StatusConflict
	case errors.Is(err, gamemaster.ErrIllegalMove),
		errors.Is(err, communication.ErrMalformedMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, gamemaster.ErrUnknownMode):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func wireMoves(moves []game.Move) []communication.WireMove {
	out := make([]communication.WireMove, 0, len(moves))
	for _, m := range moves {
		out = append(out, communication.FromMove(m))
	}
	return out
}
