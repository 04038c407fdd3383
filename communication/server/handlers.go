package server

import (
	"tictacchess/communication"
	"tictacchess/game"
	"tictacchess/gamemaster"
	"tictacchess/searcher"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) session(c *fiber.Ctx) (*gamemaster.Session, error) {
	return s.manager.Get(c.Params("id"))
}

func parseMove(c *fiber.Ctx) (game.Move, error) {
	var w communication.WireMove
	if err := c.BodyParser(&w); err != nil {
		return game.Move{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return w.ToMove()
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req communication.CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	mode, err := gamemaster.ParseMode(req.Mode)
	if err != nil {
		return err
	}
	difficulty := searcher.Medium
	if req.Difficulty != "" {
		if difficulty, err = searcher.ParseDifficulty(req.Difficulty); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	session := s.manager.Create(mode, difficulty)
	return c.Status(fiber.StatusCreated).JSON(communication.NewStateView(session.ID, session.State()))
}

func (s *Server) getGame(c *fiber.Ctx) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	return c.JSON(communication.NewStateView(session.ID, session.State()))
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	return c.JSON(wireMoves(session.LegalMoves()))
}

func (s *Server) validateMove(c *fiber.Ctx) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	move, err := parseMove(c)
	if err != nil {
		return err
	}

	if err := session.Validate(move); err != nil {
		return c.JSON(communication.ValidateResponse{Legal: false, Reason: err.Error()})
	}
	return c.JSON(communication.ValidateResponse{Legal: true})
}

// playMove applies a move. Online sessions keep the id the peer minted.
func (s *Server) playMove(c *fiber.Ctx) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	move, err := parseMove(c)
	if err != nil {
		return err
	}

	var (
		applied game.Move
		state   *game.GameState
	)
	if session.Mode == gamemaster.ModeOnline {
		applied, state, err = session.ApplyRemote(move)
	} else {
		applied, state, err = session.Play(move)
	}
	if err != nil {
		return err
	}
	return c.JSON(communication.MoveResponse{
		Move:  communication.FromMove(applied),
		State: communication.NewStateView(session.ID, state),
	})
}

func (s *Server) aiMove(c *fiber.Ctx) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}

	applied, state, err := session.RequestAIMove(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(communication.MoveResponse{
		Move:  communication.FromMove(applied),
		State: communication.NewStateView(session.ID, state),
	})
}

func (s *Server) resetGame(c *fiber.Ctx) error {
	session, err := s.session(c)
	if err != nil {
		return err
	}
	return c.JSON(communication.NewStateView(session.ID, session.Reset()))
}

// deleteGame ends a session; connected websockets are closed.
func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.manager.Remove(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
