package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tictacchess/communication"

	"github.com/gofiber/fiber/v2"
)

const DefaultTimeout = 30 * time.Second

// ErrNoGame is returned by game calls made before CreateGame or Join.
var ErrNoGame = errors.New("client has no game")

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.Code, e.Message)
}

// Client talks to one game on a remote server. It implements communication.Communicator.
type Client struct {
	serverURL string
	gameID    string
	timeout   time.Duration
}

func New(serverURL string) *Client {
	return &Client{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		timeout:   DefaultTimeout,
	}
}

// Join points the client at an existing game.
func (c *Client) Join(gameID string) {
	c.gameID = gameID
}

func (c *Client) GameID() string {
	return c.gameID
}

func (c *Client) CreateGame(ctx context.Context, mode, difficulty string) (communication.StateView, error) {
	var view communication.StateView
	agent := fiber.Post(c.serverURL + "/api/game").JSON(communication.CreateRequest{Mode: mode, Difficulty: difficulty})
	if err := c.do(ctx, agent, &view); err != nil {
		return view, err
	}
	c.gameID = view.ID
	return view, nil
}

func (c *Client) GetGameState(ctx context.Context) (communication.StateView, error) {
	var view communication.StateView
	url, err := c.gameURL("")
	if err != nil {
		return view, err
	}
	if err := c.do(ctx, fiber.Get(url), &view); err != nil {
		return view, err
	}
	return view, nil
}

func (c *Client) LegalMoves(ctx context.Context) ([]communication.WireMove, error) {
	var moves []communication.WireMove
	url, err := c.gameURL("/moves")
	if err != nil {
		return nil, err
	}
	if err := c.do(ctx, fiber.Get(url), &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

func (c *Client) Validate(ctx context.Context, move communication.WireMove) (communication.ValidateResponse, error) {
	var resp communication.ValidateResponse
	url, err := c.gameURL("/validate")
	if err != nil {
		return resp, err
	}
	if err := c.do(ctx, fiber.Post(url).JSON(move), &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// SendMove plays move and returns the state after it.
func (c *Client) SendMove(ctx context.Context, move communication.WireMove) (communication.StateView, error) {
	resp, err := c.Play(ctx, move)
	if err != nil {
		return communication.StateView{}, err
	}
	return resp.State, nil
}

// Play is SendMove that also returns the move as the server recorded it, with its piece id.
func (c *Client) Play(ctx context.Context, move communication.WireMove) (communication.MoveResponse, error) {
	var resp communication.MoveResponse
	url, err := c.gameURL("/move")
	if err != nil {
		return resp, err
	}
	if err := c.do(ctx, fiber.Post(url).JSON(move), &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

func (c *Client) RequestAIMove(ctx context.Context) (communication.WireMove, communication.StateView, error) {
	var resp communication.MoveResponse
	url, err := c.gameURL("/ai")
	if err != nil {
		return resp.Move, resp.State, err
	}
	if err := c.do(ctx, fiber.Post(url), &resp); err != nil {
		return communication.WireMove{}, communication.StateView{}, err
	}
	return resp.Move, resp.State, nil
}

func (c *Client) Reset(ctx context.Context) (communication.StateView, error) {
	var view communication.StateView
	url, err := c.gameURL("/reset")
	if err != nil {
		return view, err
	}
	if err := c.do(ctx, fiber.Post(url), &view); err != nil {
		return view, err
	}
	return view, nil
}

// Delete ends the game on the server and forgets it locally.
func (c *Client) Delete(ctx context.Context) error {
	url, err := c.gameURL("")
	if err != nil {
		return err
	}
	if err := c.do(ctx, fiber.Delete(url), nil); err != nil {
		return err
	}
	c.gameID = ""
	return nil
}

func (c *Client) gameURL(suffix string) (string, error) {
	if c.gameID == "" {
		return "", ErrNoGame
	}
	return c.serverURL + "/api/game/" + c.gameID + suffix, nil
}

// do sends the request, bounded by ctx's deadline, and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, agent *fiber.Agent, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}

	code, body, errs := agent.Timeout(timeout).Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		var resp communication.ErrorResponse
		if err := json.Unmarshal(body, &resp); err != nil || resp.Error == "" {
			resp.Error = string(body)
		}
		return &StatusError{Code: code, Message: resp.Error}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
