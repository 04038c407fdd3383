package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"tictacchess/communication"
	"tictacchess/gamemaster"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

type jsonWriter interface {
	WriteJSON(v interface{}) error
}

// conn serializes writes; the relay writes from the update loop and the read loop.
type conn struct {
	w      jsonWriter
	mu     sync.Mutex
	gameID string
}

func (c *conn) send(msg communication.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.WriteJSON(msg)
}

// reply sends msg and logs a failed write. The read loop stops on its own once the connection breaks.
func (c *conn) reply(msg communication.Message) {
	if err := c.send(msg); err != nil {
		log.Warn().Err(err).Msgf("websocket write failed for game %s", c.gameID)
	}
}

// relay streams every update of a session to the connection and applies the moves it sends.
func (s *Server) relay(ws *websocket.Conn) {
	id := ws.Params("id")
	c := &conn{w: ws, gameID: id}

	session, err := s.manager.Get(id)
	if err != nil {
		c.reply(communication.ErrorMessage(err))
		ws.Close()
		return
	}

	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()
	log.Info().Msgf("websocket joined game %s", id)

	if msg, err := communication.NewMessage(communication.MessageTypeState, communication.NewStateView(id, session.State())); err == nil {
		c.reply(msg)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case u, ok := <-updates:
				if !ok {
					ws.Close()
					return
				}
				if err := c.send(updateMessage(id, u)); err != nil {
					log.Warn().Err(err).Msgf("websocket write failed for game %s", id)
					return
				}
			}
		}
	}()

	for {
		messageType, data, err := ws.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg communication.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.reply(communication.ErrorMessage(fmt.Errorf("parse error: %w", err)))
			continue
		}
		if err := handleMessage(session, msg); err != nil {
			c.reply(communication.ErrorMessage(err))
		}
	}

	close(done)
	wg.Wait()
	log.Info().Msgf("websocket left game %s", id)
}

// handleMessage applies a peer's message; the result reaches every connection as an update.
func handleMessage(session *gamemaster.Session, msg communication.Message) error {
	switch msg.Type {
	case communication.MessageTypeMove:
		var w communication.WireMove
		if err := json.Unmarshal(msg.Payload, &w); err != nil {
			return err
		}
		move, err := w.ToMove()
		if err != nil {
			return err
		}
		if session.Mode == gamemaster.ModeOnline {
			_, _, err = session.ApplyRemote(move)
		} else {
			_, _, err = session.Play(move)
		}
		return err
	case communication.MessageTypeReset:
		session.Reset()
		return nil
	}
	return fmt.Errorf("unknown message type: %s", msg.Type)
}

func updateMessage(id string, u gamemaster.Update) communication.Message {
	var (
		msg communication.Message
		err error
	)
	switch u.Type {
	case gamemaster.UpdateMove:
		msg, err = communication.NewMessage(communication.MessageTypeMove, communication.MoveResponse{
			Move:  communication.FromMove(u.Move),
			State: communication.NewStateView(id, u.State),
		})
	default:
		msg, err = communication.NewMessage(communication.MessageTypeReset, communication.NewStateView(id, u.State))
	}
	if err != nil {
		return communication.ErrorMessage(err)
	}
	return msg
}
