package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload ConnectPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal player info: %w", err)
	}

	player, err := that.game.GetOrCreatePlayer(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.ID == payload.Player.ID {
		that.logger.Info("Player connected", "playerID", player.ID)
	} else {
		that.logger.Info("Registered new player", "playerID", player.ID)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload NewGamePayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal new game payload: %w", err)
	}

	game, err := that.game.GetOrCreateGame(ctx, payload.Player.ID, payload.Game.Type)
	if err != nil {
		return that.sendError(*bufrw, msg.Action, err)
	}

	that.logger.Info("Game created", "gameID", game.ID, "type", game.Type)

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload JoinGamePayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal join payload: %w", err)
	}

	game, err := that.game.JoinGame(ctx, payload.Game.ID, payload.Player.ID)
	if err != nil {
		return that.sendError(*bufrw, msg.Action, err)
	}

	that.logger.Info("Player joined game", "gameID", game.ID, "playerID", payload.Player.ID)

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleJoinPublicGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload ConnectPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal join payload: %w", err)
	}

	game, err := that.game.JoinPublicGame(ctx, payload.Player.ID)
	if err != nil {
		return that.sendError(*bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload TurnPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal turn payload: %w", err)
	}

	game, err := that.game.MakeTurn(ctx, payload.Player.ID, payload.Cell)
	if err != nil {
		// the game state still goes out so the client can re-render
		response := ResponsePayload{Game: game, Error: err.Error()}
		return that.sendMessage(*bufrw, msg.Action, response)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleRestartGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload ConnectPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal restart payload: %w", err)
	}

	game, err := that.game.RestartGame(ctx, payload.Player.ID)
	if err != nil {
		return that.sendError(*bufrw, msg.Action, err)
	}

	that.logger.Info("Game restarted", "gameID", game.ID)

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleLeaveGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload ConnectPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal leave payload: %w", err)
	}

	if err := that.game.LeaveGame(ctx, payload.Player.ID); err != nil {
		return that.sendError(*bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{})
}

func (that *Server) handleStats(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	var payload ConnectPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal stats payload: %w", err)
	}

	stats, err := that.game.GetPlayerStats(ctx, payload.Player.ID)
	if err != nil {
		return that.sendError(*bufrw, msg.Action, err)
	}

	return that.sendMessage(*bufrw, msg.Action, ResponsePayload{Stats: stats})
}

func (that *Server) sendError(bufrw bufio.ReadWriter, action string, err error) error {
	if sendErr := that.sendMessage(bufrw, action, ResponsePayload{Error: err.Error()}); sendErr != nil {
		return fmt.Errorf("failed to send error response: %w", sendErr)
	}

	return nil
}
