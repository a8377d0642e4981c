package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"upturn/internal/command"
	"upturn/internal/game"
	"upturn/internal/session"
)

var errInputClosed = errors.New("input closed before the game finished")

// play runs the hot-seat loop: show the board, prompt the player on turn,
// apply their command, until the game finishes.
func play(ctx context.Context, in io.Reader, out io.Writer, m *session.Manager, id string) (session.Snapshot, error) {
	snap, ok := m.Snapshot(id)
	if !ok {
		return session.Snapshot{}, session.ErrUnknownGame
	}
	text, _ := m.Render(id)

	scanner := bufio.NewScanner(in)
	for snap.Status == session.StatusActive {
		if err := ctx.Err(); err != nil {
			return snap, err
		}
		fmt.Fprint(out, text)
		fmt.Fprintf(out, "%s:  \n", prompt(snap.Turn))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return snap, err
			}
			return snap, errInputClosed
		}

		cmd, err := command.Parse(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "Invalid command: %v\n", err)
			continue
		}
		next, err := m.Apply(id, cmd)
		if err != nil {
			fmt.Fprintf(out, "%s failed: %v\n", failureLabel(cmd.Kind), err)
			continue
		}
		snap = next
		text, _ = m.Render(id)
	}

	fmt.Fprint(out, text)
	fmt.Fprintln(out, verdict(snap.Outcome))
	return snap, nil
}

func prompt(turn game.Cell) string {
	if turn == game.White {
		return "White"
	}
	return "Black"
}

func failureLabel(k command.Kind) string {
	switch k {
	case command.Rotate:
		return "Rotation"
	case command.Uplift:
		return "Upturn"
	}
	return "Piece placement"
}

func verdict(o game.Outcome) string {
	switch o {
	case game.BlackWin:
		return "Black wins!"
	case game.WhiteWin:
		return "White wins!"
	case game.Draw:
		return "Draw!"
	}
	return "Game in progress."
}
