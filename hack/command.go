package hack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/pboyd/interpose/game"
)

// CommandError is raised by Execute for a command it can't run.
type CommandError struct {
	Line   string
	Reason string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("invalid command %q: %s", e.Line, e.Reason)
}

// IsCommand reports whether a chat line is addressed to the hack rather
// than the other players.
func (h *Hack) IsCommand(line string) bool {
	return strings.HasPrefix(line, h.cfg.Trigger+" ")
}

// Execute runs a command line on behalf of player. It panics with a
// *CommandError if the command is unknown or its arguments are wrong.
//
// Commands are "<trigger> <name> <args...>", separated by single spaces:
//
//	position           toggle position and rotation logging
//	velocity           toggle velocity logging
//	tp X Y Z           teleport to a position
//	float              toggle float mode
//	ft FROM TO         fast travel between two zones
//	give ITEM [COUNT]  add items to the inventory
func (h *Hack) Execute(player *game.Player, line string) {
	args := strings.Split(line, " ")
	if len(args) < 2 || args[0] != h.cfg.Trigger {
		panic(&CommandError{Line: line, Reason: "not a command"})
	}
	name, args := args[1], args[2:]

	ctx := log.WithField("command", name)

	switch name {
	case "position":
		ctx.WithField("enabled", toggle(&h.state.PrintPosition)).Info("position logging")
	case "velocity":
		ctx.WithField("enabled", toggle(&h.state.PrintVelocity)).Info("velocity logging")
	case "float":
		ctx.WithField("enabled", toggle(&h.state.Float)).Info("float mode")
	case "tp":
		need(line, args, 3)
		pos := game.Vector3{
			X: parseFloat(line, args[0]),
			Y: parseFloat(line, args[1]),
			Z: parseFloat(line, args[2]),
		}
		player.SetPosition(&pos)
		ctx.WithField("position", pos.String()).Info("teleported")
	case "ft":
		need(line, args, 2)
		player.FastTravel(args[0], args[1])
		ctx.WithFields(log.Fields{"from": args[0], "to": args[1]}).Info("fast travel")
	case "give":
		need(line, args, 1)
		count := uint32(1)
		if len(args) > 1 {
			n, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil || n == 0 {
				panic(&CommandError{Line: line, Reason: fmt.Sprintf("bad count %q", args[1])})
			}
			count = uint32(n)
		}
		item := game.ItemByName(args[0])
		if item == 0 {
			panic(&CommandError{Line: line, Reason: fmt.Sprintf("no item named %q", args[0])})
		}
		ctx = ctx.WithFields(log.Fields{"item": args[0], "count": count})
		if player.AddItem(item, count, true) {
			ctx.Info("added item")
		} else {
			ctx.Warn("item rejected")
		}
	default:
		panic(&CommandError{Line: line, Reason: fmt.Sprintf("unknown command %q", name)})
	}
}

// need panics unless there are at least n arguments. Extra arguments are
// ignored.
func need(line string, args []string, n int) {
	if len(args) < n {
		panic(&CommandError{Line: line, Reason: fmt.Sprintf("expected %d arguments, got %d", n, len(args))})
	}
}

func parseFloat(line, s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		panic(&CommandError{Line: line, Reason: fmt.Sprintf("bad coordinate %q", s)})
	}
	return float32(f)
}
