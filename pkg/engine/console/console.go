// Package console implements a line-based console driver for playing and
// debugging the engine interactively.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/herohde/quince/pkg/board/fen"
	"github.com/herohde/quince/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ProtocolName = "console"

// Driver implements a console driver. Commands:
//
//	reset [fen]     set up a position (initial if omitted)
//	move <m>        apply a move in coordinate notation, e.g. e2e4
//	go              search the position and play the best move
//	print           print the board
//	fen             print the position in FEN notation
//	quit            exit
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	printer *message.Printer
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		printer:     message.NewPrinter(language.English),
	}
	go d.process(ctx, in, out)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string, out chan<- string) {
	defer d.Close()
	defer close(out)

	logw.Infof(ctx, "Console protocol initialized")

	out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	out <- d.e.Position().Pretty()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				continue
			}
			cmd, args := parts[0], parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				pos := fen.Initial
				if len(args) >= 6 {
					pos = strings.Join(args[0:6], " ")
				}
				if err := d.e.Reset(ctx, pos); err != nil {
					out <- fmt.Sprintf("invalid position: %v", err)
					continue
				}
				out <- d.e.Position().Pretty()

			case "move", "m":
				if len(args) != 1 {
					out <- "usage: move <from><to>[promotion]"
					continue
				}
				if err := d.e.Move(ctx, args[0]); err != nil {
					out <- fmt.Sprintf("%v", err)
					continue
				}
				out <- d.e.Position().Pretty()

			case "go", "g":
				result, err := d.e.Turn(ctx)
				if err != nil {
					out <- fmt.Sprintf("no move: %v", err)
					continue
				}
				out <- d.printer.Sprintf("bestmove %v (score=%v, depth=%v, nodes=%v, time=%v)",
					result.Move, result.Score, result.Depth, result.Nodes, result.Time)
				out <- d.e.Position().Pretty()

			case "print", "p":
				out <- d.e.Position().Pretty()

			case "fen":
				out <- fen.Encode(d.e.Position())

			case "quit", "q":
				logw.Infof(ctx, "Quit")
				return

			default:
				out <- fmt.Sprintf("unknown command: %v", cmd)
			}

		case <-d.Closed():
			return
		}
	}
}
