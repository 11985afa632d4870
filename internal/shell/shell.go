// Package shell is the interactive console front end of netroute. It owns
// prompting, input parsing and every human-readable message; the network
// core never prints.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netroute/network"
	"go.uber.org/zap"
)

const menu = `
Menu:
1. Add router
2. Remove router
3. Add link
4. Remove link
5. Packet cost
6. Path
7. Routing table
8. Recompute routing tables
9. Partitions
0. Exit
Option: `

// errQuit ends the loop on EOF or the exit option.
var errQuit = errors.New("shell: quit")

// Shell runs the menu loop against one network.
type Shell struct {
	net    *network.Network
	in     io.Reader
	out    io.Writer
	logger *zap.Logger

	ctx   context.Context
	lines <-chan line
}

// line is one read from the input; err is set only on the final one.
type line struct {
	text string
	err  error
}

// New returns a Shell reading commands from in and writing to out.
func New(n *network.Network, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{net: n, in: in, out: out, logger: logger}
}

// Run loops until the user exits, input ends or ctx is done. A pending
// prompt returns ctx.Err() as soon as ctx is cancelled, even while the
// reader is still blocked.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.ctx, s.lines = ctx, s.read(done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := s.prompt(menu)
		if err != nil {
			return s.done(err)
		}
		if err := s.dispatch(choice); err != nil {
			return s.done(err)
		}
	}
}

func (s *Shell) done(err error) error {
	if errors.Is(err, errQuit) {
		s.println("Exiting...")
		return nil
	}
	return err
}

func (s *Shell) dispatch(choice string) error {
	switch choice {
	case "1":
		return s.addRouter()
	case "2":
		return s.removeRouter()
	case "3":
		return s.addLink()
	case "4":
		return s.removeLink()
	case "5":
		return s.cost()
	case "6":
		return s.path()
	case "7":
		return s.table()
	case "8":
		st := s.net.RecomputeAll()
		s.printf("Routing tables recomputed (generation %d, %d routes).\n", st.Generation, st.Routes)
		return nil
	case "9":
		return s.partitions()
	case "0", "q", "exit":
		return errQuit
	default:
		s.println("Invalid option. Try again.")
		return nil
	}
}

func (s *Shell) addRouter() error {
	id, err := s.prompt("Name of the router to add: ")
	if err != nil {
		return err
	}
	switch err := s.net.AddRouter(id); {
	case err == nil:
		s.printf("Router %s added.\n", id)
	case errors.Is(err, network.ErrRouterExists):
		s.printf("Router %s already exists.\n", id)
	case errors.Is(err, network.ErrInvalidRouterID):
		s.printf("Router name %q must not contain spaces.\n", id)
	default:
		s.printf("Cannot add router: %v\n", err)
	}
	return nil
}

func (s *Shell) removeRouter() error {
	id, err := s.prompt("Name of the router to remove: ")
	if err != nil {
		return err
	}
	switch err := s.net.RemoveRouter(id); {
	case err == nil:
		s.printf("Router %s removed.\n", id)
	case errors.Is(err, network.ErrRouterNotFound):
		s.printf("Router %s is not in the network.\n", id)
	default:
		s.printf("Cannot remove router: %v\n", err)
	}
	return nil
}

func (s *Shell) addLink() error {
	a, b, err := s.pair("First router: ", "Second router: ")
	if err != nil {
		return err
	}
	raw, err := s.prompt("Cost: ")
	if err != nil {
		return err
	}
	cost, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		s.printf("Cost %q is not an integer.\n", raw)
		return nil
	}
	if err := s.net.AddLink(a, b, cost); err != nil {
		s.printf("Cannot add link: %v\n", err)
		return nil
	}
	s.printf("Link %s-%s with cost %d installed.\n", a, b, cost)
	return nil
}

func (s *Shell) removeLink() error {
	a, b, err := s.pair("First router: ", "Second router: ")
	if err != nil {
		return err
	}
	switch err := s.net.RemoveLink(a, b); {
	case err == nil:
		s.printf("Link %s-%s removed.\n", a, b)
	case errors.Is(err, network.ErrLinkNotFound):
		s.printf("There is no link between %s and %s.\n", a, b)
	default:
		s.printf("Cannot remove link: %v\n", err)
	}
	return nil
}

func (s *Shell) cost() error {
	a, b, err := s.pair("Origin router: ", "Destination router: ")
	if err != nil {
		return err
	}
	c, qerr := s.net.Cost(a, b)
	if qerr != nil {
		s.logger.Debug("cost query failed", zap.Error(qerr))
		s.printf("No route available between %s and %s.\n", a, b)
		return nil
	}
	s.printf("Cost of sending a packet from %s to %s: %d\n", a, b, c)
	return nil
}

func (s *Shell) path() error {
	a, b, err := s.pair("Origin router: ", "Destination router: ")
	if err != nil {
		return err
	}
	p, qerr := s.net.Path(a, b)
	if qerr != nil || len(p) == 0 {
		s.logger.Debug("path query failed", zap.Error(qerr))
		s.printf("No route available between %s and %s.\n", a, b)
		return nil
	}
	s.printf("Path from %s to %s: %s\n", a, b, strings.Join(p, " "))
	return nil
}

func (s *Shell) table() error {
	id, err := s.prompt("Router: ")
	if err != nil {
		return err
	}
	routes, qerr := s.net.Table(id)
	if qerr != nil {
		s.printf("Router %s is not in the network.\n", id)
		return nil
	}
	return RenderTable(s.out, id, routes)
}

func (s *Shell) partitions() error {
	parts, err := s.net.Partitions()
	if err != nil {
		return err
	}
	switch len(parts) {
	case 0:
		s.println("The network has no routers.")
		return nil
	case 1:
		s.println("All routers can reach each other.")
		return nil
	}
	s.printf("The network is split into %d partitions:\n", len(parts))
	for i, p := range parts {
		s.printf("  %d. %s\n", i+1, strings.Join(p, " "))
	}
	return nil
}

func (s *Shell) pair(first, second string) (string, string, error) {
	a, err := s.prompt(first)
	if err != nil {
		return "", "", err
	}
	b, err := s.prompt(second)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

// read scans s.in on its own goroutine so prompts can also wait on ctx.
// The goroutine exits when done is closed or the input ends.
func (s *Shell) read(done <-chan struct{}) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case ch <- line{text: sc.Text()}:
			case <-done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}

// prompt prints label and returns the next non-empty trimmed line.
func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	for {
		select {
		case <-s.ctx.Done():
			s.println("")
			return "", s.ctx.Err()
		case l, ok := <-s.lines:
			if !ok {
				s.println("")
				return "", errQuit
			}
			if l.err != nil {
				return "", fmt.Errorf("shell: read input: %w", l.err)
			}
			if text := strings.TrimSpace(l.text); text != "" {
				return text, nil
			}
		}
	}
}

func (s *Shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

func (s *Shell) println(line string) { fmt.Fprintln(s.out, line) }
