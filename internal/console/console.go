// Package console is a line-mode entry collector for keyboard-wedge
// scanners: every submitted line is a scan unless it starts with ':'.
// A part number that itself starts with ':' is entered with a doubled
// prefix ("::A7" counts ":A7"). Part numbers given to :set cannot
// contain spaces; bin ids given to :bin can.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"bin-tally/internal/controllers"
	"bin-tally/internal/inventory"
	"bin-tally/internal/logger"
)

const CommandPrefix = ":"

const helpText = `Scan or type a part number and press Enter to count it.
Commands:
  :bin <id>          save the current bin and start a new one
  :set <part> <qty>  set a part's quantity
  :save              save the current bin
  :list              show the current bin
  :help              show this help
  :quit              exit
A part number starting with ':' is scanned as '::<part>'.`

var _ controllers.BinView = (*Collector)(nil)

// Collector drives a MainController from text lines and renders its
// state as text.
type Collector struct {
	controller *controllers.MainController
	in         io.Reader
	out        io.Writer
	logger     logger.Logger

	binID   string
	entries []inventory.PartEntry
	enabled bool
}

func NewCollector(controller *controllers.MainController, in io.Reader, out io.Writer, log logger.Logger) *Collector {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	c := &Collector{
		controller: controller,
		in:         in,
		out:        out,
		logger:     log,
	}
	controller.SetView(c)
	return c
}

// Run handles lines until EOF, :quit or ctx is cancelled. Input is read
// on a separate goroutine; every line is handled on the caller's
// goroutine, so the session is never touched concurrently.
func (c *Collector) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.println(helpText)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("Console", "collector stopped", nil)
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			if quit := c.Handle(line); quit {
				return nil
			}
		}
	}
}

// Handle processes one submitted line and reports whether to quit.
func (c *Collector) Handle(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return false
	}

	if !strings.HasPrefix(line, CommandPrefix) {
		c.scan(line)
		return false
	}
	if strings.HasPrefix(line, CommandPrefix+CommandPrefix) {
		c.scan(strings.TrimPrefix(line, CommandPrefix))
		return false
	}

	command := strings.TrimPrefix(line, CommandPrefix)
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "bin", "new":
		binID := argumentText(command, fields[0])
		if binID == "" {
			c.println("usage: :bin <id>")
			return false
		}
		if err := c.controller.NewBin(binID); err == nil {
			c.printf("Bin #: %s\n", c.binID)
		}
	case "set":
		if len(fields) != 3 {
			c.println("usage: :set <part> <qty>")
			return false
		}
		if err := c.controller.ManualEntry(fields[1], fields[2]); err != nil {
			c.printf("error: %v\n", err)
			return false
		}
		c.printEntry(fields[1])
	case "save":
		if !c.enabled {
			c.println("no bin started")
			return false
		}
		if err := c.controller.Save(); err == nil {
			c.printf("saved bin %s (%d parts)\n", c.binID, len(c.entries))
		}
	case "list":
		c.printBin()
	case "help":
		c.println(helpText)
	case "quit", "exit":
		return true
	default:
		c.logger.Debug("Console", "unknown command", map[string]interface{}{
			"command": fields[0],
		})
		c.printf("unknown command %q, try :help\n", fields[0])
	}
	return false
}

// argumentText returns everything after the command word with the
// surrounding blanks removed, keeping inner spaces.
func argumentText(command, name string) string {
	rest := strings.TrimLeft(command, " \t")
	return strings.TrimSpace(strings.TrimPrefix(rest, name))
}

func (c *Collector) scan(token string) {
	if !c.enabled {
		c.println("no bin started, use :bin <id>")
		return
	}
	c.controller.Scan(token)
	c.printEntry(token)
}

func (c *Collector) ShowBin(binID string) {
	c.binID = binID
}

func (c *Collector) ShowEntries(entries []inventory.PartEntry) {
	c.entries = entries
}

func (c *Collector) SetCollectionEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *Collector) ShowError(title string, err error) {
	c.printf("error: %s: %v\n", title, err)
}

func (c *Collector) printEntry(partNumber string) {
	for _, e := range c.entries {
		if e.PartNumber == partNumber {
			c.printf("%s\t%d\n", e.PartNumber, e.Quantity)
			return
		}
	}
}

func (c *Collector) printBin() {
	if !c.enabled {
		c.println("no bin started")
		return
	}
	c.printf("Bin #: %s\n", c.binID)
	c.println("Part #\tQTY")
	for _, e := range c.entries {
		c.printf("%s\t%d\n", e.PartNumber, e.Quantity)
	}
}

func (c *Collector) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Collector) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
