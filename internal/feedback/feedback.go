package feedback

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Sink receives accepted ratings in addition to the feedback file.
// The SQLite recorder implements it.
type Sink interface {
	RecordFeedback(rating string) error
}

// Collector accepts rating submissions on a channel and appends them,
// timestamped, to an append-only file. Submission never blocks the
// pipeline: a scheduled run can finish while feedback trickles in.
type Collector struct {
	path string
	sink Sink
	ch   chan string
	done chan struct{}
}

// NewCollector creates a collector writing to path. sink may be nil.
func NewCollector(path string, sink Sink) *Collector {
	return &Collector{
		path: path,
		sink: sink,
		ch:   make(chan string, 16),
		done: make(chan struct{}),
	}
}

// Start launches the writer goroutine. It drains the queue before exiting
// when ctx is cancelled.
func (c *Collector) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		for {
			select {
			case rating := <-c.ch:
				c.write(rating)
			case <-ctx.Done():
				for {
					select {
					case rating := <-c.ch:
						c.write(rating)
					default:
						return
					}
				}
			}
		}
	}()
}

// Submit queues one rating. Any text is accepted verbatim.
func (c *Collector) Submit(rating string) {
	select {
	case c.ch <- rating:
	default:
		log.Printf("[WARN] feedback queue full, dropping rating %q", rating)
	}
}

// Wait blocks until the writer goroutine has drained and exited.
func (c *Collector) Wait() { <-c.done }

func (c *Collector) write(rating string) {
	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("[ERROR] open feedback store: %v", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s: %s\n", time.Now().Format("2006-01-02 15:04:05"), rating); err != nil {
		log.Printf("[ERROR] write feedback: %v", err)
		return
	}
	if c.sink != nil {
		if err := c.sink.RecordFeedback(rating); err != nil {
			log.Printf("[ERROR] record feedback: %v", err)
		}
	}
}

// Prompt reads a single rating line from r and submits it. Used only by the
// one-shot CLI mode; scheduled runs never touch a terminal.
func (c *Collector) Prompt(r io.Reader, w io.Writer) {
	fmt.Fprint(w, "How accurate was last week's recommendation? (1-5): ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		log.Printf("[WARN] no feedback input: %v", err)
		return
	}
	c.Submit(strings.TrimSpace(line))
}
