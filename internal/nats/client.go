package nats

import (
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

type Config struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
	ClientID      string
}

type Client struct {
	conn *nats.Conn
}

func NewClient(cfg Config) (*Client, error) {
	opts := []nats.Option{
		nats.Name(cfg.ClientID),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Printf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to NATS at %s: %w", cfg.URL, err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Publish(subject string, data []byte) error {
	return c.conn.Publish(subject, data)
}

const flushTimeout = 5 * time.Second

// Close blocks until buffered messages reach the server, then closes the
// connection.
func (c *Client) Close() {
	if c.conn == nil {
		return
	}
	if err := c.conn.FlushTimeout(flushTimeout); err != nil {
		log.Printf("NATS flush failed: %v", err)
	}
	c.conn.Close()
}
