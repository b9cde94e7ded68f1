// internal/dtu/exchange.go
package dtu

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/tamzrod/esolar-ble/internal/ble"
	"github.com/tamzrod/esolar-ble/internal/frame"
)

// exchange performs exactly one command/response round trip on an
// established link: transmit the framed command, collect fragments until
// the assembler reports completion, return the hex-encoded reply.
func (c *Client) exchange(ctx context.Context, ch ble.Characteristic, desc ble.Descriptor, payloadHex string) (string, error) {
	req, err := frame.BuildRequest(payloadHex)
	if err != nil {
		return "", err
	}

	var (
		mu   sync.Mutex
		asm  = frame.NewAssembler()
		done = make(chan struct{})
		once sync.Once
	)
	onFragment := func(data []byte) {
		mu.Lock()
		complete := asm.Push(data)
		mu.Unlock()
		if complete {
			once.Do(func() { close(done) })
		}
	}

	notifying := negotiate(ch, desc, onFragment)
	if notifying {
		defer func() {
			if err := ch.Unsubscribe(); err != nil {
				log.Printf("dtu: unsubscribe failed: %v", err)
			}
		}()
	}

	if err := ch.Write(req); err != nil {
		return "", fmt.Errorf("dtu: write command: %w", err)
	}

	if notifying {
		select {
		case <-done:
		case <-ctx.Done():
			return "", fmt.Errorf("%w: waiting for notification reply: %v", ErrTimeout, ctx.Err())
		}
	} else if err := c.pollRead(ctx, ch, onFragment, done); err != nil {
		return "", err
	}

	mu.Lock()
	defer mu.Unlock()
	return asm.Hex(), nil
}

// pollRead repeatedly reads the characteristic value until the assembler
// completes or the overall deadline elapses.
func (c *Client) pollRead(ctx context.Context, ch ble.Characteristic, onFragment func([]byte), done <-chan struct{}) error {
	for {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("%w: no reply via poll reads: %v", ErrTimeout, ctx.Err())
		case <-time.After(c.cfg.PollInterval):
			data, err := ch.Read()
			if err != nil {
				log.Printf("dtu: poll read failed: %v", err)
				continue
			}
			if len(data) > 0 {
				onFragment(data)
			}
		}
	}
}
