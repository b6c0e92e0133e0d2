package serve

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gliderlabs/ssh"
	"golang.org/x/sync/errgroup"
)

// runSession shows v on the terminal behind rw until the user quits, the
// input ends or ctx is cancelled. Input is read on its own goroutine; every
// change of state or window size redraws the whole screen.
func runSession(ctx context.Context, rw io.ReadWriter, winCh <-chan ssh.Window, v *viewer) (err error) {
	if _, err = io.WriteString(rw, enterScreen); err != nil {
		return fmt.Errorf("could not set up terminal: %w", err)
	}
	defer func() {
		if _, defErr := io.WriteString(rw, leaveScreen); defErr != nil && err == nil {
			err = fmt.Errorf("could not restore terminal: %w", defErr)
		}
	}()

	actions := make(chan action, 16)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(actions)

		buf := make([]byte, 64)
		for {
			n, err := rw.Read(buf)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("could not read input: %w", err)
			}

			for _, a := range parseInput(buf[:n]) {
				select {
				case actions <- a:
				case <-ctx.Done():
					return nil
				}
				if a == actionQuit {
					return nil
				}
			}
		}
	})

	g.Go(func() error {
		draw := func() error {
			if _, err := io.WriteString(rw, v.frame()); err != nil {
				return fmt.Errorf("could not draw: %w", err)
			}
			return nil
		}

		if err := draw(); err != nil {
			return err
		}
		for {
			select {
			case <-ctx.Done():
				return nil
			case win, ok := <-winCh:
				if !ok {
					winCh = nil
					continue
				}
				v.resize(win.Width, win.Height)
			case a, ok := <-actions:
				if !ok || v.apply(a) {
					return nil
				}
			}
			if err := draw(); err != nil {
				return err
			}
		}
	})

	return g.Wait()
}
