package serve

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/gliderlabs/ssh"

	"wpgen/random"
	"wpgen/raster"
	"wpgen/scene"
)

type CLICmd struct {
	Addr    string `help:"Listen address" default:":2222"`
	Port    int    `help:"Listen port, overrides the port of --addr" env:"PORT"`
	HostKey string `help:"SSH host key file; a throwaway key is generated if empty" type:"path"`
	Step    int    `help:"Pixels scrolled per key press" default:"8"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Port < 0 || c.Port > 0xffff {
		return fmt.Errorf("invalid port: %d", c.Port)
	} else if c.Port != 0 {
		c.Addr = ":" + strconv.Itoa(c.Port)
	}

	if c.Step < 1 {
		return fmt.Errorf("invalid scroll step: %d", c.Step)
	}

	return nil
}

func (c *CLICmd) Run() error {
	server := &ssh.Server{
		Addr:    c.Addr,
		Handler: c.handle,
	}

	if c.HostKey != "" {
		if err := server.SetOption(ssh.HostKeyFile(c.HostKey)); err != nil {
			return fmt.Errorf("could not load host key %q: %w", c.HostKey, err)
		}
	}

	slog.Info("listening", "addr", c.Addr)
	return server.ListenAndServe()
}

func (c *CLICmd) handle(sess ssh.Session) {
	logger := slog.Default().With("user", sess.User(), "remote", sess.RemoteAddr().String())

	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		io.WriteString(sess, "a terminal is required, connect with ssh -t\n")
		sess.Exit(1)
		return
	}

	logger.Info("session started", "cols", ptyReq.Window.Width, "rows", ptyReq.Window.Height)
	v := newViewer(ptyReq.Window.Width, ptyReq.Window.Height, c.Step, newWallpaper)
	if err := runSession(sess.Context(), sess, winCh, v); err != nil {
		logger.Error("session failed", "error", err)
		return
	}
	logger.Info("session ended")
}

func newWallpaper() raster.Image {
	return scene.Generate(random.NewPCG(random.Seed()))
}
