package serve

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/gliderlabs/ssh"

	"wpgen/raster"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []action
	}{
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []action{actionUp, actionDown, actionRight, actionLeft}},
		{"wasd", "wAsD", []action{actionUp, actionLeft, actionDown, actionRight}},
		{"enter", "\r", []action{actionRegenerate}},
		{"quit", "xq", []action{actionQuit}},
		{"ctrl-c", "\x03", []action{actionQuit}},
		{"unknown escape", "\x1b[Z", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseInput([]byte(tt.in)); !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func stripes() raster.Image {
	img := raster.New(4, 2)
	for x := range 4 {
		img.SetRGB(x, 0, raster.RGB{R: uint8(x * 10)})
		img.SetRGB(x, 1, raster.RGB{B: uint8(x * 10)})
	}
	return img
}

func TestViewer(t *testing.T) {
	generated := 0
	v := newViewer(3, 2, 1, func() raster.Image {
		generated++
		return stripes()
	})
	if v.fb.Width() != 3 || v.fb.Height() != 4 {
		t.Fatalf("unexpected framebuffer %dx%d", v.fb.Width(), v.fb.Height())
	}

	v.apply(actionLeft)
	if v.ox != 3 {
		t.Errorf("expected offset to wrap to 3, got %d", v.ox)
	}
	v.apply(actionDown)
	v.apply(actionDown)
	if v.oy != 0 {
		t.Errorf("expected vertical offset to wrap to 0, got %d", v.oy)
	}

	v.frame()
	if got := v.fb.RGBAt(0, 0); got != (raster.RGB{R: 30}) {
		t.Errorf("expected shifted column, got %v", got)
	}
	if got := v.fb.RGBAt(1, 3); got != (raster.RGB{B: 0}) {
		t.Errorf("expected wrapped tile, got %v", got)
	}

	v.apply(actionRegenerate)
	if generated != 2 || v.ox != 0 {
		t.Errorf("expected a fresh wallpaper at the origin, got %d generations, offset %d", generated, v.ox)
	}
	if !v.apply(actionQuit) {
		t.Error("quit must end the session")
	}

	v.resize(0, 0)
	if out := v.frame(); out != home {
		t.Errorf("expected an empty frame, got %q", out)
	}
}

func TestRender(t *testing.T) {
	fb := raster.NewFramebuffer(2, 3, nil)
	fb.SetRGB(0, 0, raster.RGB{R: 255})
	fb.SetRGB(0, 1, raster.RGB{G: 7})
	out := render(fb)

	if !strings.HasPrefix(out, home+"\x1b[38;2;255;0;0;48;2;0;7;0m▀") {
		t.Errorf("unexpected first cell in %q", out)
	}
	if n := strings.Count(out, upperHalf); n != 2 {
		t.Errorf("expected one line of two cells, got %d cells", n)
	}
}

// term feeds scripted keys and records everything drawn.
type term struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func (t *term) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t *term) Write(p []byte) (int, error) { return t.out.Write(p) }

func TestRunSession(t *testing.T) {
	tests := []struct {
		name   string
		keys   string
		frames int
	}{
		{"quit", "dq", 2},
		{"input closed", "", 1},
		{"keys after quit ignored", "q\r\r", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := &term{in: bytes.NewReader([]byte(tt.keys))}
			v := newViewer(4, 1, 1, stripes)
			if err := runSession(context.Background(), tm, nil, v); err != nil {
				t.Fatal(err)
			}

			out := tm.out.String()
			if !strings.HasPrefix(out, enterScreen) || !strings.HasSuffix(out, leaveScreen) {
				t.Error("terminal not set up and restored")
			}
			if n := strings.Count(out, home); n != tt.frames {
				t.Errorf("expected %d frames, got %d", tt.frames, n)
			}
		})
	}
}

func TestRunSessionResize(t *testing.T) {
	winCh := make(chan ssh.Window, 1)
	winCh <- ssh.Window{Width: 2, Height: 1}
	close(winCh)

	// Input never ends, so the session stops on cancellation.
	ctx, cancel := context.WithCancel(context.Background())
	tm := &blocking{stop: ctx.Done(), writes: make(chan string, 8)}
	done := make(chan error, 1)
	go func() {
		done <- runSession(ctx, tm, winCh, newViewer(4, 1, 1, stripes))
	}()

	for w := range tm.writes {
		if strings.HasPrefix(w, home) && strings.Count(w, upperHalf) == 2 {
			break
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

// blocking is a terminal whose input only ends on stop. Writes are
// forwarded while there is room.
type blocking struct {
	stop   <-chan struct{}
	writes chan string
}

func (b *blocking) Read([]byte) (int, error) {
	<-b.stop
	return 0, context.Canceled
}

func (b *blocking) Write(p []byte) (int, error) {
	select {
	case b.writes <- string(p):
	default:
	}
	return len(p), nil
}

func TestValidate(t *testing.T) {
	c := CLICmd{Addr: ":2222", Port: 2022, Step: 8}
	if err := c.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if c.Addr != ":2022" {
		t.Errorf("expected port override, got %s", c.Addr)
	}
	for _, bad := range []CLICmd{{Step: 0}, {Port: -1, Step: 1}, {Port: 70000, Step: 1}} {
		if err := bad.Validate(nil); err == nil {
			t.Errorf("%+v: expected error", bad)
		}
	}
}
