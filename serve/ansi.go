package serve

import (
	"strconv"
	"strings"

	"wpgen/raster"
)

const (
	esc   = "\x1b"
	csi   = esc + "["
	reset = csi + "0m"

	enterScreen = csi + "?1049h" + csi + "?25l" + csi + "2J"
	leaveScreen = reset + csi + "?25h" + csi + "?1049l"
	home        = csi + "H"

	// upperHalf shows the top pixel of a cell as foreground and the bottom
	// one as background.
	upperHalf = "▀"
)

// render draws fb as truecolor half blocks, two pixel rows per terminal
// line. An odd last pixel row is dropped.
func render(fb *raster.Framebuffer) string {
	var sb strings.Builder
	sb.WriteString(home)

	rows := fb.Height() / 2
	for row := range rows {
		if row > 0 {
			sb.WriteString("\r\n")
		}
		for x := range fb.Width() {
			writeCell(&sb, fb.RGBAt(x, row*2), fb.RGBAt(x, row*2+1))
		}
		sb.WriteString(reset)
	}
	return sb.String()
}

func writeCell(sb *strings.Builder, top, bottom raster.RGB) {
	sb.WriteString(csi + "38;2;")
	writeRGB(sb, top)
	sb.WriteString(";48;2;")
	writeRGB(sb, bottom)
	sb.WriteByte('m')
	sb.WriteString(upperHalf)
}

func writeRGB(sb *strings.Builder, c raster.RGB) {
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
}
