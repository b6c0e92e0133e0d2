package serve

import "unicode/utf8"

type action int

const (
	actionUp action = iota
	actionDown
	actionLeft
	actionRight
	actionRegenerate
	actionQuit
)

// parseInput converts raw terminal bytes into viewer actions: arrow keys
// and WASD scroll, Enter regenerates, q and Ctrl-C quit.
func parseInput(data []byte) []action {
	var actions []action
	for i := 0; i < len(data); {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, actionUp)
			case 'B':
				actions = append(actions, actionDown)
			case 'C':
				actions = append(actions, actionRight)
			case 'D':
				actions = append(actions, actionLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, actionUp)
		case 's', 'S':
			actions = append(actions, actionDown)
		case 'a', 'A':
			actions = append(actions, actionLeft)
		case 'd', 'D':
			actions = append(actions, actionRight)
		case '\r', '\n':
			actions = append(actions, actionRegenerate)
		case 'q', 'Q', 3:
			actions = append(actions, actionQuit)
		}
		i += size
	}
	return actions
}
