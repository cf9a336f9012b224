package debug

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/term"

	"github.com/Versifine/lowpoly/internal/character"
	"github.com/Versifine/lowpoly/internal/physics"
	"github.com/Versifine/lowpoly/internal/sim"
)

const (
	defaultStatusInterval = 100 * time.Millisecond
	defaultMovePulse      = 180 * time.Millisecond
	yawStep               = 5.0
	pitchStep             = 5.0
)

// Target is the running simulation the console drives.
type Target interface {
	Snapshot() sim.Snapshot
	Restart()
	Do(fn func(s *sim.Scene))
}

// Console turns raw terminal keys into character intents and offers a small
// command line for inspecting the scene. It is the IntentSource of the frame
// loop.
type Console struct {
	target         Target
	out            io.Writer
	now            func() time.Time
	statusInterval time.Duration
	movePulse      time.Duration

	mu          sync.Mutex
	pending     character.Intent
	running     bool
	fireHeld    bool
	moveY       float64
	moveX       float64
	moveYUntil  time.Time
	moveXUntil  time.Time
	commandMode bool
	commandBuf  []rune
	statusWidth int
}

func NewConsole(target Target) *Console {
	return &Console{
		target:         target,
		out:            os.Stdout,
		now:            time.Now,
		statusInterval: defaultStatusInterval,
		movePulse:      defaultMovePulse,
	}
}

func (c *Console) Start(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("console is nil")
	}
	if c.target == nil {
		return fmt.Errorf("console target is nil")
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
		fmt.Fprint(c.out, "\r\n")
	}()

	fmt.Fprint(c.out, "[debug] console started (W/A/S/D pulse, Space fire, R reload, Q/E weapon, F interact, arrows, :)\r\n")
	c.renderStatusLine()

	go c.statusLoop(ctx)

	// The read blocks until the next key, so it cannot observe ctx itself.
	readErr := make(chan error, 1)
	go func() {
		readErr <- c.readKeys(bufio.NewReader(os.Stdin))
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-readErr:
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
}

func (c *Console) readKeys(reader *bufio.Reader) error {
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return fmt.Errorf("read console input: %w", err)
		}
		c.handleKey(reader, b)
	}
}

func (c *Console) statusLoop(ctx context.Context) {
	ticker := time.NewTicker(c.statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.renderStatusLine()
		}
	}
}

// Intent returns the input for the next frame. One-shot keys are consumed;
// held toggles and live movement pulses carry over.
func (c *Console) Intent() character.Intent {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expirePulsesLocked(c.now())
	in := c.pending
	in.Move = mgl64.Vec2{c.moveX, c.moveY}
	in.Running = c.running
	in.FireHeld = c.fireHeld
	c.pending = character.Intent{}
	return in
}

func (c *Console) handleKey(reader *bufio.Reader, b byte) {
	if c.isCommandMode() {
		c.handleCommandByte(b)
		return
	}

	switch b {
	case ':':
		c.enterCommandMode()
		return
	case 'w', 'W':
		c.pulse(&c.moveY, &c.moveYUntil, 1)
	case 's', 'S':
		c.pulse(&c.moveY, &c.moveYUntil, -1)
	case 'a', 'A':
		c.pulse(&c.moveX, &c.moveXUntil, -1)
	case 'd', 'D':
		c.pulse(&c.moveX, &c.moveXUntil, 1)
	case ' ':
		c.toggleFire()
	case ']':
		c.toggleRunning()
	case 'r', 'R':
		c.press(func(in *character.Intent) { in.Reload = true })
	case 'e', 'E':
		c.press(func(in *character.Intent) { in.NextWeapon = true })
	case 'q', 'Q':
		c.press(func(in *character.Intent) { in.PrevWeapon = true })
	case 'f', 'F':
		c.press(func(in *character.Intent) { in.Interact = true })
	case 'x', 'X':
		c.clearInput()
	case 27:
		// A bare ESC is cancel; ESC [ X is an arrow key.
		if reader.Buffered() == 0 {
			c.press(func(in *character.Intent) { in.Cancel = true })
			break
		}
		next, err := reader.ReadByte()
		if err != nil || next != '[' {
			return
		}
		arrow, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch arrow {
		case 'D': // left
			c.press(func(in *character.Intent) { in.LookYaw -= yawStep })
		case 'C': // right
			c.press(func(in *character.Intent) { in.LookYaw += yawStep })
		case 'A': // up
			c.press(func(in *character.Intent) { in.LookPitch -= pitchStep })
		case 'B': // down
			c.press(func(in *character.Intent) { in.LookPitch += pitchStep })
		}
	}
	c.renderStatusLine()
}

func (c *Console) enterCommandMode() {
	c.mu.Lock()
	c.commandMode = true
	c.commandBuf = c.commandBuf[:0]
	c.mu.Unlock()
	fmt.Fprint(c.out, "\r\n:")
}

func (c *Console) handleCommandByte(b byte) {
	switch b {
	case 13, 10: // Enter
		c.mu.Lock()
		cmd := strings.TrimSpace(string(c.commandBuf))
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()

		fmt.Fprint(c.out, "\r\n")
		if cmd != "" {
			c.executeCommand(cmd)
		}
		c.renderStatusLine()
		return
	case 27: // ESC cancel command mode
		c.mu.Lock()
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()
		fmt.Fprint(c.out, "\r\n[debug] command cancelled\r\n")
		c.renderStatusLine()
		return
	case 8, 127: // Backspace
		c.mu.Lock()
		if len(c.commandBuf) > 0 {
			c.commandBuf = c.commandBuf[:len(c.commandBuf)-1]
		}
		buf := string(c.commandBuf)
		c.mu.Unlock()
		fmt.Fprintf(c.out, "\r:%s ", buf)
		fmt.Fprintf(c.out, "\r:%s", buf)
		return
	default:
		if b < 32 || b > 126 {
			return
		}
		c.mu.Lock()
		c.commandBuf = append(c.commandBuf, rune(b))
		buf := string(c.commandBuf)
		c.mu.Unlock()
		fmt.Fprintf(c.out, "\r:%s", buf)
	}
}

func (c *Console) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "help":
		c.printHelp()
	case "state":
		s := c.target.Snapshot()
		fmt.Fprintf(c.out, "[debug] t=%v frame=%d weapon=%s ammo=%d/%d fire=%s reloading=%t paused=%t shop=%t projectiles=%d\r\n",
			s.Time, s.Frame, s.Weapon, s.Ammo, s.Capacity, s.FireState, s.Reloading, s.Paused, s.ShopOpen, s.Projectiles)
		fmt.Fprintf(c.out, "[debug] pos=(%.3f,%.3f,%.3f) yaw=%.1f pitch=%.1f ground=%t wave=%d hud=%s\r\n",
			s.Position.X(), s.Position.Y(), s.Position.Z(), s.Yaw, s.Pitch, s.Grounded, s.Wave, s.AmmoColor)
	case "tp":
		v, ok := parseVec(parts)
		if !ok {
			fmt.Fprint(c.out, "[debug] usage: :tp <x> <y> <z>\r\n")
			return
		}
		c.target.Do(func(s *sim.Scene) {
			b := s.Character.Body()
			b.Teleport(v)
			b.Velocity = physics.Vec3{}
		})
		fmt.Fprintf(c.out, "[debug] teleported to (%.3f, %.3f, %.3f)\r\n", v.X(), v.Y(), v.Z())
	case "look":
		v, ok := parseVec(parts)
		if !ok {
			fmt.Fprint(c.out, "[debug] usage: :look <x> <y> <z>\r\n")
			return
		}
		c.target.Do(func(s *sim.Scene) { s.Character.Camera().LookAt(v) })
		fmt.Fprintf(c.out, "[debug] look at (%.3f, %.3f, %.3f)\r\n", v.X(), v.Y(), v.Z())
	case "face":
		if len(parts) != 3 {
			fmt.Fprint(c.out, "[debug] usage: :face <yaw> <pitch>\r\n")
			return
		}
		yaw, err1 := strconv.ParseFloat(parts[1], 64)
		pitch, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			fmt.Fprint(c.out, "[debug] invalid face args\r\n")
			return
		}
		c.target.Do(func(s *sim.Scene) { s.Character.Camera().SetAngles(yaw, pitch) })
	case "wave":
		c.target.Do(func(s *sim.Scene) { s.Waves.StartNextWave() })
	case "restart":
		c.target.Restart()
		c.clearInput()
		fmt.Fprint(c.out, "[debug] scene restarted\r\n")
	default:
		fmt.Fprintf(c.out, "[debug] unknown command: %s\r\n", parts[0])
	}
}

func parseVec(parts []string) (physics.Vec3, bool) {
	if len(parts) != 4 {
		return physics.Vec3{}, false
	}
	var v physics.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i+1], 64)
		if err != nil {
			return physics.Vec3{}, false
		}
		v[i] = f
	}
	return v, true
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, "[debug] keys:\r\n")
	fmt.Fprint(c.out, "  W/S/A/D: pulse movement (~180ms)\r\n")
	fmt.Fprint(c.out, "  ]: toggle running\r\n")
	fmt.Fprint(c.out, "  Space: toggle trigger (fires on press)\r\n")
	fmt.Fprint(c.out, "  R: reload\r\n")
	fmt.Fprint(c.out, "  Q/E: previous/next weapon\r\n")
	fmt.Fprint(c.out, "  F: interact\r\n")
	fmt.Fprint(c.out, "  ESC: cancel (close shop)\r\n")
	fmt.Fprint(c.out, "  Arrow Left/Right: yaw +/-5\r\n")
	fmt.Fprint(c.out, "  Arrow Up/Down: pitch +/-5\r\n")
	fmt.Fprint(c.out, "  X: clear all input\r\n")
	fmt.Fprint(c.out, "  : enter command mode\r\n")
	fmt.Fprint(c.out, "[debug] commands:\r\n")
	fmt.Fprint(c.out, "  :tp <x> <y> <z>\r\n")
	fmt.Fprint(c.out, "  :look <x> <y> <z>\r\n")
	fmt.Fprint(c.out, "  :face <yaw> <pitch>\r\n")
	fmt.Fprint(c.out, "  :wave\r\n")
	fmt.Fprint(c.out, "  :state\r\n")
	fmt.Fprint(c.out, "  :restart\r\n")
	fmt.Fprint(c.out, "  :help\r\n")
}

func (c *Console) renderStatusLine() {
	c.mu.Lock()
	if c.commandMode {
		c.mu.Unlock()
		return
	}
	running, fireHeld := c.running, c.fireHeld
	width := c.statusWidth
	c.mu.Unlock()

	s := c.target.Snapshot()
	line := fmt.Sprintf(
		"[%s %d/%d %s | RUN:%s FIRE:%s | X:%.2f Y:%.2f Z:%.2f ground:%t | YAW:%.1f PIT:%.1f | wave:%d%s]",
		s.Weapon, s.Ammo, s.Capacity, s.FireState,
		boolLabel(running),
		boolLabel(fireHeld),
		s.Position.X(), s.Position.Y(), s.Position.Z(),
		s.Grounded,
		s.Yaw, s.Pitch,
		s.Wave,
		promptLabel(s),
	)

	padding := ""
	if width > len(line) {
		padding = strings.Repeat(" ", width-len(line))
	}
	fmt.Fprintf(c.out, "\r%s%s", line, padding)

	c.mu.Lock()
	if len(line) > c.statusWidth {
		c.statusWidth = len(line)
	}
	c.mu.Unlock()
}

func promptLabel(s sim.Snapshot) string {
	switch {
	case s.ShopOpen:
		return " | SHOP"
	case s.Prompt != "":
		return " | " + s.Prompt
	default:
		return ""
	}
}

func (c *Console) press(update func(*character.Intent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	update(&c.pending)
}

func (c *Console) pulse(axis *float64, until *time.Time, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*axis = value
	*until = c.now().Add(c.movePulse)
}

func (c *Console) expirePulsesLocked(now time.Time) {
	if !c.moveYUntil.IsZero() && !now.Before(c.moveYUntil) {
		c.moveY = 0
		c.moveYUntil = time.Time{}
	}
	if !c.moveXUntil.IsZero() && !now.Before(c.moveXUntil) {
		c.moveX = 0
		c.moveXUntil = time.Time{}
	}
}

func (c *Console) toggleFire() {
	c.mu.Lock()
	c.fireHeld = !c.fireHeld
	if c.fireHeld {
		c.pending.FirePressed = true
	}
	held := c.fireHeld
	c.mu.Unlock()
	slog.Debug("debug trigger toggled", "held", held)
}

func (c *Console) toggleRunning() {
	c.mu.Lock()
	c.running = !c.running
	enabled := c.running
	c.mu.Unlock()
	slog.Debug("debug running toggled", "enabled", enabled)
}

func (c *Console) clearInput() {
	c.mu.Lock()
	c.pending = character.Intent{}
	c.running = false
	c.fireHeld = false
	c.moveX, c.moveY = 0, 0
	c.moveXUntil, c.moveYUntil = time.Time{}, time.Time{}
	c.mu.Unlock()
}

func (c *Console) isCommandMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandMode
}

func boolLabel(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
