package debug

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Versifine/lowpoly/internal/character"
	"github.com/Versifine/lowpoly/internal/config"
	"github.com/Versifine/lowpoly/internal/physics"
	"github.com/Versifine/lowpoly/internal/sim"
)

type fakeTarget struct {
	snap     sim.Snapshot
	restarts int
	scene    *sim.Scene
}

func (f *fakeTarget) Snapshot() sim.Snapshot { return f.snap }
func (f *fakeTarget) Restart()               { f.restarts++ }
func (f *fakeTarget) Do(fn func(s *sim.Scene)) {
	if f.scene != nil {
		fn(f.scene)
	}
}

func newTestConsole(t *testing.T, target Target) (*Console, *bytes.Buffer, *time.Time) {
	t.Helper()
	out := &bytes.Buffer{}
	now := time.Unix(0, 0)
	c := NewConsole(target)
	c.out = out
	c.now = func() time.Time { return now }
	return c, out, &now
}

func feed(c *Console, keys string) {
	reader := bufio.NewReader(strings.NewReader(keys))
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		c.handleKey(reader, b)
	}
}

func TestIntent_OneShotKeysAreConsumed(t *testing.T) {
	c, _, _ := newTestConsole(t, &fakeTarget{})
	feed(c, "rfeq")

	in := c.Intent()
	if !in.Reload || !in.Interact || !in.NextWeapon || !in.PrevWeapon {
		t.Fatalf("intent = %+v, want reload/interact/next/prev", in)
	}
	if again := c.Intent(); again != (character.Intent{}) {
		t.Fatalf("second intent = %+v, want empty", again)
	}
}

func TestIntent_TriggerToggle(t *testing.T) {
	c, _, _ := newTestConsole(t, &fakeTarget{})

	feed(c, " ")
	in := c.Intent()
	if !in.FirePressed || !in.FireHeld {
		t.Fatalf("intent = %+v, want press edge and held", in)
	}
	in = c.Intent()
	if in.FirePressed || !in.FireHeld {
		t.Fatalf("intent = %+v, want held without press edge", in)
	}

	feed(c, " ")
	if in := c.Intent(); in.FireHeld || in.FirePressed {
		t.Fatalf("intent = %+v, want trigger released", in)
	}
}

func TestIntent_MovePulseExpires(t *testing.T) {
	c, _, now := newTestConsole(t, &fakeTarget{})
	feed(c, "wd]")

	in := c.Intent()
	if in.Move.X() != 1 || in.Move.Y() != 1 || !in.Running {
		t.Fatalf("intent = %+v, want forward-right running", in)
	}

	*now = now.Add(defaultMovePulse)
	in = c.Intent()
	if in.Move.X() != 0 || in.Move.Y() != 0 {
		t.Fatalf("move = %v after pulse, want zero", in.Move)
	}
	if !in.Running {
		t.Fatalf("running toggle did not persist")
	}

	feed(c, "sx")
	if in := c.Intent(); in.Move.Y() != 0 || in.Running {
		t.Fatalf("intent = %+v after clear", in)
	}
}

func TestHandleKey_EscapeAndArrows(t *testing.T) {
	c, _, _ := newTestConsole(t, &fakeTarget{})

	feed(c, "\x1b[C\x1b[C\x1b[A")
	in := c.Intent()
	if in.LookYaw != 2*yawStep || in.LookPitch != -pitchStep || in.Cancel {
		t.Fatalf("intent = %+v, want yaw +10 pitch -5", in)
	}

	feed(c, "\x1b")
	if in := c.Intent(); !in.Cancel {
		t.Fatalf("bare escape did not cancel")
	}
}

func TestCommands(t *testing.T) {
	scene, err := sim.NewScene(config.Default())
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	target := &fakeTarget{scene: scene, snap: sim.Snapshot{Weapon: "AR", Ammo: 12, Capacity: 30}}
	c, out, _ := newTestConsole(t, target)

	feed(c, ":tp 3 5 -2\r")
	if got := scene.Character.Body().Position(); got != (physics.Vec3{3, 5, -2}) {
		t.Fatalf("position = %v, want (3,5,-2)", got)
	}

	feed(c, ":face 90 10\r")
	if cam := scene.Character.Camera(); cam.Yaw() != 90 || cam.Pitch() != 10 {
		t.Fatalf("camera = %v/%v, want 90/10", cam.Yaw(), cam.Pitch())
	}

	feed(c, ":wave\r")
	if scene.Waves.Wave() != 1 {
		t.Fatalf("wave = %d, want 1", scene.Waves.Wave())
	}

	feed(c, ":restart\r")
	if target.restarts != 1 {
		t.Fatalf("restarts = %d, want 1", target.restarts)
	}

	out.Reset()
	feed(c, ":state\r")
	if !strings.Contains(out.String(), "ammo=12/30") {
		t.Fatalf("state output = %q", out.String())
	}

	out.Reset()
	feed(c, ":bogus\r")
	if !strings.Contains(out.String(), "unknown command: bogus") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestCommandMode_SwallowsKeys(t *testing.T) {
	c, out, _ := newTestConsole(t, &fakeTarget{})
	feed(c, ":rf\x1b")
	if in := c.Intent(); in != (character.Intent{}) {
		t.Fatalf("command text leaked into intent: %+v", in)
	}
	if !strings.Contains(out.String(), "command cancelled") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestStatusLine(t *testing.T) {
	c, out, _ := newTestConsole(t, &fakeTarget{snap: sim.Snapshot{Weapon: "AR", Ammo: 3, Capacity: 30, Prompt: "[F] Next Wave"}})
	c.renderStatusLine()
	line := out.String()
	if !strings.Contains(line, "AR 3/30 idle") || !strings.Contains(line, "[F] Next Wave") {
		t.Fatalf("status = %q", line)
	}
}
