package main

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/lowpoly/internal/character"
)

// script is the input of a headless session: walk, sprint, empty the
// magazine in bursts, reload and switch weapons, repeating every period
// frames.
type script struct {
	frame int
}

const scriptPeriod = 240

func newScript() *script {
	return &script{}
}

func (s *script) Intent() character.Intent {
	f := s.frame % scriptPeriod
	s.frame++

	var in character.Intent
	switch {
	case f < 60:
		in.Move = mgl64.Vec2{0, 1}
		in.Running = f >= 30
	case f < 120:
		in.FireHeld = true
		in.FirePressed = f == 60
		in.LookYaw = 0.5
	case f == 130:
		in.Reload = true
	case f < 200:
		in.Move = mgl64.Vec2{0, -1}
	case f == 210:
		in.NextWeapon = true
	}
	return in
}
