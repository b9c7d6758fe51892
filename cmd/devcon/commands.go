// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"sync"

	"devcon-cli/internal/command"
)

// world is the demo program state the built-in commands act on. A real
// embedding registers its own command types against its own state.
var world = struct {
	sync.Mutex
	Gold     uint
	Entities map[string]uint
	Paused   bool
}{Entities: make(map[string]uint)}

type (
	// SetGold sets the player's gold: "setgold 100" or "setgold --gold 100".
	SetGold struct {
		Gold uint `json:"gold"`
	}

	// Spawn adds entities: "spawn (kind : \"slime\", count : 3)"-style
	// nested literals or plain "spawn \"slime\" 3".
	Spawn struct {
		Kind  string `json:"kind"`
		Count uint   `json:"count"`
	}

	// Teleport moves the player: "teleport 10.5 -3.25".
	Teleport struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}

	// Pause toggles the simulation: "pause true".
	Pause struct {
		Paused bool `json:"paused"`
	}
)

func init() {
	command.Register[SetGold]("SetGold")
	command.Register[Spawn]("Spawn")
	command.Register[Teleport]("Teleport")
	command.Register[Pause]("Pause")
}

// Run implements command.Command.
func (c *SetGold) Run(context.Context) error {
	world.Lock()
	defer world.Unlock()
	world.Gold = c.Gold
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("gold set to %d", c.Gold)))
	return nil
}

// Run implements command.Command.
func (c *Spawn) Run(context.Context) error {
	if c.Kind == "" {
		return fmt.Errorf("spawn needs a kind")
	}
	count := c.Count
	if count == 0 {
		count = 1
	}
	world.Lock()
	defer world.Unlock()
	world.Entities[c.Kind] += count
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("spawned %d %s (total %d)", count, c.Kind, world.Entities[c.Kind])))
	return nil
}

// Run implements command.Command.
func (c *Teleport) Run(context.Context) error {
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("teleported to (%g, %g)", c.X, c.Y)))
	return nil
}

// Run implements command.Command.
func (c *Pause) Run(context.Context) error {
	world.Lock()
	defer world.Unlock()
	world.Paused = c.Paused
	state := "resumed"
	if c.Paused {
		state = "paused"
	}
	fmt.Println(SuccessStyle.Render("simulation " + state))
	return nil
}
