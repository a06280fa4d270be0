package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display    DisplayConfig     `json:"display"`
	Player     PlayerConfig      `json:"player"`
	Characters []CharacterConfig `json:"characters"`
	StartScene string            `json:"startScene"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type PlayerConfig struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Speed  float64        `json:"speed"` // pixels per millisecond
	Spawn  PositionConfig `json:"spawn"`
}

// CharacterConfig is one entry of the switchable character roster.
type CharacterConfig struct {
	Name   string  `json:"name"`
	Speed  float64 `json:"speed"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ApplyDefaults fills zero-valued fields with playable defaults so a
// sparse game.json still boots.
func (c *GameConfig) ApplyDefaults() {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 640
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 480
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
	if c.Display.Framerate <= 0 {
		c.Display.Framerate = 60
	}
	if c.Display.Title == "" {
		c.Display.Title = "Wander"
	}
	if c.Player.Width <= 0 {
		c.Player.Width = 32
	}
	if c.Player.Height <= 0 {
		c.Player.Height = 32
	}
	if c.Player.Speed <= 0 {
		c.Player.Speed = 0.2
	}
}
