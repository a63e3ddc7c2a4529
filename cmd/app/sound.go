package main

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Collision chime
const (
	chimeFrequency = 660.0
	chimeSeconds   = 0.25
	chimeVolume    = 0.3
)

// Chime is a short tone played when the car hits something.
type Chime struct {
	player *audio.Player
}

func NewChime(ctx *audio.Context) *Chime {
	return &Chime{player: ctx.NewPlayerFromBytes(sinePCM(ctx.SampleRate(), chimeFrequency, chimeSeconds))}
}

// Play restarts the chime from the beginning. A nil Chime is silent.
func (c *Chime) Play() {
	if c == nil {
		return
	}
	if err := c.player.Rewind(); err != nil {
		return
	}
	c.player.Play()
}

// sinePCM renders a fading sine as 16-bit little-endian stereo samples.
func sinePCM(sampleRate int, freq, seconds float64) []byte {
	n := int(float64(sampleRate) * seconds)
	buf := make([]byte, n*4)
	for i := range n {
		fade := 1 - float64(i)/float64(n)
		v := chimeVolume * fade * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], s)
		binary.LittleEndian.PutUint16(buf[4*i+2:], s)
	}
	return buf
}
