package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	// SampleRate is the sample rate of the audio context
	SampleRate = 44100
	// Volume is the playback volume of every effect
	Volume = 0.3
)

// Effect is a sound played in response to a game event.
type Effect int

const (
	EffectMove Effect = iota
	EffectRotate
	EffectDrop
	EffectLock
	EffectClear
	EffectLevelUp
	EffectGameOver
)

// Note is a single square wave tone.
type Note struct {
	Frequency float64
	Duration  time.Duration
}

var effects = map[Effect][]Note{
	EffectMove:    {{Frequency: 220, Duration: 25 * time.Millisecond}},
	EffectRotate:  {{Frequency: 330, Duration: 30 * time.Millisecond}},
	EffectDrop:    {{Frequency: 110, Duration: 60 * time.Millisecond}},
	EffectLock:    {{Frequency: 147, Duration: 40 * time.Millisecond}},
	EffectClear:   {{Frequency: 523, Duration: 70 * time.Millisecond}, {Frequency: 784, Duration: 110 * time.Millisecond}},
	EffectLevelUp: {{Frequency: 523, Duration: 80 * time.Millisecond}, {Frequency: 659, Duration: 80 * time.Millisecond}, {Frequency: 784, Duration: 160 * time.Millisecond}},
	EffectGameOver: {
		{Frequency: 392, Duration: 180 * time.Millisecond},
		{Frequency: 330, Duration: 180 * time.Millisecond},
		{Frequency: 262, Duration: 360 * time.Millisecond},
	},
}

// Player plays the game's sound effects. A muted Player never opens an audio device.
type Player struct {
	players map[Effect]*audio.Player
}

func NewPlayer(muted bool) *Player {
	p := &Player{
		players: make(map[Effect]*audio.Player),
	}
	if muted {
		return p
	}

	context := audio.NewContext(SampleRate)
	for effect, notes := range effects {
		player := context.NewPlayerFromBytes(Synthesize(notes, SampleRate))
		player.SetVolume(Volume)
		p.players[effect] = player
	}
	return p
}

// Play restarts the effect from the beginning.
func (p *Player) Play(effect Effect) {
	if p == nil {
		return
	}
	player, ok := p.players[effect]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Warn("Failed to rewind sound effect %d: %v", effect, err)
		return
	}
	player.Play()
}

// Synthesize renders notes as 16-bit little endian stereo PCM. Every note
// fades out linearly so consecutive notes do not click.
func Synthesize(notes []Note, sampleRate int) []byte {
	var samples int
	for _, n := range notes {
		samples += int(n.Duration.Seconds() * float64(sampleRate))
	}

	b := make([]byte, 0, samples*4)
	for _, n := range notes {
		count := int(n.Duration.Seconds() * float64(sampleRate))
		for i := 0; i < count; i++ {
			phase := math.Mod(float64(i)*n.Frequency/float64(sampleRate), 1)
			v := 1.0
			if phase >= 0.5 {
				v = -1.0
			}
			envelope := 1 - float64(i)/float64(count)
			s := int16(v * envelope * math.MaxInt16 * 0.5)
			b = binary.LittleEndian.AppendUint16(b, uint16(s))
			b = binary.LittleEndian.AppendUint16(b, uint16(s))
		}
	}
	return b
}
