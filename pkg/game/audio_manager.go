package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 44100

// 音效ID
const (
	SoundScore = "score"
	SoundWin   = "win"
	SoundLose  = "lose"
)

// tone 音效的一个音符
type tone struct {
	freq     float64 // 赫兹
	duration float64 // 秒
}

// soundBank 合成音效定义
var soundBank = map[string][]tone{
	SoundScore: {{880, 0.08}, {1320, 0.12}},
	SoundWin:   {{523.25, 0.12}, {659.25, 0.12}, {783.99, 0.12}, {1046.5, 0.3}},
	SoundLose:  {{392, 0.2}, {311.13, 0.2}, {261.63, 0.45}},
}

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存比赛音效（得分、胜利、失败）
//   - 作为 MatchObserver 在比赛事件时播放
//
// context 为 nil 时所有播放都是空操作（无头运行、测试）
type AudioManager struct {
	context      *audio.Context
	soundPlayers map[string]*audio.Player
	volume       float64
	enabled      bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context) *AudioManager {
	return &AudioManager{
		context:      ctx,
		soundPlayers: make(map[string]*audio.Player),
		volume:       0.6,
		enabled:      true,
	}
}

// SharedAudioContext 返回进程内唯一的音频上下文（Ebitengine 只允许创建一个）
func SharedAudioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || am.context == nil || !am.enabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetVolume 设置音量（0.0 - 1.0）
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// Volume 当前音量
func (am *AudioManager) Volume() float64 { return am.volume }

// SetEnabled 音效开关
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// Enabled 音效是否开启
func (am *AudioManager) Enabled() bool { return am.enabled }

// OnScored 得分音效
func (am *AudioManager) OnScored(score, total int) {
	if score < total {
		am.PlaySound(SoundScore)
	}
}

// OnMatchOver 结算音效
func (am *AudioManager) OnMatchOver(outcome Outcome) {
	switch outcome {
	case OutcomeWin:
		am.PlaySound(SoundWin)
	case OutcomeLose:
		am.PlaySound(SoundLose)
	}
}

func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, ok := am.soundPlayers[soundID]; ok {
		return player
	}

	tones, ok := soundBank[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: unknown sound %s", soundID)
		return nil
	}

	player := am.context.NewPlayerFromBytes(synthesize(tones, SampleRate))
	am.soundPlayers[soundID] = player
	return player
}

// synthesize 把音符序列合成为 16 位小端立体声 PCM
// 每个音符带短促的起音和指数衰减，避免爆音
func synthesize(tones []tone, sampleRate int) []byte {
	total := 0
	for _, t := range tones {
		total += int(t.duration * float64(sampleRate))
	}

	buf := make([]byte, 0, total*4)
	attack := int(0.005 * float64(sampleRate))
	for _, t := range tones {
		n := int(t.duration * float64(sampleRate))
		for i := 0; i < n; i++ {
			env := math.Exp(-4 * float64(i) / float64(n))
			if i < attack {
				env *= float64(i) / float64(attack)
			}
			v := math.Sin(2*math.Pi*t.freq*float64(i)/float64(sampleRate)) * env * 0.5
			sample := uint16(int16(v * math.MaxInt16))
			buf = binary.LittleEndian.AppendUint16(buf, sample) // L
			buf = binary.LittleEndian.AppendUint16(buf, sample) // R
		}
	}
	return buf
}
