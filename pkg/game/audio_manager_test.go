package game

import "testing"

func TestSynthesizeLength(t *testing.T) {
	tones := []tone{{440, 0.1}, {880, 0.05}}
	pcm := synthesize(tones, 1000)

	// 100 + 50 帧，每帧 2 声道 × 2 字节
	if len(pcm) != 150*4 {
		t.Errorf("Expected %d bytes, got %d", 150*4, len(pcm))
	}
}

func TestSoundBankComplete(t *testing.T) {
	for _, id := range []string{SoundScore, SoundWin, SoundLose} {
		if len(soundBank[id]) == 0 {
			t.Errorf("Expected sound %s to be defined", id)
		}
	}
}

func TestAudioManagerWithoutContextIsSilent(t *testing.T) {
	am := NewAudioManager(nil)
	if am.PlaySound(SoundWin) {
		t.Error("Expected PlaySound to be a no-op without an audio context")
	}
	// 观察者回调不应 panic
	am.OnScored(1, 4)
	am.OnMatchOver(OutcomeLose)

	var nilManager *AudioManager
	if nilManager.PlaySound(SoundScore) {
		t.Error("Expected nil manager to be silent")
	}
}
