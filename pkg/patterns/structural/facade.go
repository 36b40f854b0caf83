package structural

import "strings"

// The playback subsystems are unexported: callers go through the facade.

type videoFile struct{}

func (videoFile) showVideo() string { return "show video" }

type audioFile struct{}

func (audioFile) showAudio() string { return "show audio" }

type videoAudioMixer struct{}

func (videoAudioMixer) mix() string { return "mix video and audio" }

// VideoFacade exposes one coarse operation over the playback
// subsystems, invoking them in a fixed sequence.
type VideoFacade struct {
	video videoFile
	audio audioFile
	mixer videoAudioMixer
}

// NewVideoFacade creates the facade and its subsystems.
func NewVideoFacade() *VideoFacade {
	return &VideoFacade{}
}

// Show runs video, audio, and mixing in order and returns their
// combined output, one line per subsystem.
func (f *VideoFacade) Show() string {
	return strings.Join([]string{
		f.video.showVideo(),
		f.audio.showAudio(),
		f.mixer.mix(),
	}, "\n")
}
