package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder for the given arena
func NewRecorder(arena string, frameRate int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   "1.0",
			Arena:     arena,
			StartTime: time.Now().Format(time.RFC3339),
			FrameRate: frameRate,
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input FrameInput) {
	if !r.recording {
		return
	}
	input.F = len(r.data.Frames)
	r.data.Frames = append(r.data.Frames, input)
}

// SetChecksum stores the trajectory checksum reached at the last frame
func (r *Recorder) SetChecksum(sum string) {
	r.data.Checksum = sum
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
