package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the tunable runtime options. Everything astronomical lives
// in the fixed tables below; settings only cover the window and recording.
type Settings struct {
	Window    WindowSettings    `json:"window"`
	Recording RecordingSettings `json:"recording"`
}

type WindowSettings struct {
	MaxWidth     int32 `json:"maxWidth"`
	HeightMargin int32 `json:"heightMargin"`
	TargetFPS    int32 `json:"targetFps"`
}

type RecordingSettings struct {
	OutputDir  string `json:"outputDir"`
	MP4        bool   `json:"mp4"`
	GIF        bool   `json:"gif"`
	ClipLength int    `json:"clipLengthSeconds"`
}

// DefaultSettings returns the built-in defaults used when no settings.json
// is present.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			MaxWidth:     1200,
			HeightMargin: 80,
			TargetFPS:    60,
		},
		Recording: RecordingSettings{
			OutputDir:  "recordings",
			MP4:        true,
			GIF:        false,
			ClipLength: 5,
		},
	}
}

// LoadSettings reads the given settings file, falling back to defaults when
// it does not exist.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %v", path, err)
	}

	return settings, nil
}
