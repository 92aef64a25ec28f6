package config_test

import (
	"testing"

	"font-catalog/core/config"

	"github.com/stretchr/testify/assert"
)

func TestFonts_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Dirs", config.SourceDirs, true},
		{"Bucket", config.SourceBucket, true},
		{"Database", config.SourceDatabase, true},
		{"Invalid", "registry", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := config.Fonts{Source: tt.source}
			assert.Equal(t, tt.want, f.IsValidSource())
		})
	}
}

func TestFonts_DirList(t *testing.T) {
	f := config.Fonts{Dirs: "/usr/share/fonts, /home/u/.fonts ,"}
	assert.Equal(t, []string{"/usr/share/fonts", "/home/u/.fonts"}, f.DirList())

	assert.Nil(t, config.Fonts{}.DirList())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, config.SourceDirs, cfg.Fonts.Source)
	assert.Equal(t, "info", cfg.Log.Level)
}
