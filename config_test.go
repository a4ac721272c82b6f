package errfs

import (
	"os"
	"testing"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				ExposeOriginalError: false,
				UnknownPathLabel:    "<unknown>",
			},
		},
		{
			name: "expose original error",
			envVars: map[string]string{
				"BEAVER_ERRFS_EXPOSE_ORIGINAL_ERROR": "true",
			},
			want: Config{
				ExposeOriginalError: true,
				UnknownPathLabel:    "<unknown>",
			},
		},
		{
			name: "custom unknown path label",
			envVars: map[string]string{
				"BEAVER_ERRFS_UNKNOWN_PATH_LABEL": "(no path)",
			},
			want: Config{
				ExposeOriginalError: false,
				UnknownPathLabel:    "(no path)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			got, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("GetConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestSetExposeOriginalError(t *testing.T) {
	t.Cleanup(func() { SetExposeOriginalError(false) })

	SetExposeOriginalError(true)
	if !ExposeOriginalError() {
		t.Error("ExposeOriginalError() = false after enabling")
	}
	SetExposeOriginalError(false)
	if ExposeOriginalError() {
		t.Error("ExposeOriginalError() = true after disabling")
	}
}
