package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultKey is the storage slot holding the serialized task collection.
const DefaultKey = "tasks"

// Config locates the task store and the log output.
type Config interface {
	BasePath() string
	Key() string
	LogFile() string
	LogLevel() string
}

// LoadConfig reads .tasks.yaml from $TASKS_CONFIG_PATH or the working
// directory. TASKS_* environment variables override file values.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.tasks.db")
	v.SetDefault("key", DefaultKey)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetConfigName(".tasks") // .yaml is implicit
	v.SetEnvPrefix("TASKS")
	v.AutomaticEnv()

	if override := os.Getenv("TASKS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	logFile, err := homedir.Expand(v.GetString("log_file"))
	if err != nil {
		return nil, err
	}
	key := v.GetString("key")
	if key == "" {
		key = DefaultKey
	}

	return &fileConfig{
		Path:  filepath.Clean(path),
		Slot:  key,
		Log:   logFile,
		Level: v.GetString("log_level"),
	}, nil
}

type fileConfig struct {
	Path  string `json:"path"`
	Slot  string `json:"key"`
	Log   string `json:"log_file"`
	Level string `json:"log_level"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Key() string      { return f.Slot }
func (f *fileConfig) LogFile() string  { return f.Log }
func (f *fileConfig) LogLevel() string { return f.Level }
