package app

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/logging"
)

// CreateLogger creates the application logger: console output at the
// configured level with sensitive values scrubbed. When a sender is given and
// the run belongs to a task, error logs flush the buffered log to the
// platform task.
func CreateLogger(config configuration.Configuration, out io.Writer, sender logging.TaskLogSender) *zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	var writer zerolog.LevelWriter = zerolog.MultiLevelWriter(console)
	writer = logging.NewScrubbingWriter(writer, logging.GetScrubDictFromConfig(config))

	if taskID := config.GetInt(configuration.TASK_ID); sender != nil && taskID != 0 {
		writer = logging.NewTaskLogWriter(logging.TaskLogWriterConfig{
			Sender:       sender,
			TaskID:       taskID,
			TriggerLevel: zerolog.ErrorLevel,
		}, writer)
	}

	logger := zerolog.New(writer).Level(logLevel(config)).With().Timestamp().Logger()
	return &logger
}

func logLevel(config configuration.Configuration) zerolog.Level {
	if config.GetBool(configuration.DEBUG) {
		return zerolog.DebugLevel
	}

	level, err := zerolog.ParseLevel(config.GetString(configuration.LOG_LEVEL))
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
