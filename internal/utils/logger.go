package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. Full detail goes to a rotated file
// under dataPath; the console only sees warnings so command output on
// stdout stays clean. Every event carries the run id of this invocation.
func NewLogger(debug bool, dataPath string) zerolog.Logger {
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dataPath, "bbgen.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}

	consoleLevel := zerolog.WarnLevel
	if debug {
		consoleLevel = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr}

	writer := zerolog.MultiLevelWriter(
		fileWriter,
		levelWriter{w: console, min: consoleLevel},
	)

	return zerolog.New(writer).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

type levelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (lw levelWriter) Write(p []byte) (int, error) {
	return lw.w.Write(p)
}

func (lw levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < lw.min {
		return len(p), nil
	}
	return lw.w.Write(p)
}
