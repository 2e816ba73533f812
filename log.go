package bytebuffer

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// buffers are used from any goroutine, so the logger is swapped atomically and
// only the writer list needs a lock
var (
	logging    atomic.Bool
	logger     atomic.Pointer[zap.Logger]
	logMu      sync.Mutex
	logWriters = []zapcore.WriteSyncer{os.Stdout}
)

var logEncoding = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeName:     zapcore.FullNameEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging turns logging of out of range accesses, drains and mapped file
// operations on or off. It is off by default. It is safe to call while buffers
// are in use.
func EnableLogging(enable bool) {
	logging.Store(enable)
}

// AddLogWriter adds w to the writers logs go to
func AddLogWriter(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	logWriters = append(logWriters, zapcore.AddSync(w))
	rebuildLogger()
}

// SetLogWriters replaces the writers logs go to, standard output by default
func SetLogWriters(writers ...io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	logWriters = make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		logWriters = append(logWriters, zapcore.AddSync(w))
	}
	rebuildLogger()
}

// rebuildLogger must be called with logMu held
func rebuildLogger() {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(logEncoding),
		zap.CombineWriteSyncers(logWriters...),
		zapcore.InfoLevel,
	)
	logger.Store(zap.New(core).Named("bytebuffer"))
}

// logFor returns the logger for one part of the package, named after it, or nil
// while logging is disabled
func logFor(part string) *zap.Logger {
	if !logging.Load() {
		return nil
	}
	return logger.Load().Named(part)
}

func init() {
	logMu.Lock()
	rebuildLogger()
	logMu.Unlock()

	if err := initConfig(); err != nil {
		// configuration problems are reported whether logging is enabled or not
		logger.Load().Named("config").Error("error reading configuration",
			zap.String("path", ConfPath),
			zap.Error(err),
		)
	}
}
