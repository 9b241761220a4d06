package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger logs to stderr in console format, or to a rotated file in json
// format when file isn't empty. closeLog flushes the logger and closes the file.
func newLogger(level, file string) (logger *zap.Logger, closeLog func() error, err error) {
	lvl := zap.NewAtomicLevel()
	if err = lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, errors.Wrapf(err, "parsing log level %q", level)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if file == "" {
		logger = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), lvl))
		return logger, logger.Sync, nil
	}
	w := &lumberjack.Logger{Filename: file, MaxSize: 16, MaxBackups: 3}
	logger = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), lvl))
	return logger, func() error {
		return errors.CombineErrors(logger.Sync(), w.Close())
	}, nil
}
