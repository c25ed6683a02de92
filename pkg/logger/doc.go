// Package logger builds *slog.Logger instances for the generators in this
// module and provides attribute helpers so log keys stay consistent.
//
// New takes functional options selecting the output format (JSON or text),
// the minimum level, the destination writer, and static attributes attached to
// every record. Config mirrors those options as environment variables
// (LOG_LEVEL, LOG_FORMAT) for use with the config package.
//
//	log := logger.New(
//		logger.WithTextFormatter(),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("league")),
//	)
//	log.Debug("league generated", logger.Locale("usa"), logger.Size(16))
//
// Library code that receives no logger should use Discard rather than
// slog.Default, so that generating leagues stays silent unless asked.
package logger
