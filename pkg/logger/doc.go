// Package logger builds *slog.Logger values with functional options and keeps
// attribute names consistent across the module.
//
// The validator package never requires a logger: it discards output unless a
// logger is supplied with validator.WithLogger. This package is the
// convenience factory used when one is wanted, for example from
// validator.Config.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithComponent("signup-form"),
//	)
//	v := validator.NewEntity(validator.WithLogger(log))
//
// # Attributes
//
// Helpers such as Field, Assertion and ErrorCount return slog.Attr values with
// fixed keys. Error returns an empty attribute for a nil error, so it can be
// passed unconditionally:
//
//	log.Info("validation finished", logger.ErrorCount(v.Count()), logger.Error(err))
package logger
