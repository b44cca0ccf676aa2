// Package logger provides structured logging using zerolog.
//
// Loggers are values handed to the client rather than process globals; a
// library must not change the host application's log level. The default is
// a no-op logger.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(cfg, "mws").WithComponent("client")
//	log.Debug("call completed", logger.Fields(logger.FieldAction, "GetReportList"))
package logger
