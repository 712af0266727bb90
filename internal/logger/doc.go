// Package logger wraps zap with a global sugared logger and context helpers.
//
// Features and commands never hold a logger field: they receive a context,
// name it with WithName/WithKV and log through the package-level helpers
// (InfoKV, Debugf, ...), which pull the scoped logger back out of the context.
package logger
