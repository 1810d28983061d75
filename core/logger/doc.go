// Package logger records interpreter session events as newline delimited JSON
// and aggregates them into reports.
package logger
