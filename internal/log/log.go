/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a logging abstraction backed by zap.
package log

import "go.uber.org/zap"

// Logger defines an interface for logging messages.
type Logger interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
	Fatalf(format string, args ...interface{})
	Fatalln(args ...interface{})
}

type logger struct {
	log Logger
}

// The four loggers used across this module.
var (
	Write = &logger{}
	Merge = &logger{}
	Stats = &logger{}
	CLI   = &logger{}
)

type zapLogger struct{ s *zap.SugaredLogger }

func (z *zapLogger) Printf(format string, args ...interface{}) { z.s.Infof(format, args...) }
func (z *zapLogger) Println(args ...interface{})               { z.s.Info(args...) }
func (z *zapLogger) Fatalf(format string, args ...interface{}) { z.s.Fatalf(format, args...) }
func (z *zapLogger) Fatalln(args ...interface{})               { z.s.Fatal(args...) }

// SetWriteLogger sets the writer's logger.
func SetWriteLogger(l Logger) { Write.log = l }

// SetMergeLogger sets the merger's logger.
func SetMergeLogger(l Logger) { Merge.log = l }

// SetStatsLogger sets the stats logger.
func SetStatsLogger(l Logger) { Stats.log = l }

// SetCLILogger sets the CLI logger.
func SetCLILogger(l Logger) { CLI.log = l }

func zapBacked(name string, z *zap.Logger) Logger {
	return &zapLogger{s: z.Sugar().Named(name)}
}

// SetDefaultLoggers wires all four loggers to a development zap
// configuration.
func SetDefaultLoggers() {
	z, err := zap.NewDevelopment()
	if err != nil {
		z = zap.NewNop()
	}
	SetWriteLogger(zapBacked("write", z))
	SetMergeLogger(zapBacked("merge", z))
	SetStatsLogger(zapBacked("stats", z))
	SetCLILogger(zapBacked("cli", z))
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetWriteLogger(nil)
	SetMergeLogger(nil)
	SetStatsLogger(nil)
	SetCLILogger(nil)
}

func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

func (l *logger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Fatalf(format, args...)
}

func (l *logger) Fatalln(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Fatalln(args...)
}
