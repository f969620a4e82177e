// Package logflags maps the --log-output components of the command
// line to per-component loggers.
package logflags

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var any = false
var decoder = false
var dump = false

var logOut io.WriteCloser

// Any returns true if any logging is enabled.
func Any() bool {
	return any
}

// Decoder returns true if the leaf decoder should log every raw query
// it issues.
func Decoder() bool {
	return decoder
}

// DecoderLogger returns a logger for the leaf decoder.
func DecoderLogger() Logger {
	return makeFlaggableLogger(decoder, Fields{"layer": "decoder"})
}

// Dump returns true if dump capture and replay should log.
func Dump() bool {
	return dump
}

// DumpLogger returns a logger for dump capture and replay.
func DumpLogger() Logger {
	return makeFlaggableLogger(dump, Fields{"layer": "dump"})
}

func makeFlaggableLogger(flag bool, fields Fields) Logger {
	level := logrus.ErrorLevel
	if flag {
		level = logrus.DebugLevel
	}
	return makeLogger(level, fields)
}

func makeLogger(level logrus.Level, fields Fields) Logger {
	if loggerFactory != nil {
		return loggerFactory(level, fields, logOut)
	}
	logger := logrus.New()
	logger.Formatter = textFormatterInstance
	if logOut != nil {
		logger.Out = logOut
	} else {
		logger.Out = os.Stderr
	}
	logger.Level = level
	return &logrusLogger{logger.WithFields(logrus.Fields(fields))}
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets the logging flags based on the contents of logstr. If
// logDest is non-empty logs are written there instead of standard
// error; a numeric logDest is interpreted as a file descriptor.
func Setup(logFlag bool, logstr, logDest string) error {
	if logDest != "" {
		n, err := strconv.Atoi(logDest)
		if err == nil {
			logOut = os.NewFile(uintptr(n), "cpuid-logs")
		} else {
			fh, err := os.Create(logDest)
			if err != nil {
				return fmt.Errorf("could not create log file: %v", err)
			}
			logOut = fh
		}
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(ioutil.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "decoder"
	}
	any = true
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "decoder":
			decoder = true
		case "dump":
			dump = true
		}
	}
	return nil
}

// Close closes the file loggers are writing to, if one was set with
// the log destination flag.
func Close() {
	if logOut != nil {
		logOut.Close()
	}
}
