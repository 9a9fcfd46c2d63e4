package utils

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	filename "github.com/keepeye/logrus-filename"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/t-tomalak/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logLevel           string
	logFilename        string
	logAlsoToStderr    bool
	logMaxSizeMB       int
	logMaxBackups      int
	logCollectionLevel string
)

func init() {
	flag.StringVar(&logLevel, "log_level", "info", "log level")
	flag.StringVar(&logFilename, "log_filename", "", "log filename, empty logs to stdout")
	flag.BoolVar(&logAlsoToStderr, "log_also_to_stderr", false, "log also to stderr")
	flag.IntVar(&logMaxSizeMB, "log_max_size_mb", 128, "rotate the log file after this size")
	flag.IntVar(&logMaxBackups, "log_max_backups", 10, "rotated log files to keep")
	flag.StringVar(&logCollectionLevel, "log_collection_levels", "", "comma separated levels tagged with the collection name, empty tags all")
}

func parseLevels(s string) ([]log.Level, error) {
	var levels []log.Level
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		level, err := log.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func logOutput() io.Writer {
	if logFilename == "" {
		return os.Stdout
	}

	var output io.Writer = &lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    logMaxSizeMB,
		MaxAge:     7,
		MaxBackups: logMaxBackups,
		LocalTime:  true,
	}
	if logAlsoToStderr {
		output = io.MultiWriter(output, os.Stderr)
	}
	return output
}

func InitLog() {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		fmt.Printf("parse log level %v failed: %v\n", logLevel, err)
		os.Exit(1)
	}
	collectionLevels, err := parseLevels(logCollectionLevel)
	if err != nil {
		fmt.Printf("parse log collection levels %v failed: %v\n", logCollectionLevel, err)
		os.Exit(1)
	}

	log.SetLevel(level)
	log.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		ForceFormatting: true,
	})
	log.AddHook(NewHook(collectionLevels...))

	filenameHook := filename.NewHook()
	filenameHook.Field = "line"
	log.AddHook(filenameHook)

	log.SetOutput(logOutput())
}
