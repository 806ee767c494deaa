package main

import (
	"flag"
	"fmt"
	"os"

	splitter "github.com/eric-pierce/ics-splitter"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		maxSize  float64
		logFile  string
		logLevel string
	)
	flag.Float64Var(&maxSize, "max-size", splitter.DefaultMaxSizeMB, "Maximum size of each split file in MB")
	flag.StringVar(&logFile, "logfile", "", "File to log to")
	flag.StringVar(&logLevel, "loglevel", "info", "log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] INPUT_CALENDAR\n\nSplit an ICS file into multiple smaller files.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid log level")
		os.Exit(1)
	}
	logrus.SetLevel(level)

	if logFile != "" {
		logFH, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to open log file: ", err)
			os.Exit(1)
		}
		defer logFH.Close()
		logrus.SetOutput(logFH)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputFile := flag.Arg(0)

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: Input file '%s' does not exist.\n", inputFile)
		os.Exit(1)
	}

	parts, err := splitter.New(splitter.MaxSize(maxSize)).Split(inputFile)
	for _, part := range parts {
		fmt.Printf("Created %s with %d events (%.2f MB)\n", part.Name, part.Events, part.SizeMB())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error occurred while splitting the file: %s\n", err)
		os.Exit(1)
	}

	if len(parts) == 0 {
		fmt.Println("No events found in the calendar file.")
	}
	fmt.Println("Split operation completed successfully.")
}
