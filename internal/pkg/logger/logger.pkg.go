package logger

import (
	"io"
	"log"
	"os"
)

var (
	Debug   = log.New(io.Discard, "[DEBUG]\t", log.Ldate|log.Ltime|log.Lshortfile)
	Info    = log.New(io.Discard, "[INFO]\t", log.Ldate|log.Ltime)
	Warning = log.New(io.Discard, "[WARNING]\t", log.Ldate|log.Ltime|log.Lshortfile)
	Error   = log.New(io.Discard, "[ERROR]\t", log.Ldate|log.Ltime|log.Lshortfile)
	HTTP    = log.New(io.Discard, "[HTTP]\t", log.Ldate|log.Ltime)
)

// Setup points every logger at stdout. Until it is called the loggers
// discard their output, so importing the builder from a test stays quiet.
func Setup() {
	SetupWithWriter(os.Stdout)
}

func SetupWithWriter(w io.Writer) {
	HTTP.SetOutput(w)
	Info.SetOutput(w)
	Warning.SetOutput(w)
	Debug.SetOutput(w)
	Error.SetOutput(w)
}

// Silence discards Debug and Info output and keeps warnings and errors.
func Silence() {
	Debug.SetOutput(io.Discard)
	Info.SetOutput(io.Discard)
	HTTP.SetOutput(io.Discard)
}
