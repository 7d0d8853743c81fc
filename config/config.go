package config

import (
	"fmt"
	"os"
	"time"

	json "github.com/json-iterator/go"
)

// ContentMode decides how much of a served file is scanned for template tags.
type ContentMode string

const (
	// Whole scans and emits every line of the file.
	Whole ContentMode = "whole"
	// FirstLine examines and emits only the first line, releasing the file right after.
	FirstLine ContentMode = "first-line"
)

type (
	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout bounds every single read from the client. A client staying silent
		// for longer than that stops the request parsing.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
		// WriteBufferSize is the size of the buffer the response body is collected in
		// before being flushed into the connection.
		WriteBufferSize int
	}

	Worker struct {
		// Root is the directory requested paths are resolved against.
		Root string
		// ServerName is sent in the Server header.
		ServerName string
		// ServerSignature replaces every <cs371server> line of a served file.
		ServerSignature string
		// DateLayout is the time layout used to replace every <cs371date> line.
		DateLayout string
		// Content selects the scan mode of served files.
		Content ContentMode
		// MaxLineSize limits a single request line. Longer lines stop the parsing.
		MaxLineSize int
	}
)

// Config holds settings used across the server.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET    NET
	Worker Worker
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            2 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
			WriteBufferSize:           4 * 1024,
		},
		Worker: Worker{
			Root:            ".",
			ServerName:      "webworker",
			ServerSignature: "webworker server.",
			DateLayout:      "02/01/06",
			Content:         Whole,
			MaxLineSize:     8 * 1024,
		},
	}
}

// file mirrors Config in a JSON-friendly form. Pointers tell absent fields apart, so
// only the present ones override the defaults.
type file struct {
	NET struct {
		ReadBufferSize            *int    `json:"read_buffer_size"`
		ReadTimeout               *string `json:"read_timeout"`
		AcceptLoopInterruptPeriod *string `json:"accept_loop_interrupt_period"`
		WriteBufferSize           *int    `json:"write_buffer_size"`
	} `json:"net"`
	Worker struct {
		Root            *string `json:"root"`
		ServerName      *string `json:"server_name"`
		ServerSignature *string `json:"server_signature"`
		DateLayout      *string `json:"date_layout"`
		Content         *string `json:"content"`
		MaxLineSize     *int    `json:"max_line_size"`
	} `json:"worker"`
}

// Load reads a JSON config file and applies it on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse applies a JSON document on top of Default().
func Parse(data []byte) (*Config, error) {
	var f file
	if err := json.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	setInt(&cfg.NET.ReadBufferSize, f.NET.ReadBufferSize)
	setInt(&cfg.NET.WriteBufferSize, f.NET.WriteBufferSize)
	setInt(&cfg.Worker.MaxLineSize, f.Worker.MaxLineSize)
	setString(&cfg.Worker.Root, f.Worker.Root)
	setString(&cfg.Worker.ServerName, f.Worker.ServerName)
	setString(&cfg.Worker.ServerSignature, f.Worker.ServerSignature)
	setString(&cfg.Worker.DateLayout, f.Worker.DateLayout)

	if err := setDuration(&cfg.NET.ReadTimeout, f.NET.ReadTimeout); err != nil {
		return nil, fmt.Errorf("config: net.read_timeout: %w", err)
	}

	if err := setDuration(&cfg.NET.AcceptLoopInterruptPeriod, f.NET.AcceptLoopInterruptPeriod); err != nil {
		return nil, fmt.Errorf("config: net.accept_loop_interrupt_period: %w", err)
	}

	if f.Worker.Content != nil {
		switch mode := ContentMode(*f.Worker.Content); mode {
		case Whole, FirstLine:
			cfg.Worker.Content = mode
		default:
			return nil, fmt.Errorf("config: worker.content: unknown mode %q", mode)
		}
	}

	return cfg, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *string) error {
	if src == nil {
		return nil
	}

	d, err := time.ParseDuration(*src)
	if err != nil {
		return err
	}

	*dst = d
	return nil
}
