package jval

import (
	"io"
	"sync"
)

// Driver converts between JSON text and Values. It is the pluggable codec
// boundary: the default implementation is backed by go-json and may be
// swapped with SetDriver (see the drivers under source/).
type Driver interface {
	Decode(data []byte, opt DecodeOpt) (Value, error)
	Encode(v Value) ([]byte, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = defaultDriver{}
)

// SetDriver replaces the global driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = defaultDriver{}
	driverMu.Unlock()
}

// CurrentDriver returns the active driver.
func CurrentDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// DefaultDriver returns the go-json driver regardless of SetDriver.
func DefaultDriver() Driver { return defaultDriver{} }

type defaultDriver struct{}

func (defaultDriver) Decode(data []byte, opt DecodeOpt) (Value, error) { return Decode(data, opt) }
func (defaultDriver) Encode(v Value) ([]byte, error)                   { return v.MarshalJSON() }
func (defaultDriver) Name() string                                     { return "go-json" }

// Parse decodes JSON text with the active driver.
func Parse(data []byte, opts ...DecodeOpt) (Value, error) {
	return CurrentDriver().Decode(data, lastOpt(opts))
}

// ParseReader reads r to the end and decodes it with the active driver.
func ParseReader(r io.Reader, opts ...DecodeOpt) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, singleIssue(CodeParseError, "/", err)
	}
	return Parse(data, opts...)
}

// Marshal encodes v with the active driver.
func Marshal(v Value) ([]byte, error) { return CurrentDriver().Encode(v) }
