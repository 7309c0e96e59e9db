package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

const (
	dialTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
	probeTimeout = 2 * time.Second
)

// Printer sends raw ESC/POS bytes to a thermal receipt printer. Transports
// open and close the device per job; there is no long-lived connection.
type Printer interface {
	Print(data []byte) error
	// IsConnected reports whether the device is reachable right now.
	IsConnected() bool
}

// New selects a transport by kind: "usb" writes to a character device file,
// "network" dials a raw TCP port (most printers listen on 9100), "none" or
// empty discards output for environments without hardware.
func New(kind, devicePath, address string) (Printer, error) {
	switch kind {
	case "usb":
		if devicePath == "" {
			return nil, fmt.Errorf("printer: usb transport needs a device path")
		}
		return &usbPrinter{path: devicePath}, nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: network transport needs an address")
		}
		return &networkPrinter{address: address}, nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown transport %q (use usb, network, or none)", kind)
	}
}

// NewNullPrinter returns a printer that discards everything. Used as the
// fallback when the configured transport cannot be constructed.
func NewNullPrinter() Printer {
	return nullPrinter{}
}

type usbPrinter struct {
	path string
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

type networkPrinter struct {
	address string
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: dial %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, probeTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

type nullPrinter struct{}

func (nullPrinter) Print([]byte) error { return nil }
func (nullPrinter) IsConnected() bool  { return false }
