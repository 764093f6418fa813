package libvirt

import (
	"context"
	"testing"
	"time"
)

// TestConnect tests basic connection functionality.
// This is an integration test that requires libvirt to be running.
func TestConnect(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	c, err := Connect("", 0)
	if err != nil {
		t.Skipf("libvirt not available: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	}()

	if err := c.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if c.Socket() != DefaultSocket {
		t.Errorf("Socket() = %q, want %q", c.Socket(), DefaultSocket)
	}

	info, err := c.NodeInfo()
	if err != nil {
		t.Fatalf("NodeInfo failed: %v", err)
	}
	if info.CPUs <= 0 {
		t.Errorf("NodeInfo().CPUs = %d, want > 0", info.CPUs)
	}
}

// TestConnect_InvalidSocket tests connection failure with invalid socket.
func TestConnect_InvalidSocket(t *testing.T) {
	_, err := Connect("/nonexistent/socket", 100*time.Millisecond)
	if err == nil {
		t.Fatal("expected error connecting to nonexistent socket, got nil")
	}
}

// TestDial_Cancellation tests context cancellation.
func TestDial_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Dial(ctx, "/nonexistent/socket", 100*time.Millisecond)
	if err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
}

// TestDisconnectedClient tests every query on a client with no connection.
func TestDisconnectedClient(t *testing.T) {
	c := &Client{}

	if err := c.Ping(); err == nil {
		t.Error("expected error from Ping on disconnected client")
	}
	if _, err := c.NodeInfo(); err == nil {
		t.Error("expected error from NodeInfo on disconnected client")
	}
	if _, err := c.Version(); err == nil {
		t.Error("expected error from Version on disconnected client")
	}
	if _, err := c.Hostname(); err == nil {
		t.Error("expected error from Hostname on disconnected client")
	}
	if _, err := c.ActiveInterfaces(); err == nil {
		t.Error("expected error from ActiveInterfaces on disconnected client")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on disconnected client = %v, want nil", err)
	}
}

func TestCString(t *testing.T) {
	tests := []struct {
		name string
		in   []int8
		want string
	}{
		{name: "terminated", in: []int8{'x', '8', '6', 0, 'z'}, want: "x86"},
		{name: "unterminated", in: []int8{'a', 'r', 'm'}, want: "arm"},
		{name: "empty", in: []int8{0}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cString(tt.in); got != tt.want {
				t.Errorf("cString() = %q, want %q", got, tt.want)
			}
		})
	}
}
