package discovery

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAdvertiserConfig(t *testing.T) {
	cfg := DefaultAdvertiserConfig()
	assert.Equal(t, "", cfg.Interface)
	assert.Equal(t, 120*time.Second, cfg.TTL)
}

func TestInstanceName(t *testing.T) {
	t.Run("PassThrough", func(t *testing.T) {
		assert.Equal(t, "My OSC Server", InstanceName("My OSC Server"))
	})

	t.Run("FallbackIsUnique", func(t *testing.T) {
		first := InstanceName("")
		second := InstanceName("")
		assert.True(t, strings.HasPrefix(first, "oscquery-"), "got %q", first)
		assert.NotEqual(t, first, second)
	})

	t.Run("TruncatesToDNSLabel", func(t *testing.T) {
		long := strings.Repeat("x", 100)
		assert.Len(t, InstanceName(long), MaxInstanceNameLen)
	})
}

func TestStopWithoutAdvertise(t *testing.T) {
	a, err := NewMDNSAdvertiser(DefaultAdvertiserConfig())
	assert.NoError(t, err)

	// Nothing advertised yet; Stop must be a harmless no-op, and
	// calling it again must stay one.
	a.Stop()
	a.Stop()
}

func TestServiceTypes(t *testing.T) {
	// The service types are part of the OSCQuery proposal; clients
	// hard-code them, so they must never change.
	assert.Equal(t, "_oscjson._tcp", ServiceTypeOSCQuery)
	assert.Equal(t, "_osc._udp", ServiceTypeOSC)
	assert.Equal(t, "local", Domain)
}
