package natsutil

import (
	"testing"

	"github.com/nats-io/nats.go"
)

func TestHeaderCarrier_SetGet(t *testing.T) {
	msg := &nats.Msg{}
	c := (*headerCarrier)(msg)

	if c.Get("traceparent") != "" {
		t.Error("expected empty value on fresh carrier")
	}
	c.Set("traceparent", "00-abc-def-01")
	if got := c.Get("traceparent"); got != "00-abc-def-01" {
		t.Errorf("Get = %q", got)
	}
	if len(c.Keys()) != 1 {
		t.Errorf("Keys = %v", c.Keys())
	}
}

func TestHeaderCarrier_NilHeaderKeys(t *testing.T) {
	c := (*headerCarrier)(&nats.Msg{})
	if keys := c.Keys(); len(keys) != 0 {
		t.Errorf("Keys on nil header = %v", keys)
	}
}
