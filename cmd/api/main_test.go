package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServer(t *testing.T) {
	h := http.NewServeMux()
	srv := newServer(":10000", h)

	assert.Equal(t, ":10000", srv.Addr)
	assert.Equal(t, h, srv.Handler)
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)
	assert.Zero(t, srv.WriteTimeout, "delivery keeps the transport's timeouts")
}
