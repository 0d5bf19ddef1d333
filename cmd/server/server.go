package main

import (
	"context"
	"net"
	"net/http"
	"time"
)

// newServer builds the HTTP server. Request contexts derive from a base context
// that is cancelled when Shutdown starts, so long-lived streams end with it.
func newServer(addr string, handler http.Handler) *http.Server {
	base, cancel := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	server.RegisterOnShutdown(cancel)
	return server
}
