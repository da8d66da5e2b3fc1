// Package server provides the programmable WebSocket mock server.
//
// A Server owns a TCP listener, accepts WebSocket handshakes, and drives one
// session per connection from the shared stub registry. Each session captures
// its handshake headers, replays the matching connect and periodical stubs,
// and answers inbound frames with the best-matching message stub. Outbound
// messages are delivered in order of their availability instants: a session
// keeps a time-ordered queue and bounds its waiting by the queue head, so a
// short-delay reply can overtake an older long-delay one.
//
// Usage:
//
//	srv := server.New(server.WithPort(0))
//	if err := srv.Start(); err != nil {
//		...
//	}
//	defer srv.Stop(context.Background())
//
//	srv.Register(stub.OnConnect().ReturningText("hello"))
//	// dial srv.URL() from the test client
//
// The package uses github.com/coder/websocket for the underlying WebSocket
// protocol implementation.
package server
