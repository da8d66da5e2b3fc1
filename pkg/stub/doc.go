// Package stub defines the declarative rules a mock server is programmed
// with, and the shared registry sessions look them up in.
//
// A Stub binds a trigger to an outbound response. Connect stubs fire when a
// client completes its handshake, Message stubs answer inbound frames, and
// Periodical stubs emit an ordered sequence of messages over the life of a
// session. Selection is most-specific-wins: every stub scores an input by
// summing its satisfied matcher scores on top of a base of 1, any failed
// matcher gates the stub to 0, and the registry picks the first stub whose
// score strictly exceeds every earlier one.
//
// Stubs are immutable after construction and shared by all sessions.
package stub
