/*
Package server exposes one editing session to a host editor over msgpack IPC.

The host writes a stream of msgpack-encoded requests to stdin and reads one
msgpack-encoded reply per request from stdout. Messages are handled
synchronously and every state reply carries the time the operation took in
microseconds. Logs go to stderr.

# IPC

On startup the server emits:

	{"status": "ready"}

Requests name an operation and the fields it needs:

	{"id": "1", "op": "set", "t": "Debug.Lo", "c": 8}
	{"id": "2", "op": "type", "ch": "("}
	{"id": "3", "op": "key", "k": "down"}
	{"id": "4", "op": "state"}

set replaces the text and caret (caret defaults to the end of the text),
type inserts one character at the caret through the auto-pair hook, key sends
one of up, down, enter, tab or esc to the open suggestion list, backspace
deletes before the caret and stats reports catalog sizes.

Every editing operation replies with the resulting state:

	{"id": "1", "t": "Debug.Lo", "c": 8, "w": "Lo", "x": "debug",
	 "s": [{"w": "Log", "r": 1}, {"w": "LogWarning", "r": 2}],
	 "i": 0, "o": true, "h": "Debug.Lo", "tt": 41}

Failed requests reply with an error and keep the server running:

	{"id": "2", "e": "'ch' must be a single character", "c": 400}
*/
package server

// Request is one host operation
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Text  string `msgpack:"t,omitempty"`
	Caret *int   `msgpack:"c,omitempty"`
	Char  string `msgpack:"ch,omitempty"`
	Key   string `msgpack:"k,omitempty"`
}

// Suggestion - minimal suggestion entry
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// StateResponse - editor state after an operation
type StateResponse struct {
	ID          string       `msgpack:"id"`
	Text        string       `msgpack:"t"`
	Caret       int          `msgpack:"c"`
	Word        string       `msgpack:"w"`
	ContextKey  string       `msgpack:"x"`
	Suggestions []Suggestion `msgpack:"s"`
	Selected    int          `msgpack:"i"`
	Open        bool         `msgpack:"o"`
	Highlighted string       `msgpack:"h,omitempty"`
	Consumed    bool         `msgpack:"k,omitempty"` // key op only
	TimeTaken   int64        `msgpack:"tt"`
}

// StatsResponse - catalog and highlighter sizes
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"st"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// ReadyMessage is sent once before the first request is read
type ReadyMessage struct {
	Status string `msgpack:"status"`
}
