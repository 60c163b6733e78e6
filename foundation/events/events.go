// Package events allows for the registering and receiving of engine
// events, such as mining progress and transfer commits.
package events

import (
	"fmt"
	"sync"
)

// messageBuffer sizes each listener channel. A message is dropped if the
// websocket receiver is not ready to receive, so the buffer gives the
// receiver enough slack to not lose events during a slow send.
const messageBuffer = 100

// Events maintains a mapping of unique ids and channels so goroutines
// can register and receive engine events.
type Events struct {
	listeners map[string]chan string
	mu        sync.RWMutex
}

// New constructs an Events value for registering and receiving events.
func New() *Events {
	return &Events{
		listeners: make(map[string]chan string),
	}
}

// Shutdown closes and removes all channels that were provided by the
// call to Acquire.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.listeners {
		delete(evt.listeners, id)
		close(ch)
	}
}

// Acquire takes a unique id and returns a channel that can be used to
// receive events.
func (evt *Events) Acquire(id string) chan string {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	if ch, exists := evt.listeners[id]; exists {
		return ch
	}

	evt.listeners[id] = make(chan string, messageBuffer)
	return evt.listeners[id]
}

// Release closes and removes the channel that was provided by the call
// to Acquire.
func (evt *Events) Release(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.listeners[id]
	if !exists {
		return fmt.Errorf("id %q does not exist", id)
	}

	delete(evt.listeners, id)
	close(ch)
	return nil
}

// Send signals a message to every registered channel. Send will not
// block waiting for a receiver on any given channel.
func (evt *Events) Send(s string) {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	for _, ch := range evt.listeners {
		select {
		case ch <- s:
		default:
		}
	}
}
