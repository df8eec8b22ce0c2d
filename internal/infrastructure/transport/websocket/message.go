// Package websocket carries page commands between the serve hub and page agents.
package websocket

import (
	"encoding/json"
	"errors"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/domain/entity"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Agent to hub.
	MessageTypePageOpened    MessageType = "PAGE_OPENED"
	MessageTypePageNavigated MessageType = "PAGE_NAVIGATED"
	MessageTypePageFocused   MessageType = "PAGE_FOCUSED"
	MessageTypePageClosed    MessageType = "PAGE_CLOSED"
	MessageTypeReply         MessageType = "REPLY"

	// Hub to agent.
	MessageTypeCommand   MessageType = "COMMAND"
	MessageTypeProvision MessageType = "PROVISION"
)

// Error codes carried in Envelope.Error.
const (
	ErrorCodeNoReceiver = "no_receiver"
)

// Envelope is the frame for all WebSocket communication. Requests and their
// replies share ID.
type Envelope struct {
	ID     string          `json:"id,omitempty"`
	Type   MessageType     `json:"type"`
	PageID entity.PageID   `json:"page_id,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// PageMessage is the payload of PAGE_OPENED, PAGE_NAVIGATED and PROVISION.
type PageMessage struct {
	URL string `json:"url"`
}

// EncodeMessage creates an envelope with data marshaled into it.
func EncodeMessage(env Envelope, data any) ([]byte, error) {
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		env.Data = raw
	}
	return json.Marshal(env)
}

// DecodeMessage parses a raw frame.
func DecodeMessage(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// errorCode maps a handler error to the code sent back to the hub.
func errorCode(err error) string {
	if errors.Is(err, port.ErrNoReceiver) {
		return ErrorCodeNoReceiver
	}
	return err.Error()
}

// replyError maps a reply's error code back to an error.
func replyError(code string) error {
	switch code {
	case "":
		return nil
	case ErrorCodeNoReceiver:
		return port.ErrNoReceiver
	default:
		return errors.New(code)
	}
}
