package core

import (
	"encoding/json"
	"fmt"
	"io"
)

// successEnvelope and errorEnvelope are separate types so that an emitted
// document can never carry both data and error, and success can never
// disagree with which field is populated.
type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Emitter writes response envelopes and streaming events. Production code
// binds it to stdout; tests bind it to a buffer.
type Emitter struct {
	w io.Writer
}

// NewEmitter returns an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Success normalizes data and writes the success envelope as one indented
// JSON document. The data key is always present, even when data is nil.
func (e *Emitter) Success(data any) error {
	return e.write(successEnvelope{Success: true, Data: Normalize(data)})
}

// Failure writes the error envelope carrying err's message.
func (e *Emitter) Failure(err error) error {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return e.write(errorEnvelope{Success: false, Error: msg})
}

// Event writes one normalized value as a single compact JSON line for
// streaming commands. Each line is independently parseable; there is no
// enclosing array and no trailing delimiter beyond the newline.
func (e *Emitter) Event(v any) error {
	raw, err := json.Marshal(Normalize(v))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	raw = append(raw, '\n')
	if _, err = e.w.Write(raw); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

func (e *Emitter) write(envelope any) error {
	raw, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	raw = append(raw, '\n')
	if _, err = e.w.Write(raw); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}
