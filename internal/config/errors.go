package config

import "errors"

// ErrUnknownKey indicates a `fubon ai config` key that the assistant
// settings file does not recognize.
var ErrUnknownKey = errors.New("unknown config key (known keys: openai-key, ai-model, base-url)")
