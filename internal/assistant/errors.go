package assistant

import "errors"

// ErrNoAPIKey reports that no OpenAI API key could be resolved. The message
// tells the user both ways to provide one.
var ErrNoAPIKey = errors.New(
	"no OpenAI API key configured. Run: fubon ai config set openai-key <KEY>, or set OPENAI_API_KEY")
