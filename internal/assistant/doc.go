// Package assistant provides the AI trading assistant: one-shot questions,
// an interactive chat screen, and extraction of runnable fubon commands from
// model replies.
//
// The assistant never executes a trading command on its own. Extracted
// commands are shown to the user and run only on explicit request.
package assistant
