package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCommands_FencedBlock(t *testing.T) {
	// Arrange
	reply := "To buy one lot of TSMC at 580:\n\n" +
		"```bash\nfubon stock buy 2330 1000 --price 580\n```\n\n" +
		"Check it afterwards with:\n\n```\nfubon stock orders\n```"

	// Act
	got := ExtractCommands(reply)

	// Assert
	assert.Equal(t, []string{
		"fubon stock buy 2330 1000 --price 580",
		"fubon stock orders",
	}, got)
}

func TestExtractCommands_InlineBackticks(t *testing.T) {
	reply := "Run `fubon login status` to see the session, then `fubon market quote 2330`."

	got := ExtractCommands(reply)

	assert.Equal(t, []string{
		"fubon login status",
		"fubon market quote 2330",
	}, got)
}

func TestExtractCommands_StripsShellPrompt(t *testing.T) {
	reply := "```\n$ fubon stock orders\n```"

	got := ExtractCommands(reply)

	assert.Equal(t, []string{"fubon stock orders"}, got)
}

func TestExtractCommands_DeduplicatesAndIgnoresNonCommands(t *testing.T) {
	reply := "Use `fubon stock orders`. Again: `fubon stock orders`. Also `ls -la` and plain text."

	got := ExtractCommands(reply)

	assert.Equal(t, []string{"fubon stock orders"}, got)
}

func TestExtractCommands_NoCommands(t *testing.T) {
	got := ExtractCommands("The Taiwan market opens at 09:00 Taipei time.")

	assert.Empty(t, got)
}

func TestIsTradingCommand(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{cmd: "fubon stock buy 2330 1000 --price 580", want: true},
		{cmd: "fubon stock sell 2330 1000", want: true},
		{cmd: "fubon stock cancel A1234", want: true},
		{cmd: "fubon stock modify-price A1234 590", want: true},
		{cmd: "fubon stock batch-cancel A1 A2", want: true},
		{cmd: `fubon stock batch-modify-price [{"order_no":"A1","price":"575"}]`, want: true},
		{cmd: `fubon stock batch-create [{"symbol":"2330"}]`, want: true},
		{cmd: "fubon stock order-detail A1234", want: false},
		{cmd: "fubon stock batch-list", want: false},
		{cmd: "fubon condition trail-list", want: false},
		{cmd: "fubon futopt buy TXFL5 1 --price 18000", want: true},
		{cmd: "fubon futopt cancel B7", want: true},
		{cmd: "fubon condition create {}", want: true},
		{cmd: "fubon condition cancel g-123", want: true},
		{cmd: "fubon stock orders", want: false},
		{cmd: "fubon market quote 2330", want: false},
		{cmd: "fubon futopt inventories", want: false},
		{cmd: "fubon condition list", want: false},
		{cmd: "fubon login status", want: false},
		{cmd: "fubon account inventory", want: false},
		{cmd: "ls -la", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTradingCommand(tt.cmd))
		})
	}
}
