package protocol

import (
	"encoding/json"
	"testing"

	utils "github.com/minaorangina/milliondoubt/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdJSON(t *testing.T) {
	t.Run("commands travel by name", func(t *testing.T) {
		msg := InboundMessage{PlayerID: "p1", Command: Doubt, Call: true}

		data, err := json.Marshal(msg)
		utils.AssertNoError(t, err)
		assert.Contains(t, string(data), `"Doubt"`)

		var got InboundMessage
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, Doubt, got.Command)
		assert.True(t, got.Call)
	})

	t.Run("every command has a name both ways", func(t *testing.T) {
		for cmd, name := range CmdNames {
			assert.Equal(t, cmd, NameToCmd[name])
			assert.Equal(t, name, cmd.String())
		}
	})

	t.Run("rejects an unknown name", func(t *testing.T) {
		var cmd Cmd
		err := json.Unmarshal([]byte(`"Shuffle"`), &cmd)
		assert.ErrorIs(t, err, ErrUnknownCmd)
	})

	t.Run("rejects an unknown command", func(t *testing.T) {
		_, err := json.Marshal(Cmd(99))
		assert.ErrorIs(t, err, ErrUnknownCmd)
	})
}
