package jsoncodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/KirkDiggler/arena-api/internal/pkg/jsoncodec"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(jsoncodec.Name)
	require.NotNil(t, c)
	assert.Equal(t, "json", c.Name())
}

func TestCodecRoundTrip(t *testing.T) {
	type joinRequest struct {
		PlayerID string `json:"player_id"`
	}

	c := jsoncodec.Codec{}
	data, err := c.Marshal(&joinRequest{PlayerID: "p1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"player_id":"p1"}`, string(data))

	var out joinRequest
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, "p1", out.PlayerID)
}
