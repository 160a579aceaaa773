package wire

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/klippy/internal/crypto"
	"go.klb.dev/klippy/internal/message"
)

func pipe(t *testing.T, key *crypto.Key) (*Conn, *Conn) {
	t.Helper()
	a, b := net.Pipe()
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})
	return New(a, key), New(b, key)
}

func TestPlainRoundTrip(t *testing.T) {
	client, server := pipe(t, nil)

	go func() {
		_ = client.WriteMsg(&message.Message{Type: message.TypePaste, Index: 3, ID: "abc"})
	}()

	msg, err := server.ReadMsg()
	require.NoError(t, err)
	assert.Equal(t, message.TypePaste, msg.Type)
	assert.Equal(t, 3, msg.Index)
	assert.Equal(t, "abc", msg.ID)
}

func TestSealedRoundTrip(t *testing.T) {
	key, err := crypto.DeriveKey("token")
	require.NoError(t, err)
	client, server := pipe(t, key)

	text := strings.Repeat("x", 100_000)
	go func() {
		_ = server.WriteMsg(&message.Message{
			Type:  message.TypeItems,
			Items: []message.Item{{Index: 0, Kind: "text", Text: text}},
		})
	}()

	msg, err := client.ReadMsg()
	require.NoError(t, err)
	require.Len(t, msg.Items, 1)
	assert.Equal(t, text, msg.Items[0].Text)
}

func TestWrongTokenFails(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	k1, _ := crypto.DeriveKey("one")
	k2, _ := crypto.DeriveKey("two")

	go func() { _ = New(a, k1).WriteMsg(&message.Message{Type: message.TypeList}) }()

	_, err := New(b, k2).ReadMsg()
	assert.ErrorIs(t, err, crypto.ErrOpen)
}

func TestPlainReaderRejectsSealedLine(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	k, _ := crypto.DeriveKey("one")

	go func() { _ = New(a, k).WriteMsg(&message.Message{Type: message.TypeList}) }()

	_, err := New(b, nil).ReadMsg()
	assert.Error(t, err)
}
