package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type tokenObj struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func Test_jwtEngine_GenerateAndVerify(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(time.Minute, tokenObj{ID: "user1", Name: "alice"})
	require.NoError(t, err)

	var obj tokenObj
	require.NoError(t, engine.Verify(token, &obj))
	require.Equal(t, "user1", obj.ID)
	require.Equal(t, "alice", obj.Name)
}

func Test_jwtEngine_VerifyExpired(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(-time.Minute, tokenObj{ID: "user1"})
	require.NoError(t, err)

	var obj tokenObj
	require.Error(t, engine.Verify(token, &obj))
}

func Test_jwtEngine_VerifyWrongSecret(t *testing.T) {
	token, err := NewTokenEngine("secret").Generate(time.Minute, tokenObj{ID: "user1"})
	require.NoError(t, err)

	var obj tokenObj
	require.Error(t, NewTokenEngine("another").Verify(token, &obj))
}
