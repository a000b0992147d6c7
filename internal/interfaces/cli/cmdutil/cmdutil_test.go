package cmdutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "skylink/internal/shared/errors"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []string{"ID", "NAME"}, [][]string{{"1", "Basic"}, {"12", "Pro"}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "1   Basic", lines[1])
	assert.Equal(t, "12  Pro", lines[2])
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fields(&buf, [2]string{"Plan", "Pro"}, [2]string{"Days Left", "3 days"}))

	assert.Equal(t, "Plan:       Pro\nDays Left:  3 days\n", buf.String())
}

func TestPrompter_ReadsSequentialLines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(&out, strings.NewReader("secret\nsecret2\n"))

	first, err := p.Secret("Password: ")
	require.NoError(t, err)
	second, err := p.Secret("Confirm: ")
	require.NoError(t, err)

	assert.Equal(t, "secret", first)
	assert.Equal(t, "secret2", second)
	assert.Equal(t, "Password: Confirm: ", out.String())
}

func TestPrompter_ValueOrSkipsPrompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(&out, strings.NewReader("typed\n"))

	v, err := p.ValueOr("flag", "Email: ")
	require.NoError(t, err)
	assert.Equal(t, "flag", v)
	assert.Empty(t, out.String())
}

func TestUserError(t *testing.T) {
	err := UserError(apperrors.NewNetworkError(errors.New("dial tcp: refused")))
	assert.EqualError(t, err, apperrors.MsgCannotConnect)

	plain := errors.New("boom")
	assert.Same(t, plain, UserError(plain))
}
