package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-editor/kk/internal/input/mode"
)

type fakeEnv struct {
	mode     mode.Mode
	quit     bool
	messages []string
	bindings map[mode.Mode][]string
}

func (e *fakeEnv) Mode() mode.Mode { return e.mode }

func (e *fakeEnv) SetMode(m mode.Mode) error {
	e.mode = m
	return nil
}

func (e *fakeEnv) Quit() { e.quit = true }

func (e *fakeEnv) Notify(msg string) { e.messages = append(e.messages, msg) }

func (e *fakeEnv) Bindings(m mode.Mode) []string { return e.bindings[m] }

func TestExec(t *testing.T) {
	env := &fakeEnv{}
	called := false
	c := New("probe", "test command", func(Env) error {
		called = true
		return nil
	})

	require.NoError(t, c.Exec(env))
	assert.True(t, called)
	assert.Equal(t, "probe", c.String())
}

func TestExecRecoversPanic(t *testing.T) {
	c := New("boom", "", func(Env) error { panic("bad") })
	err := c.Exec(&fakeEnv{})
	assert.ErrorIs(t, err, ErrPanic)
}

func TestExecWithoutFunction(t *testing.T) {
	c := &Command{Name: "empty"}
	assert.ErrorIs(t, c.Exec(&fakeEnv{}), ErrInvalid)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	env := &fakeEnv{}
	var ran []string
	record := func(name string, err error) *Command {
		return New(name, "", func(Env) error {
			ran = append(ran, name)
			return err
		})
	}
	failure := errors.New("disk full")

	err := Run(env, []*Command{
		record("first", nil),
		record("second", failure),
		record("third", nil),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "second", execErr.Command.Name)
	assert.Equal(t, 1, execErr.Index)
	assert.Equal(t, "second: disk full", err.Error())
	assert.Equal(t, []string{"first", "second"}, ran)
}

func TestRunEmpty(t *testing.T) {
	assert.NoError(t, Run(&fakeEnv{}, nil))
}

func TestNames(t *testing.T) {
	cmds := []*Command{New("a", "", nil), New("b", "", nil)}
	assert.Equal(t, []string{"a", "b"}, Names(cmds))
}
