package coresult_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/coresult"
)

const socketErr = "Failed to CreateSocket: SysErr: EINVAL Invalid argument"

// nextLine is the line following its call site.
func nextLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line + 1
}

type settingsReader struct {
	attempts int
	lines    map[string]int
}

func newSettingsReader() *settingsReader {
	return &settingsReader{lines: map[string]int{}}
}

func (s *settingsReader) CreateSocket() *coresult.Of[int, string] {
	s.attempts++
	if s.attempts%2 == 1 {
		return coresult.Failed[int](socketErr)
	}
	return coresult.Succeeded[string](42)
}

func (s *settingsReader) OpenSocket() *coresult.Of[int, string] {
	co := coresult.Begin[int, string]()
	s.lines["OpenSocket"] = nextLine()
	socket, ok := coresult.Await(co, coresult.OrPrepend(s.CreateSocket()))
	if !ok {
		return co.ShortCircuit()
	}
	return co.Return((2 + socket) * 2)
}

func (s *settingsReader) ConnectSocket() *coresult.Of[int, string] {
	co := coresult.Begin[int, string]()
	s.lines["ConnectSocket"] = nextLine()
	socket, ok := coresult.Await(co, coresult.OrPrepend(s.OpenSocket()))
	if !ok {
		return co.ShortCircuit()
	}
	return co.Return(socket)
}

func (s *settingsReader) ReadSettings() *coresult.Of[string, string] {
	co := coresult.Begin[string, string]()
	s.lines["ReadSettings"] = nextLine()
	if _, ok := coresult.Await(co, coresult.OrPrepend(s.ConnectSocket())); !ok {
		return co.ShortCircuit()
	}
	return co.ReturnSuccess(result.Success("Here is our settings"))
}

func TestOrPrepend_Breadcrumbs(t *testing.T) {
	t.Parallel()

	s := newSettingsReader()
	res := s.ReadSettings()

	want := fmt.Sprintf("Err(Failed to ReadSettings @ Line:%d: Failed to ConnectSocket @ Line:%d: "+
		"Failed to OpenSocket @ Line:%d: %s)",
		s.lines["ReadSettings"], s.lines["ConnectSocket"], s.lines["OpenSocket"], socketErr)

	require.True(t, res.IsErr())
	assert.Equal(t, want, res.String())
	assert.Equal(t, "ReadSettings", res.Name())
}

func TestOrPrepend_AlternatingAttempts(t *testing.T) {
	t.Parallel()

	s := newSettingsReader()
	for i := 0; i < 4; i++ {
		res := s.ReadSettings()
		if i%2 == 0 {
			require.True(t, res.IsErr(), "attempt %d", i)
			assert.Contains(t, res.String(), "Failed to ReadSettings @ Line:")
			continue
		}
		require.True(t, res.IsOk(), "attempt %d", i)
		assert.Equal(t, "Ok(Here is our settings)", res.String())
	}

	s = newSettingsReader()
	s.attempts = 1
	connected := s.ConnectSocket()
	require.True(t, connected.IsOk())
	assert.Equal(t, 88, connected.Ok())
}

func TestPropagate_Identity(t *testing.T) {
	t.Parallel()

	a := coresult.Failed[int]("a failed")

	reached := false
	b := func() *coresult.Of[string, string] {
		co := coresult.Begin[string, string]()
		if _, ok := coresult.Await(co, coresult.Propagate(a)); !ok {
			return co.ShortCircuit()
		}
		reached = true
		return co.Return("unreachable")
	}()

	require.True(t, b.IsErr())
	assert.False(t, reached, "code after a failed await must not run")
	assert.Equal(t, a.Err(), b.Err())
	assert.True(t, result.IsFailure(b.Result, result.Failure("a failed")))
}

func TestPropagate_SuccessResumes(t *testing.T) {
	t.Parallel()

	b := func() *coresult.Of[int, string] {
		co := coresult.Begin[int, string]()
		v, ok := coresult.Await(co, coresult.Propagate(coresult.Succeeded[string](20)))
		if !ok {
			return co.ShortCircuit()
		}
		return co.Return(v + 1)
	}()

	require.True(t, b.IsOk())
	assert.Equal(t, 21, b.Ok())
}

func TestOrReturn_Substitute(t *testing.T) {
	t.Parallel()

	run := func(src *coresult.Of[float64, string]) *coresult.Of[float64, int] {
		co := coresult.Begin[float64, int]()
		v, ok := coresult.Await(co, coresult.OrReturn(src, 5))
		if !ok {
			return co.ShortCircuit()
		}
		return co.Return(v * 2)
	}

	failed := run(coresult.Failed[float64]("anything"))
	require.True(t, failed.IsErr())
	assert.Equal(t, 5, failed.Err())

	ok := run(coresult.Succeeded[string](5.0))
	require.True(t, ok.IsOk())
	assert.Equal(t, 10.0, ok.Ok())
}

func TestOrReturnNewErr_Transform(t *testing.T) {
	t.Parallel()

	var seen string
	run := func(src *coresult.Of[float64, string]) *coresult.Of[float64, string] {
		co := coresult.Begin[float64, string]()
		v, ok := coresult.Await(co, coresult.OrReturnNewErr(src, func(existing string) string {
			seen = existing
			return "New Errorrrr"
		}))
		if !ok {
			return co.ShortCircuit()
		}
		return co.Return(v * 2)
	}

	failed := run(coresult.Failed[float64]("Err"))
	require.True(t, failed.IsErr())
	assert.Equal(t, "New Errorrrr", failed.Err())
	assert.Equal(t, "Err", seen)

	ok := run(coresult.Succeeded[string](5.0))
	require.True(t, ok.IsOk())
	assert.Equal(t, 10.0, ok.Ok())
}

type codedErr struct {
	Code int
}

func TestOrReturnNewErr_ChangesType(t *testing.T) {
	t.Parallel()

	res := func() *coresult.Of[int, codedErr] {
		co := coresult.Begin[int, codedErr]()
		v, ok := coresult.Await(co, coresult.OrReturnNewErr(coresult.Failed[int]("404"),
			func(string) codedErr { return codedErr{Code: 404} }))
		if !ok {
			return co.ShortCircuit()
		}
		return co.Return(v)
	}()

	require.True(t, res.IsErr())
	assert.Equal(t, codedErr{Code: 404}, res.Err())
}

func TestOrReturn_CopiesReplacement(t *testing.T) {
	t.Parallel()

	errReference := "ErrReference"
	run := func() *coresult.Of[int, string] {
		co := coresult.Begin[int, string]()
		v, ok := coresult.Await(co, coresult.OrReturn(coresult.Failed[int]("Err"), errReference))
		if !ok {
			return co.ShortCircuit()
		}
		return co.Return(v)
	}

	res := run()
	require.True(t, res.IsErr())
	assert.Equal(t, "ErrReference", res.Err())

	*res.ErrRef() = "changed"
	assert.Equal(t, "changed", res.Err())
	assert.Equal(t, "ErrReference", errReference)
}

func TestOrReturnNewErr_CopiesReference(t *testing.T) {
	t.Parallel()

	errReference := "ErrReference"
	res := func() *coresult.Of[int, string] {
		co := coresult.Begin[int, string]()
		v, ok := coresult.Await(co, coresult.OrReturnNewErr(coresult.Failed[int]("Err"),
			func(string) string { return errReference }))
		if !ok {
			return co.ShortCircuit()
		}
		return co.Return(v)
	}()

	require.True(t, res.IsErr())
	*res.ErrRef() = "changed"
	assert.Equal(t, "ErrReference", errReference)
}

type counter struct {
	N int
}

func TestAwaitRef_MutationVisibleOnSource(t *testing.T) {
	t.Parallel()

	src := coresult.Succeeded[string](counter{N: 1})
	res := func() *coresult.Of[int, string] {
		co := coresult.Begin[int, string]()
		ref, ok := coresult.AwaitRef(co, coresult.Propagate(src))
		if !ok {
			return co.ShortCircuit()
		}
		ref.N = 7
		return co.Return(ref.N)
	}()

	require.True(t, res.IsOk())
	assert.Equal(t, 7, src.Ok().N)
}

func TestAwait_CopiesValue(t *testing.T) {
	t.Parallel()

	src := coresult.Succeeded[string](counter{N: 1})
	co := coresult.Begin[int, string]()
	v, ok := coresult.Await(co, coresult.Propagate(src))
	require.True(t, ok)
	v.N = 7
	assert.Equal(t, 1, src.Ok().N)
	co.Return(v.N)
}

func TestVoid_AwaitAndFail(t *testing.T) {
	t.Parallel()

	res := func() *coresult.Void[float64] {
		co := coresult.Begin[result.Unit, float64]()
		if _, ok := coresult.Await(co, coresult.OrReturn(coresult.Ready(result.Void[float64]{}), 2.0)); !ok {
			return co.ShortCircuit()
		}
		return co.Fail(3)
	}()

	require.True(t, res.IsErr())
	assert.Equal(t, 3.0, res.Err())
	assert.Equal(t, "3", res.String())

	short := func() *coresult.Void[float64] {
		co := coresult.Begin[result.Unit, float64]()
		failed := coresult.Ready(result.FromFailure[result.Unit](result.Failure(1.0)))
		if _, ok := coresult.Await(co, coresult.OrReturn(failed, 2.0)); !ok {
			return co.ShortCircuit()
		}
		return co.ReturnSuccess(result.Succeed())
	}()

	require.True(t, short.IsErr())
	assert.Equal(t, 2.0, short.Err())

	fine := func() *coresult.Void[float64] {
		co := coresult.Begin[result.Unit, float64]()
		return co.ReturnSuccess(result.Succeed())
	}()
	assert.True(t, result.IsSuccess(fine.Result, result.Succeed()))
	assert.Equal(t, "Success", fine.String())
}

func TestOrPrepend_Options(t *testing.T) {
	t.Parallel()

	src := coresult.Failed[int]("Err")

	aw := coresult.OrPrepend(src, coresult.WithPrefix("qwe "), coresult.WithLocation("Manual", 7))
	require.False(t, aw.Ready())
	assert.Equal(t, "qwe Manual @ Line:7: Err", aw.Err())

	line := nextLine()
	aw = coresult.OrPrepend(src, coresult.WithPrefix("qwe "))
	assert.Equal(t, fmt.Sprintf("qwe TestOrPrepend_Options @ Line:%d: Err", line), aw.Err())

	line = nextLine()
	aw = prependHere(src)
	assert.Equal(t, fmt.Sprintf("Failed to TestOrPrepend_Options @ Line:%d: Err", line), aw.Err())
}

func prependHere(src *coresult.Of[int, string]) coresult.Awaiter[int, string] {
	return coresult.OrPrepend(src, coresult.WithCallerSkip(1))
}

type label string

func TestOrPrepend_NamedStringType(t *testing.T) {
	t.Parallel()

	aw := coresult.OrPrepend(coresult.Failed[int](label("bad")), coresult.WithLocation("F", 1))
	assert.Equal(t, label("Failed to F @ Line:1: bad"), aw.Err())
}

var errRefused = errors.New("connection refused")

func dial() *coresult.Of[int, error] {
	return coresult.FromError(0, errRefused)
}

func connect() *coresult.Of[string, error] {
	co := coresult.Begin[string, error]()
	fd, ok := coresult.Await(co, coresult.OrWrap(dial(), coresult.WithLocation("connect", 3)))
	if !ok {
		return co.ShortCircuit()
	}
	return co.Return(fmt.Sprint(fd))
}

func TestOrWrap_KeepsErrorChain(t *testing.T) {
	t.Parallel()

	res := connect()
	require.True(t, res.IsErr())
	assert.EqualError(t, res.Err(), "Failed to connect @ Line:3: connection refused")
	assert.ErrorIs(t, res.Err(), errRefused)

	ok := coresult.FromError(4, nil)
	require.True(t, ok.IsOk())
	assert.Equal(t, 4, ok.Ok())
}

func TestIndependentComputations(t *testing.T) {
	t.Parallel()

	left := coresult.Begin[int, string]()
	right := coresult.Begin[int, string]()

	_, ok := coresult.Await(left, coresult.Propagate(coresult.Failed[int]("left")))
	require.False(t, ok)
	require.True(t, left.Done())
	assert.False(t, right.Done())

	v, ok := coresult.Await(right, coresult.Propagate(coresult.Succeeded[string](1)))
	require.True(t, ok)
	res := right.Return(v)
	assert.True(t, res.IsOk())
	assert.NotEqual(t, left.ID(), right.ID())
}

func TestHandleMetadata(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	c := coresult.Succeeded[string](1)

	assert.Equal(t, "TestHandleMetadata", c.Name())
	assert.NotEqual(t, c.ID(), coresult.Succeeded[string](1).ID())
	assert.False(t, c.CreatedAt().Before(before))
	assert.Equal(t, time.UTC, c.CreatedAt().Location())

	p := coresult.Begin[int, string]()
	assert.Equal(t, "TestHandleMetadata", p.Name())
	assert.Equal(t, p.ID(), p.Return(1).ID())
}
