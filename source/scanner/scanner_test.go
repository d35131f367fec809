package scanner

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := bufio.NewScanner(strings.NewReader("the quick brown fox"))
	s.Split(bufio.ScanWords)

	iter := New(s)
	got := []string{}
	for iter.Next(ctx) {
		got = append(got, iter.Get())
	}

	assert.NoError(iter.Error())
	assert.EqualValues([]string{"the", "quick", "brown", "fox"}, got)
}

func TestScannerLines(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	iter := New(bufio.NewScanner(strings.NewReader("one\ntwo\nthree\n")))
	got := []string{}
	for iter.Next(ctx) {
		got = append(got, iter.Get())
	}

	assert.NoError(iter.Error())
	assert.EqualValues([]string{"one", "two", "three"}, got)
}

// fakeScanner scripts Scan/Text/Err behaviour for failure injection.
type fakeScanner struct {
	tokens   []string
	pos      int
	err      error
	panicMsg any
}

func (f *fakeScanner) Scan() bool {
	if f.panicMsg != nil {
		panic(f.panicMsg)
	}
	if f.pos >= len(f.tokens) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeScanner) Text() string {
	return f.tokens[f.pos-1]
}

func (f *fakeScanner) Err() error {
	return f.err
}

func TestScannerError(t *testing.T) {
	assert := assert.New(t)

	wantErr := errors.New("read failed")
	iter := New(&fakeScanner{err: wantErr})
	assert.False(iter.Next(context.Background()))
	assert.ErrorIs(iter.Error(), wantErr)
}

func TestScannerPanic(t *testing.T) {
	assert := assert.New(t)

	iter := New(&fakeScanner{panicMsg: "token too long"})
	assert.False(iter.Next(context.Background()))

	var tooMany ErrTooManyTokens
	assert.ErrorAs(iter.Error(), &tooMany)
	assert.Contains(iter.Error().Error(), "token too long")
}

func TestScannerPanicWithError(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("scanner stuck")
	iter := New(&fakeScanner{panicMsg: cause})
	assert.False(iter.Next(context.Background()))

	var tooMany ErrTooManyTokens
	assert.ErrorAs(iter.Error(), &tooMany)
	assert.ErrorIs(iter.Error(), cause)
}

func TestScannerContextCancelled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	iter := New(&fakeScanner{tokens: []string{"a"}})
	assert.False(iter.Next(ctx))
	assert.ErrorIs(iter.Error(), context.Canceled)
}
