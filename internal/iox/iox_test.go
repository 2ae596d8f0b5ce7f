package iox

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadAllContext(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		data, err := ReadAllContext(context.Background(), strings.NewReader("date,Israel\n"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "date,Israel\n" {
			t.Fatal("unexpected data", string(data))
		}
	})

	t.Run("on read error", func(t *testing.T) {
		expected := errors.New("mocked error")
		r := &mockableReader{MockRead: func(b []byte) (int, error) {
			return 0, expected
		}}
		if _, err := ReadAllContext(context.Background(), r); !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("with cancelled context", func(t *testing.T) {
		block := make(chan struct{})
		defer close(block)
		r := &mockableReader{MockRead: func(b []byte) (int, error) {
			<-block
			return 0, io.EOF
		}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := ReadAllContext(ctx, r); !errors.Is(err, context.Canceled) {
			t.Fatal("unexpected error", err)
		}
	})
}

// mockableReader is an [io.Reader] whose Read is a function.
type mockableReader struct {
	MockRead func(b []byte) (int, error)
}

func (r *mockableReader) Read(b []byte) (int, error) {
	return r.MockRead(b)
}
