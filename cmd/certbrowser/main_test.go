package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/certbrowser/internal/certificates"
	"github.com/jask/certbrowser/internal/config"
)

func plainClient(t *testing.T, status int, body string) *certificates.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return certificates.NewClient(srv.URL, time.Second)
}

const plainBody = `{"todoOk":true,"mensaje":"","data":[{"idAreaCertificacion":1,"nombre":"Cert A","oTipoCertificacion":{"nombre":"Type X"}}]}`

func TestRunPlainExitCodes(t *testing.T) {
	ctx := context.Background()

	require.Equal(t, 0, runPlain(ctx, plainClient(t, http.StatusOK, plainBody), "", "", 80))
	require.Equal(t, 0, runPlain(ctx, plainClient(t, http.StatusOK, plainBody), "cert", "", 80))
	require.Equal(t, 0, runPlain(ctx, plainClient(t, http.StatusOK, plainBody), "zzz", "", 80))
	require.Equal(t, 2, runPlain(ctx, plainClient(t, http.StatusOK, plainBody), "  ", "", 80))
	require.Equal(t, 1, runPlain(ctx, plainClient(t, http.StatusNotFound, "missing"), "", "", 80))
	require.Equal(t, 1, runPlain(ctx, plainClient(t, http.StatusOK, `{"todoOk":false,"mensaje":"caido"}`), "", "", 80))
}

// blockingFetcher waits for its context and reports it once called.
type blockingFetcher struct {
	called chan context.Context
}

func (f *blockingFetcher) Fetch(ctx context.Context) ([]certificates.Record, error) {
	f.called <- ctx
	<-ctx.Done()
	return nil, ctx.Err()
}

func (f *blockingFetcher) Endpoint() string { return "http://test/list" }

func runTUIAsync(ctx context.Context, f *blockingFetcher, in io.Reader) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- runTUI(ctx, config.Config{}, f, tea.WithInput(in), tea.WithOutput(io.Discard))
	}()
	return done
}

func TestRunTUIQuitAbortsInFlightFetch(t *testing.T) {
	f := &blockingFetcher{called: make(chan context.Context, 1)}
	in, keys := io.Pipe()
	t.Cleanup(func() { _ = keys.Close() })

	done := runTUIAsync(context.Background(), f, in)

	var fetchCtx context.Context
	select {
	case fetchCtx = <-f.called:
	case <-time.After(5 * time.Second):
		t.Fatal("fetch never started")
	}
	require.NoError(t, fetchCtx.Err())

	_, err := keys.Write([]byte{0x03}) // ctrl+c
	require.NoError(t, err)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("program did not quit")
	}
	require.ErrorIs(t, fetchCtx.Err(), context.Canceled)
}

func TestRunTUIInterruptIsNotAnError(t *testing.T) {
	f := &blockingFetcher{called: make(chan context.Context, 1)}
	in, keys := io.Pipe()
	t.Cleanup(func() { _ = keys.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := runTUIAsync(ctx, f, in)

	select {
	case <-f.called:
	case <-time.After(5 * time.Second):
		t.Fatal("fetch never started")
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("program ignored cancellation")
	}
}

func TestWriteConfigFileDefaultsToConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("CERTBROWSER_CONFIG", path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.API.Endpoint = "http://example.test/list"

	written, err := writeConfigFile(cfg, "")
	require.NoError(t, err)
	require.Equal(t, path, written)

	got, err := config.Load(written)
	require.NoError(t, err)
	require.Equal(t, "http://example.test/list", got.API.Endpoint)
	require.Equal(t, cfg.HTTP.Timeout, got.HTTP.Timeout)
}
