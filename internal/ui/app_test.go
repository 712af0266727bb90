package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/config"
)

// TestNewWindow_BuildsFromConfig fills the window with one tab per feature.
func TestNewWindow_BuildsFromConfig(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w, err := NewWindow(context.Background(), a, config.Default())
	require.NoError(t, err)
	require.NotNil(t, w.window.Content())
	require.Len(t, w.view.tabs.Items, 4)

	w.Show(context.Background())
	w.window.Close()
}
