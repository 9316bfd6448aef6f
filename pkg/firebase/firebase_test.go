package firebase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAuthClientRequiresCredentials(t *testing.T) {
	_, err := NewAuthClient(context.Background(), "", "")
	require.ErrorContains(t, err, "path not provided")

	_, err = NewAuthClient(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "")
	require.ErrorContains(t, err, "not readable")
}
