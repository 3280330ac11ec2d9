package constants

import (
	"strings"
	"testing"
)

func TestDefaultConfigPathDerivedFromStorageKey(t *testing.T) {
	if !strings.Contains(DefaultConfigPath, StorageKey) {
		t.Errorf("DefaultConfigPath %q does not embed storage key %q", DefaultConfigPath, StorageKey)
	}
	if !strings.HasSuffix(DefaultConfigPath, ".json") {
		t.Errorf("DefaultConfigPath %q is not a JSON blob path", DefaultConfigPath)
	}
}
