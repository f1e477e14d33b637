package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ObjectName builds a collision-resistant object key from an uploaded file
// name: millisecond timestamp, random suffix, original extension. The
// original base name is discarded so user input never reaches the key.
func ObjectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	}

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext)
}
