package ui

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinked(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(&buf)

	p.Linked(2, "install.conf.yaml")
	assert.Equal(t, "autobot: linked 2 new files in install.conf.yaml\n", buf.String())

	buf.Reset()
	p.Linked(1, "install.conf.yaml")
	assert.Equal(t, "autobot: linked 1 new file in install.conf.yaml\n", buf.String())
}

func TestSyncFailed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(&buf)

	p.SyncFailed(fmt.Errorf("broken yaml"))
	assert.Equal(t, "autobot: config sync failed, original config restored: broken yaml\n", buf.String())
}

func TestFatal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(&buf)

	p.Fatal(fmt.Errorf("not a git repository"))
	assert.Equal(t, "autobot: not a git repository\n", buf.String())
}
