/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/logflow/apis/level"
)

const sampleDocument = `
minLevel: warn
chanLen: 128
pipeline:
  sinks: ["primary", "backup"]
sinks:
  primary:
    kind: file
    queueCapacity: 32
    options:
      dir: /var/log/logflow
  backup:
    kind: memory
`

func TestLoadDecodesDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, level.Warn, doc.MinLevel)
	assert.Equal(t, 128, doc.ChanLen)
	assert.Equal(t, []string{"primary", "backup"}, doc.Pipeline.Sinks)
	require.Contains(t, doc.Sinks, "primary")
	assert.Equal(t, "file", doc.Sinks["primary"].Kind)
	assert.Equal(t, 32, doc.Sinks["primary"].QueueCapacity)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minLevel: not-a-level\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSinkDefsConvertsDocumentSinks(t *testing.T) {
	doc := &Document{
		Sinks: map[string]SinkDef{
			"mem": {Kind: "memory", QueueCapacity: 4},
		},
	}
	defs := doc.SinkDefs()
	require.Contains(t, defs, "mem")
	assert.Equal(t, "memory", defs["mem"].Kind)
	assert.Equal(t, 4, defs["mem"].QueueCapacity)
}
