package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv is the environment variable that forces snapshot files to be rewritten
const UpdateEnv = "UPDATE_SNAPSHOTS"

var funcCount = make(map[string]int)

// Validate compares the indented JSON encoding of obj with the snapshot stored in
// testdata/<package>.<TestName>-<call>.json. A missing snapshot is written and the check passes.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	ValidateWithDepth(t, obj, 1, msgAndArgs...)
}

// ValidateWithDepth is Validate for helpers; depth is the number of frames between the test and this call
func ValidateWithDepth(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()
	filename := nextFilename(1 + depth)

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
		return
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			write(t, filename, objJSON)
			return
		}

		t.Fatalf("could not read snapshot: %v", err)
		return
	}

	if os.Getenv(UpdateEnv) != "" {
		write(t, filename, objJSON)
		return
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func nextFilename(skip int) string {
	pc, _, _, _ := runtime.Caller(skip + 1)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(t *testing.T, filename string, b []byte) {
	t.Helper()
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(b, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}
