package jdk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJavaExe(t *testing.T) {
	assert.Equal(t, "java.exe", javaExe("windows"))
	assert.Equal(t, "java", javaExe("linux"))
	assert.Equal(t, "java", javaExe("darwin"))
}

func TestManagedGlobsWindows(t *testing.T) {
	globs := managedGlobs(`C:\Program Files\Zulu`, "windows")
	assert.Equal(t, []string{
		filepath.Join(`C:\Program Files\Zulu`, "*", "bin", "java.exe"),
		filepath.Join(`C:\Program Files\Zulu`, "*", "Contents", "Home", "bin", "java.exe"),
	}, globs)
}

func TestManagedGlobsUnix(t *testing.T) {
	globs := managedGlobs("/usr/local/lib/jvm", "linux")
	assert.Equal(t, []string{
		filepath.Join("/usr/local/lib/jvm", "*", "bin", "java"),
		filepath.Join("/usr/local/lib/jvm", "*", "Contents", "Home", "bin", "java"),
	}, globs)
}

func TestHomeFromBin(t *testing.T) {
	assert.Equal(t, "/usr/lib/jvm/java-21", homeFromBin("/usr/lib/jvm/java-21/bin/java"))
}
