package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if testing.Short() {
		t.Skip("builds binaries")
	}
	tempDir := t.TempDir()

	// an extension printing the environment it receives.
	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	for _, key := range []string{%q, %q, %q, %q, %q} {
		fmt.Printf("%%s=%%s\n", key, os.Getenv(key))
	}
}
`, EnvDataDir, EnvCurrency, EnvPartnerA, EnvPartnerB, EnvVerbose)

	srcFile := filepath.Join(tempDir, "pbook-hello.go")
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("cannot write pbook-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", filepath.Join(tempDir, "pbook-hello"), srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("cannot compile pbook-hello: %v", err)
	}

	pbook := filepath.Join(tempDir, "pbook")
	build = exec.Command("go", "build", "-o", pbook, "../pbook")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("cannot compile pbook: %v", err)
	}

	book := filepath.Join(tempDir, "book")
	cmd := exec.Command(pbook, "-data-dir", book, "-currency", "EUR", "-partner-a", "Alice", "-v", "hello")
	cmd.Dir = tempDir
	// PBOOK_PARTNER_B comes from the environment, the others from flags.
	cmd.Env = []string{
		"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		EnvPartnerB + "=Bob",
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("pbook hello failed: %v\nstdout: %s\nstderr: %s", err, stdout.String(), stderr.String())
	}

	for _, want := range []string{
		EnvDataDir + "=" + book,
		EnvCurrency + "=EUR",
		EnvPartnerA + "=Alice",
		EnvPartnerB + "=Bob",
		EnvVerbose + "=true",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("extension output misses %q:\n%s", want, stdout.String())
		}
	}
}
