package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// RunExtension attempts to find and execute an external pbook-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension receives the resolved global flags as environment variables,
// so that it works on the same book.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pbook-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		if verbose() {
			log.Printf("external command %q not found in PATH: %v", externalCmdName, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	opts := options()
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvDataDir+"="+dataDir())
	cmd.Env = append(cmd.Env, EnvCurrency+"="+opts.Currency)
	cmd.Env = append(cmd.Env, EnvPartnerA+"="+opts.Partners.A)
	cmd.Env = append(cmd.Env, EnvPartnerB+"="+opts.Partners.B)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(verbose()))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
