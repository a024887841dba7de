// Command gramactl is a command-line client for the GramaConnect API.
//
// Usage:
//
//	gramactl [--api URL] <command> [flags] [args]
//
// The login is saved under the user config directory and reused by later
// invocations until it expires or "gramactl logout" is run. The API base URL
// defaults to $GRAMACONNECT_API_URL, then http://localhost:5000.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/gramaconnect/gramaconnect-backend/pkg/client"
)

const defaultAPI = "http://localhost:5000"

type env struct {
	client  *client.Client
	session *client.Session
	out     io.Writer
}

type command struct {
	usage string
	run   func(ctx context.Context, e *env, args []string) error
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gramactl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	api := fs.String("api", apiFromEnv(), "API base URL")
	timeout := fs.Duration("timeout", 30*time.Second, "request timeout")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		printUsage(stderr)
		return 2
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "gramactl: unknown command %q\n\n", name)
		printUsage(stderr)
		return 2
	}

	store, err := client.NewFileStore("")
	if err != nil {
		fmt.Fprintf(stderr, "gramactl: %v\n", err)
		return 1
	}
	c := client.New(*api)
	session := client.NewSession(c, store)
	if _, err := session.Restore(); err != nil {
		fmt.Fprintf(stderr, "gramactl: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	err = cmd.run(ctx, &env{client: c, session: session, out: stdout}, rest)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "usage: gramactl %s %s\n", name, cmd.usage)
		return 2
	default:
		fmt.Fprintf(stderr, "gramactl %s: %s\n", name, describe(err))
		return 1
	}
}

func apiFromEnv() string {
	if v := os.Getenv("GRAMACONNECT_API_URL"); v != "" {
		return v
	}
	return defaultAPI
}

// describe renders API errors with their field details.
func describe(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	msg := apiErr.Message
	keys := make([]string, 0, len(apiErr.Fields))
	for k := range apiErr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		msg += fmt.Sprintf("\n  %s: %s", k, apiErr.Fields[k])
	}
	return msg
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: gramactl [--api URL] [--timeout D] <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %-10s %s\n", n, commands[n].usage)
	}
}
