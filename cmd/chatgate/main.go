package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"

	"github.com/umputun/chatgate/pkg/config"
	"github.com/umputun/chatgate/pkg/provider"
	"github.com/umputun/chatgate/pkg/settings"
	"github.com/umputun/chatgate/pkg/usage"
)

var revision = "unknown"

// osExit is a variable for testing to mock os.Exit
var osExit = os.Exit

// logOut receives debug logs, replaced in tests
var logOut io.Writer = os.Stdout

func main() {
	// create a context that's canceled when ctrl+c is pressed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		lgr.Printf("[ERROR] %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}
}

// run loads configuration, selects the connector and sends one prompt through it.
// Help mode prints usage and returns nil without touching any connector.
func run(ctx context.Context, args []string, stdin *os.File, stdout io.Writer) error {
	// only DEBUG env is known before the config is loaded, config Debug takes over after that
	envDebug, _ := strconv.ParseBool(os.Getenv("DEBUG"))
	setupLog(envDebug)

	pattern := os.Getenv("CHATGATE_CONFIG")
	cfg, err := config.LoadGlob(pattern)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	host, err := config.LoadHost(cfg, config.OSEnv)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(host.Debug)

	app := settings.Load(cfg, config.OSEnv, args)
	setupLog(host.Debug, settings.Secrets(app.Settings)...)
	lgr.Printf("[DEBUG] chatgate %s, connector %s", revision, app.Connector)

	if app.Help {
		return usage.Print(stdout, app.Connector, app.Unknown)
	}

	valid, err := app.Validate()
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// timeout contexts are children of the passed ctx (which handles interrupts)
	createCtx, cancelCreate := context.WithTimeout(ctx, host.Timeout)
	f := &provider.Factory{Discoverer: &provider.FoundryDiscoverer{Endpoint: os.Getenv("FOUNDRY_LOCAL_ENDPOINT")}}
	client, err := f.CreateClient(createCtx, valid)
	cancelCreate()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("operation canceled by user")
		}
		return err
	}
	client = provider.WrapWithRetry(client, provider.RetryOptions{Attempts: host.RetryAttempts, Delay: host.RetryDelay})

	prompt, err := getPrompt(stdin, stdout)
	if err != nil {
		return fmt.Errorf("failed to get prompt: %w", err)
	}
	if prompt == "" {
		return errors.New("no prompt provided")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, host.Timeout)
	defer cancel()
	result, err := client.Generate(timeoutCtx, prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("operation canceled by user")
		}
		return fmt.Errorf("failed to run prompt: %w", err)
	}

	fmt.Fprintln(stdout, strings.TrimSpace(result))
	return nil
}

// getPrompt reads the prompt from piped stdin, or asks for a single line in interactive mode
func getPrompt(stdin *os.File, w io.Writer) (string, error) {
	stat, err := stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("can't stat stdin: %w", err)
	}

	if (stat.Mode() & os.ModeCharDevice) == 0 {
		// data is being piped in
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		var sb strings.Builder
		for scanner.Scan() {
			sb.WriteString(scanner.Text())
			sb.WriteString("\n")
		}
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading from stdin: %w", err)
		}
		return strings.TrimSpace(sb.String()), nil
	}

	// no data piped, interactive mode
	fmt.Fprint(w, "Enter prompt: ")
	prompt, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading prompt: %w", err)
	}
	return strings.TrimSpace(prompt), nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)} // default to discard
	if dbg {
		logOpts = []lgr.Option{lgr.Out(logOut), lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
