package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/controller/registry"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// clientCommand is an interactive console against a running server. It
// drives the same /tool endpoints that programmatic callers use.
func clientCommand() *cli.Command {
	var baseURL string

	return &cli.Command{
		Name:    "client",
		Aliases: []string{"c"},
		Usage:   "Interactive client for a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "url",
				Usage:       "Base URL of the server",
				Value:       "http://127.0.0.1:8000",
				Sources:     cli.EnvVars("REPOBRIDGE_URL"),
				Destination: &baseURL,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runClient(ctx, baseURL, os.Stdin, os.Stdout)
		},
	}
}

func runClient(ctx context.Context, baseURL string, in io.Reader, out io.Writer) error {
	specs := registry.Specs()
	reader := bufio.NewReader(in)

	title := color.New(color.FgCyan, color.Bold)
	prompt := color.New(color.FgYellow)
	result := color.New(color.FgHiWhite)
	failed := color.New(color.FgRed, color.Bold)

	title.Fprintln(out, "repobridge interactive client")
	fmt.Fprintf(out, "server: %s\n\n", baseURL)

	for {
		for i, spec := range specs {
			fmt.Fprintf(out, "%2d. %s\n", i+1, spec.Name)
		}
		fmt.Fprintf(out, " q. quit\n")
		prompt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return goerr.Wrap(err, "failed to read input")
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" || line == "exit" {
			return nil
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(specs) {
			failed.Fprintln(out, "invalid choice")
			continue
		}
		spec := specs[choice-1]

		args := map[string]any{}
		for _, field := range spec.Fields {
			if field.Default != "" {
				prompt.Fprintf(out, "%s [%s]: ", field.Name, field.Default)
			} else {
				prompt.Fprintf(out, "%s: ", field.Name)
			}

			value, err := reader.ReadString('\n')
			if err != nil {
				return goerr.Wrap(err, "failed to read input")
			}
			value = strings.TrimSpace(value)
			if value != "" {
				args[field.Name] = value
			}
		}

		envelope, err := callTool(ctx, baseURL, spec.Name, args)
		if err != nil {
			failed.Fprintln(out, err.Error())
			fmt.Fprintln(out)
			continue
		}

		for _, content := range envelope.Content {
			result.Fprintln(out, content.Text)
		}
		fmt.Fprintln(out)
	}
}

func callTool(ctx context.Context, baseURL, action string, args map[string]any) (*model.Envelope, error) {
	payload, err := json.Marshal(args)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode arguments")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/tool/"+action, bytes.NewReader(payload))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call server")
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
			return nil, goerr.New(body.Error, goerr.V("status", resp.StatusCode))
		}
		return nil, goerr.New("request failed",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	var envelope model.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, goerr.Wrap(err, "failed to decode envelope")
	}
	return &envelope, nil
}
