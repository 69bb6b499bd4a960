package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dicky/portfolio/internal/domain/chat"
	"github.com/dicky/portfolio/internal/domain/richtext"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

const chatPath = "/api/v1/chat"

func newChatCmd() *cobra.Command {
	var (
		server  string
		render  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the portfolio assistant a question",
		Long: `Send one message to a running backend and stream the assistant reply.
With --render the reply is collected and printed through the markup
renderer instead of as raw text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			var sink io.Writer = cmd.OutOrStdout()
			var collected strings.Builder
			if render {
				sink = &collected
			}
			if err := streamChat(cmd, client, server, args[0], sink); err != nil {
				return err
			}
			if render {
				_, err := io.WriteString(cmd.OutOrStdout(), renderTerminal(richtext.RenderBlocks(collected.String())))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "Backend base URL")
	cmd.Flags().BoolVar(&render, "render", false, "Render the reply markup when it is complete")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall request timeout")
	return cmd
}

func streamChat(cmd *cobra.Command, client *http.Client, server, message string, sink io.Writer) error {
	body, err := json.Marshal(struct {
		Messages []chat.Message `json:"messages"`
	}{Messages: []chat.Message{{Role: chat.RoleUser, Content: message}}})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost,
		strings.TrimRight(server, "/")+chatPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		msg := gjson.GetBytes(raw, "error").String()
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return fmt.Errorf("server answered %d: %s", resp.StatusCode, msg)
	}

	if _, err := io.Copy(sink, resp.Body); err != nil {
		return fmt.Errorf("reply interrupted: %w", err)
	}
	return nil
}
