package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhanuprakash-18/zeppy/internal/corpus"
	"github.com/bhanuprakash-18/zeppy/internal/dialogue"
	"github.com/bhanuprakash-18/zeppy/internal/observability"
)

var (
	dataDir     string
	typingDelay bool
	verbose     bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long:  "Loads the job, FAQ and handbook corpora and answers questions on an interactive prompt. Commands: /more, /job <id>, /menu, /quit.",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&dataDir, "data", defaultDataDir(), "directory containing jobs.json, faq.json and handbook.json")
	chatCmd.Flags().BoolVar(&typingDelay, "typing-delay", false, "simulate a 1-2s typing pause before each reply (cosmetic only)")
	chatCmd.Flags().BoolVar(&verbose, "verbose", false, "print the session id and resolver diagnostics")
	rootCmd.AddCommand(chatCmd)
}

func defaultDataDir() string {
	if dir := os.Getenv("ZEPPY_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func runChat(cmd *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(cmd.OutOrStdout())

	store, err := corpus.Load(context.Background(), dataDir)
	if err != nil {
		// Fail closed: the assistant stays usable but inert, exactly as a
		// visitor would see it when the page data did not load.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	assistant := dialogue.New(store)
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "session %s\n", assistant.SessionID())
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Hi, I'm Zeppy! Ask me about jobs, applications or the company. Type /quit to leave.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(cmd.OutOrStdout(), "\nyou> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		pause()

		switch {
		case line == "/quit" || line == "/exit":
			fmt.Fprintln(cmd.OutOrStdout(), "Bye! Good luck with your application.")
			return nil
		case line == "/menu":
			printer.PrintResponse(assistant.Reset())
		case line == "/more":
			resp, _ := assistant.MoreJobs()
			printer.PrintResponse(resp)
		case strings.HasPrefix(line, "/job "):
			id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/job ")))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Usage: /job <id>")
				continue
			}
			resp, err := assistant.JobDetail(id)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "I couldn't find that position anymore (%v).\n", err)
				continue
			}
			printer.PrintResponse(resp)
		default:
			printer.PrintResponse(assistant.HandleTurn(line))
		}
	}
}

// pause sleeps 1.0-2.0s when --typing-delay is set. Purely cosmetic; it
// never influences what the assistant answers.
func pause() {
	if !typingDelay {
		return
	}
	time.Sleep(time.Second + time.Duration(rand.Int63n(int64(time.Second))))
}
