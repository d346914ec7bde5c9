// Copyright 2025 The Mandarin Lyric Mind Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	lyricmind "github.com/garfieldra/Mandarin-Lyric-Mind"
	"github.com/garfieldra/Mandarin-Lyric-Mind/ai"
)

func main() {
	app := &cli.App{
		Name:  "lyricmind",
		Usage: "Retrieval-augmented question answering over Mandarin song lyrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Build the knowledge base from a directory of markdown song documents",
				Action: ingestCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Usage:    "Directory holding the markdown song documents",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Fallback chunk window size in runes",
						Value: 800,
					},
					&cli.StringFlag{
						Name:  "export-metadata",
						Usage: "Also write the parents' metadata as JSON to this path",
					},
				}, commonFlags()...),
			},
			{
				Name:      "ask",
				Usage:     "Answer a single question against the knowledge base",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "stream",
						Usage: "Stream answer fragments as they are generated",
						Value: true,
					},
				}, commonFlags()...),
			},
			{
				Name:   "chat",
				Usage:  "Interactive question answering loop",
				Action: chatCommand,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "stream",
						Usage: "Stream answer fragments as they are generated",
						Value: true,
					},
				}, commonFlags()...),
			},
			{
				Name:      "search-artist",
				Usage:     "List the stored song titles retrieved for one artist",
				ArgsUsage: "<artist>",
				Action:    searchArtistCommand,
				Flags:     commonFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commonFlags are shared by every command that opens the system.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the BadgerDB knowledge base directory",
			Value:   "lyricmind.db",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "bge-small-zh-v1.5",
		},
		&cli.StringFlag{
			Name:  "chat-host",
			Usage: "Chat completion service host URL",
			Value: "https://api.deepseek.com/v1",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat completion model name",
			Value: "deepseek-chat",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "API token for the AI services",
			Value: "none",
		},
		&cli.IntFlag{
			Name:  "top-k",
			Usage: "Result count for list and general retrieval",
			Value: 10,
		},
		&cli.IntFlag{
			Name:  "top-compare-k",
			Usage: "Per-group result count for compare retrieval",
			Value: 3,
		},
	}
}

func configFromFlags(c *cli.Context) *lyricmind.Config {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatHost(c.String("chat-host")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithToken(c.String("token")),
	)

	opts := []lyricmind.Option{
		lyricmind.WithDBPath(c.String("db")),
		lyricmind.WithTopK(c.Int("top-k")),
		lyricmind.WithTopCompareK(c.Int("top-compare-k")),
		lyricmind.WithAIConfig(aiConfig),
	}
	if c.IsSet("data") {
		opts = append(opts, lyricmind.WithDataPath(c.String("data")))
	}
	if c.IsSet("chunk-size") {
		opts = append(opts, lyricmind.WithChunkSize(c.Int("chunk-size")))
	}
	return lyricmind.NewConfig(opts...)
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	sys, err := lyricmind.NewSystem(configFromFlags(c))
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer sys.Close()

	if err := sys.BuildKnowledgeBase(ctx); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	stats, err := sys.Statistics()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Documents: %d\n", stats.TotalParents)
	fmt.Fprintf(os.Stderr, "Chunks:    %d\n", stats.TotalChunks)
	fmt.Fprintf(os.Stderr, "Artists:   %d\n", len(stats.Artists))
	fmt.Fprintf(os.Stderr, "Regions:   %d\n", len(stats.Regions))

	if path := c.String("export-metadata"); path != "" {
		if err := sys.ExportMetadata(path); err != nil {
			return fmt.Errorf("metadata export failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Metadata written to %s\n", path)
	}

	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("question is required")
	}

	sys, err := lyricmind.NewSystem(configFromFlags(c))
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer sys.Close()

	if err := sys.LoadKnowledgeBase(ctx); err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	return answerOne(ctx, sys, question, c.Bool("stream"))
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()

	sys, err := lyricmind.NewSystem(configFromFlags(c))
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer sys.Close()

	if err := sys.LoadKnowledgeBase(ctx); err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	fmt.Println("交互式问答（输入「退出」结束）")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n您的问题：")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if isExit(question) {
			break
		}

		if err := answerOne(ctx, sys, question, c.Bool("stream")); err != nil {
			fmt.Fprintf(os.Stderr, "处理问题时出错：%v\n", err)
		}
	}

	fmt.Println("\n感谢使用 LyricMind！")
	return scanner.Err()
}

func searchArtistCommand(c *cli.Context) error {
	ctx := context.Background()

	artist := strings.TrimSpace(c.Args().First())
	if artist == "" {
		return fmt.Errorf("artist is required")
	}

	sys, err := lyricmind.NewSystem(configFromFlags(c))
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer sys.Close()

	if err := sys.LoadKnowledgeBase(ctx); err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	titles, err := sys.SearchByArtist(ctx, artist, strings.TrimSpace(strings.Join(c.Args().Tail(), " ")))
	if err != nil {
		return err
	}
	for _, title := range titles {
		fmt.Println(title)
	}
	return nil
}

func answerOne(ctx context.Context, sys *lyricmind.System, question string, stream bool) error {
	fmt.Println("\n回答：")
	if stream {
		_, err := sys.AnswerStream(ctx, question, func(fragment string) {
			fmt.Print(fragment)
		})
		fmt.Println()
		return err
	}

	answer, err := sys.Answer(ctx, question)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

func isExit(input string) bool {
	switch strings.ToLower(input) {
	case "退出", "quit", "exit":
		return true
	}
	return false
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
