// Command learning-planner generates a structured 1-week learning plan for
// any topic. Two stages collaborate on every plan: a Generator drafts it and
// a Critic evaluates and rewrites it. The final output is always the refined
// plan.
//
// Usage:
//
//	learning-planner "Python programming"
//	learning-planner "Docker" --verbose   # also shows draft + critique
//	learning-planner --save "Kubernetes"  # saves refined plan to markdown
//	learning-planner                      # prompts interactively
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/ar0000n/learning-planner/planner"
	"github.com/ar0000n/learning-planner/report"
	"github.com/ar0000n/learning-planner/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start the HTTP API server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	var verbose, save, htmlOut bool
	flag.BoolVar(&verbose, "verbose", false, "show the Generator's draft plan and the Critic's feedback before the refined plan")
	flag.BoolVar(&verbose, "v", false, "shorthand for --verbose")
	flag.BoolVar(&save, "save", false, "save the refined plan to a markdown file named learning-plan-<topic>-<date>.md")
	flag.BoolVar(&save, "s", false, "shorthand for --save")
	flag.BoolVar(&htmlOut, "html", false, "also export the saved plan as HTML (implies --save)")
	flag.Parse()

	cfg, err := planner.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	llm, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	orc, err := planner.NewOrchestrator(llm)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv, err := server.New(orc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	reader := bufio.NewReader(os.Stdin)
	topic := strings.TrimSpace(flag.Arg(0))
	if topic == "" {
		topic = promptTopic(reader)
	}
	if topic == "" {
		fmt.Fprintln(os.Stderr, "Error: no topic provided.")
		os.Exit(1)
	}
	profile := promptFamiliarity(reader, topic)

	out := os.Stdout
	if verbose {
		orc.Echo = func(text string) { fmt.Fprint(out, text) }
		orc.OnStage = func(stage planner.Stage) {
			switch stage {
			case planner.StageGenerating:
				report.WriteHeader(out, report.LabelGenerator)
			case planner.StageCritiquing:
				fmt.Fprintln(out)
				report.WriteHeader(out, report.LabelCriticReview+"...")
			}
		}
	} else {
		orc.OnStage = func(stage planner.Stage) {
			switch stage {
			case planner.StageGenerating:
				fmt.Fprint(out, "\nGenerating plan...")
			case planner.StageCritiquing:
				fmt.Fprint(out, " done.\nRefining with Critic Agent...")
			}
		}
	}

	// Ctrl-C aborts the in-flight stage; nothing is written on a failed run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec, err := orc.Run(ctx, topic, profile, verbose)
	if err != nil {
		if !verbose {
			fmt.Fprintln(out)
		}
		exitWithError(err)
	}

	if verbose {
		if rec.Critique != "" {
			fmt.Fprintln(out, rec.Critique)
		}
		report.WriteHeader(out, report.LabelCriticRefined)
		report.WritePlan(out, topic, rec.RefinedPlan)
	} else {
		fmt.Fprint(out, " done.\n\n")
		report.WriteSections(out, topic, report.Render(rec, false))
	}

	if save || htmlOut {
		path, err := report.SaveMarkdown(rec, ".")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(out, "Saved to: %s\n", path)
	}
	if htmlOut {
		path, err := report.ExportHTML(rec, ".")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(out, "Exported HTML to: %s\n", path)
	}
}

func buildLLM(cfg planner.Config) (planner.CompletionClient, error) {
	switch cfg.LLM.Provider {
	case "openai":
		return planner.NewOpenAILLMFromConfig(&cfg.LLM)
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API; base_url is required.
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return planner.NewOpenAILLMFromConfig(&cfg.LLM)
	case "mock":
		return planner.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

func promptTopic(reader *bufio.Reader) string {
	fmt.Print("Enter the topic you want to learn: ")
	raw, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(raw)
}

// promptFamiliarity displays the familiarity menu and returns the chosen
// profile, re-prompting until the selection is valid.
func promptFamiliarity(reader *bufio.Reader, topic string) planner.Profile {
	maxLen := 0
	for _, level := range planner.Levels {
		if len(level.Label) > maxLen {
			maxLen = len(level.Label)
		}
	}

	fmt.Printf("\nHow familiar are you with %s?\n\n", topic)
	for i, level := range planner.Levels {
		fmt.Printf("  %d. %-*s  —  %s\n", i+1, maxLen, level.Label, level.Audience)
	}
	fmt.Println()

	for {
		fmt.Printf("Select [1-%d]: ", len(planner.Levels))
		raw, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			os.Exit(0)
		}
		if n, convErr := strconv.Atoi(strings.TrimSpace(raw)); convErr == nil {
			if profile, resErr := planner.Resolve(n); resErr == nil {
				fmt.Printf("\nGot it — tailoring the plan for: %s\n", profile.Label)
				return profile
			}
		}
		fmt.Printf("Please enter a number between 1 and %d.\n", len(planner.Levels))
	}
}

// exitWithError prints a single friendly message per failure kind and exits
// non-zero. No stack traces reach the user.
func exitWithError(err error) {
	var perr *planner.ProviderError
	if errors.As(err, &perr) {
		switch perr.Kind {
		case planner.KindUnauthenticated:
			fmt.Fprintln(os.Stderr, "Error: invalid or missing API key.\nSet OPENAI_API_KEY or add llm.api_key to config.json.")
		case planner.KindRateLimited:
			fmt.Fprintln(os.Stderr, "Error: rate limit reached. Wait a moment and try again.")
		case planner.KindMalformedResponse:
			fmt.Fprintln(os.Stderr, "Error: the model returned an empty or unusable completion.")
		default:
			fmt.Fprintln(os.Stderr, "Error: could not reach the completion API. Check your internet connection.")
		}
		os.Exit(1)
	}
	if errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
